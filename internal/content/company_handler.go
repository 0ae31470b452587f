package content

import (
	"errors"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/apperrors"
	"goldencitizen-backend/internal/metrics"
	"goldencitizen-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api/company-info
func GetCompanyInfoHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var profile models.CompanyProfile
		err := db.WithContext(c.UserContext()).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Seed çalıştırılmamış demektir
			return apperrors.NotFound("Şirket bilgisi bulunamadı")
		}
		if err != nil {
			metrics.StoreErrors.WithLabelValues("get_company_info").Inc()
			return apperrors.ServiceUnavailable("Şirket bilgileri alınamadı", err)
		}

		return c.JSON(toCompanyInfo(profile))
	}
}

func toCompanyInfo(p models.CompanyProfile) api.CompanyInfo {
	return api.CompanyInfo{
		Founder: api.Founder{
			Name:         p.Founder.Name,
			Title:        p.Founder.Title,
			Experience:   p.Founder.Experience,
			Credentials:  p.Founder.Credentials,
			Description:  p.Founder.Description,
			Achievements: nonNil(p.Founder.Achievements),
		},
		Contact: api.ContactInfo{
			WhatsApp:    p.Contact.WhatsApp,
			Email:       p.Contact.Email,
			Address:     p.Contact.Address,
			OfficeHours: p.Contact.OfficeHours,
		},
		Stats: api.Stats{
			SuccessfulApplications: p.Stats.SuccessfulApplications,
			SuccessRate:            p.Stats.SuccessRate,
			ExperienceYears:        p.Stats.ExperienceYears,
			AverageProcessTime:     p.Stats.AverageProcessTime,
		},
		UpdatedAt: p.UpdatedAt.Format(api.TimeLayout),
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
