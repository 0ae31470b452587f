package leads

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/apperrors"
	"goldencitizen-backend/internal/audit"
	"goldencitizen-backend/internal/metrics"
	"goldencitizen-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /api/contact
func SubmitLeadHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body api.ContactRequest
		if err := c.BodyParser(&body); err != nil {
			return apperrors.Validation("body", "Geçersiz istek gövdesi")
		}

		key := strings.TrimSpace(c.Get(api.HeaderIdempotencyKey))
		lead, _, err := svc.Submit(c.UserContext(), body, key)
		if err != nil {
			return err
		}

		return c.JSON(api.ContactResponse{
			Success: true,
			Message: ConfirmationMessage,
			ID:      lead.Reference,
		})
	}
}

// GET /api/contacts (yönetim için, en yeniler önce)
// ?format=xlsx ile Excel olarak indirilir.
func ListLeadsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		format := c.Query("format", "json")
		if format != "json" && format != "xlsx" {
			return apperrors.Validation("format", "Geçersiz format, json veya xlsx olmalı")
		}

		var leads []models.Lead
		if err := db.WithContext(c.UserContext()).
			Order("created_at desc").
			Limit(100).
			Find(&leads).Error; err != nil {
			metrics.StoreErrors.WithLabelValues("list_leads").Inc()
			return apperrors.ServiceUnavailable("Başvurular listelenemedi", err)
		}

		if format == "xlsx" {
			var buf bytes.Buffer
			if err := WriteXLSX(&buf, leads); err != nil {
				return apperrors.Internal("Excel dosyası oluşturulamadı", err)
			}
			c.Set(fiber.HeaderContentType, ExportContentType)
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="basvurular.xlsx"`)
			return c.Send(buf.Bytes())
		}

		resp := make([]api.Lead, 0, len(leads))
		for _, l := range leads {
			resp = append(resp, toLeadResponse(l))
		}
		return c.JSON(resp)
	}
}

// PATCH /api/contacts/:id/read
func MarkLeadReadHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil || id == 0 {
			return apperrors.Validation("id", "Geçersiz başvuru ID")
		}

		var lead models.Lead
		err = db.WithContext(c.UserContext()).First(&lead, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Başvuru bulunamadı")
		}
		if err != nil {
			metrics.StoreErrors.WithLabelValues("get_lead").Inc()
			return apperrors.ServiceUnavailable("Başvuru alınamadı", err)
		}

		if lead.IsRead {
			return c.JSON(toLeadResponse(lead))
		}

		err = db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&lead).Update("is_read", true).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				Actor:       c.IP(),
				EntityType:  audit.EntityLead,
				EntityID:    lead.ID,
				Action:      models.AuditActionMarkRead,
				Description: fmt.Sprintf("Başvuru okundu: %s", lead.Reference),
			})
		})
		if err != nil {
			metrics.StoreErrors.WithLabelValues("mark_lead_read").Inc()
			return apperrors.ServiceUnavailable("Başvuru güncellenemedi", err)
		}
		lead.IsRead = true

		return c.JSON(toLeadResponse(lead))
	}
}

func toLeadResponse(l models.Lead) api.Lead {
	return api.Lead{
		ID:        l.ID,
		Reference: l.Reference,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Subject:   string(l.Subject),
		Message:   l.Message,
		IsRead:    l.IsRead,
		CreatedAt: l.CreatedAt.Format(api.TimeLayout),
	}
}
