package content

import (
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
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// -------------------------
// Request Types
// -------------------------

type CreatePropertyRequest struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Price       int64    `json:"price"`
	Type        string   `json:"type"`
	Size        string   `json:"size"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Gallery     []string `json:"gallery"`
}

type UpdatePropertyRequest struct {
	Title       *string   `json:"title"`
	Location    *string   `json:"location"`
	Price       *int64    `json:"price"`
	Type        *string   `json:"type"`
	Size        *string   `json:"size"`
	Bedrooms    *int      `json:"bedrooms"`
	Bathrooms   *int      `json:"bathrooms"`
	Features    *[]string `json:"features"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Gallery     *[]string `json:"gallery"`
}

// -------------------------
// Public catalog
// -------------------------

// GET /api/properties
// Sadece aktif ilanlar, id sırasıyla (deponun doğal sırası).
func ListPropertiesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var properties []models.Property
		if err := db.WithContext(c.UserContext()).
			Where("is_active = ?", true).
			Order("id asc").
			Find(&properties).Error; err != nil {
			metrics.StoreErrors.WithLabelValues("list_properties").Inc()
			return apperrors.ServiceUnavailable("Emlaklar listelenemedi", err)
		}

		resp := make([]api.Property, 0, len(properties))
		for _, p := range properties {
			resp = append(resp, toPropertyResponse(p))
		}
		return c.JSON(resp)
	}
}

// GET /api/properties/:id
func GetPropertyHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var property models.Property
		err = db.WithContext(c.UserContext()).
			First(&property, "id = ? AND is_active = ?", id, true).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Emlak bulunamadı")
		}
		if err != nil {
			metrics.StoreErrors.WithLabelValues("get_property").Inc()
			return apperrors.ServiceUnavailable("Emlak bilgisi alınamadı", err)
		}

		return c.JSON(toPropertyResponse(property))
	}
}

// -------------------------
// Admin CRUD
// -------------------------

// POST /api/properties
func CreatePropertyHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePropertyRequest
		if err := c.BodyParser(&body); err != nil {
			return apperrors.Validation("body", "Geçersiz veri")
		}

		property := models.Property{
			Title:       strings.TrimSpace(body.Title),
			Location:    strings.TrimSpace(body.Location),
			Price:       body.Price,
			Type:        strings.TrimSpace(body.Type),
			Size:        strings.TrimSpace(body.Size),
			Bedrooms:    body.Bedrooms,
			Bathrooms:   body.Bathrooms,
			Features:    pq.StringArray(cleanList(body.Features)),
			Description: strings.TrimSpace(body.Description),
			ImageURL:    strings.TrimSpace(body.ImageURL),
			Gallery:     pq.StringArray(cleanList(body.Gallery)),
			IsActive:    true,
		}
		if err := validateProperty(&property); err != nil {
			return err
		}

		err := db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&property).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				Actor:       c.IP(),
				EntityType:  audit.EntityProperty,
				EntityID:    property.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Emlak eklendi: %s - %d EUR", property.Title, property.Price),
				After:       toPropertyResponse(property),
			})
		})
		if err != nil {
			metrics.StoreErrors.WithLabelValues("create_property").Inc()
			return apperrors.ServiceUnavailable("Emlak kaydedilemedi", err)
		}

		return c.Status(fiber.StatusCreated).JSON(toPropertyResponse(property))
	}
}

// PUT /api/properties/:id
func UpdatePropertyHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var body UpdatePropertyRequest
		if err := c.BodyParser(&body); err != nil {
			return apperrors.Validation("body", "Geçersiz veri")
		}

		var property models.Property
		err = db.WithContext(c.UserContext()).First(&property, "id = ? AND is_active = ?", id, true).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Emlak bulunamadı")
		}
		if err != nil {
			metrics.StoreErrors.WithLabelValues("update_property").Inc()
			return apperrors.ServiceUnavailable("Emlak bilgisi alınamadı", err)
		}

		before := toPropertyResponse(property)
		if !applyUpdate(&property, &body) {
			return c.JSON(before)
		}
		if err := validateProperty(&property); err != nil {
			return err
		}

		err = db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&property).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				Actor:       c.IP(),
				EntityType:  audit.EntityProperty,
				EntityID:    property.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Emlak güncellendi: %s", property.Title),
				Before:      before,
				After:       toPropertyResponse(property),
			})
		})
		if err != nil {
			metrics.StoreErrors.WithLabelValues("update_property").Inc()
			return apperrors.ServiceUnavailable("Emlak güncellenemedi", err)
		}

		return c.JSON(toPropertyResponse(property))
	}
}

// DELETE /api/properties/:id
// Kayıt silinmez, yayından kaldırılır.
func DeactivatePropertyHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var property models.Property
		err = db.WithContext(c.UserContext()).First(&property, "id = ? AND is_active = ?", id, true).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Emlak bulunamadı")
		}
		if err != nil {
			metrics.StoreErrors.WithLabelValues("deactivate_property").Inc()
			return apperrors.ServiceUnavailable("Emlak bilgisi alınamadı", err)
		}

		before := toPropertyResponse(property)
		err = db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&property).Update("is_active", false).Error; err != nil {
				return err
			}
			return audit.WriteLog(tx, audit.LogOptions{
				Actor:       c.IP(),
				EntityType:  audit.EntityProperty,
				EntityID:    property.ID,
				Action:      models.AuditActionDeactivate,
				Description: fmt.Sprintf("Emlak yayından kaldırıldı: %s", property.Title),
				Before:      before,
			})
		})
		if err != nil {
			metrics.StoreErrors.WithLabelValues("deactivate_property").Inc()
			return apperrors.ServiceUnavailable("Emlak yayından kaldırılamadı", err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// -------------------------
// Helpers
// -------------------------

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("id", "Geçersiz emlak ID")
	}
	return uint(id), nil
}

func validateProperty(p *models.Property) error {
	switch {
	case p.Title == "":
		return apperrors.Validation("title", "başlık boş olamaz")
	case p.Location == "":
		return apperrors.Validation("location", "konum boş olamaz")
	case p.Type == "":
		return apperrors.Validation("type", "emlak tipi boş olamaz")
	case p.Price <= 0:
		return apperrors.Validation("price", "fiyat 0'dan büyük olmalı")
	case p.Bedrooms < 0:
		return apperrors.Validation("bedrooms", "yatak odası sayısı negatif olamaz")
	case p.Bathrooms < 0:
		return apperrors.Validation("bathrooms", "banyo sayısı negatif olamaz")
	}
	return nil
}

func applyUpdate(p *models.Property, body *UpdatePropertyRequest) bool {
	updated := false
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
			updated = true
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
			updated = true
		}
	}

	setString(&p.Title, body.Title)
	setString(&p.Location, body.Location)
	setString(&p.Type, body.Type)
	setString(&p.Size, body.Size)
	setString(&p.Description, body.Description)
	setString(&p.ImageURL, body.ImageURL)
	setInt(&p.Bedrooms, body.Bedrooms)
	setInt(&p.Bathrooms, body.Bathrooms)

	if body.Price != nil {
		p.Price = *body.Price
		updated = true
	}
	if body.Features != nil {
		p.Features = pq.StringArray(cleanList(*body.Features))
		updated = true
	}
	if body.Gallery != nil {
		p.Gallery = pq.StringArray(cleanList(*body.Gallery))
		updated = true
	}
	return updated
}

// boş elemanları at, sırayı koru
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toPropertyResponse(p models.Property) api.Property {
	return api.Property{
		ID:          p.ID,
		Title:       p.Title,
		Location:    p.Location,
		Price:       p.Price,
		Type:        p.Type,
		Size:        p.Size,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Features:    nonNil(p.Features),
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Gallery:     nonNil(p.Gallery),
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.Format(api.TimeLayout),
	}
}
