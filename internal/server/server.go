package server

import (
	"errors"
	"strings"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/apperrors"
	"goldencitizen-backend/internal/audit"
	"goldencitizen-backend/internal/config"
	"goldencitizen-backend/internal/content"
	"goldencitizen-backend/internal/database"
	"goldencitizen-backend/internal/leads"
	"goldencitizen-backend/internal/logger"
	"goldencitizen-backend/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Notifier leads.Notifier
	Log      logger.Logger
}

// New wires middleware and every route of the Content API.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Golden Citizen API",
		ErrorHandler: ErrorHandler(d.Log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(metrics.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: joinOrigins(d.Config.CORSOriginList()),
		AllowHeaders: "Origin, Content-Type, Accept, " + api.HeaderIdempotencyKey,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	app.Get("/metrics", metrics.Handler())

	apiGroup := app.Group("/api")

	apiGroup.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Golden Citizen API - Yunanistan Golden Visa",
			"status":  "active",
		})
	})
	apiGroup.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(c.UserContext(), d.DB); err != nil {
			return apperrors.ServiceUnavailable("İçerik deposuna ulaşılamıyor", err)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Şirket profili
	apiGroup.Get("/company-info", content.GetCompanyInfoHandler(d.DB))

	// Emlak portföyü
	apiGroup.Get("/properties", content.ListPropertiesHandler(d.DB))
	apiGroup.Get("/properties/:id", content.GetPropertyHandler(d.DB))
	apiGroup.Post("/properties", content.CreatePropertyHandler(d.DB))
	apiGroup.Put("/properties/:id", content.UpdatePropertyHandler(d.DB))
	apiGroup.Delete("/properties/:id", content.DeactivatePropertyHandler(d.DB))

	// İletişim formu
	leadService := leads.NewService(d.DB, d.Notifier, d.Log)
	apiGroup.Post("/contact", leads.SubmitLeadHandler(leadService))
	apiGroup.Get("/contacts", leads.ListLeadsHandler(d.DB))
	apiGroup.Patch("/contacts/:id/read", leads.MarkLeadReadHandler(d.DB))

	// Audit logs
	apiGroup.Get("/audit-logs", audit.ListAuditLogsHandler(d.DB))

	return app
}

// ErrorHandler converts handler errors into the JSON error body. Server-side
// faults and a missing company profile are logged as errors; validation
// errors and ordinary misses only at debug level.
func ErrorHandler(log logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ae *apperrors.Error
		if errors.As(err, &ae) {
			fields := map[string]interface{}{
				"path":       c.Path(),
				"method":     c.Method(),
				"code":       ae.Code,
				"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
			}
			switch ae.Code {
			case apperrors.CodeValidation:
				log.Debug("Validasyon hatası", fields)
			case apperrors.CodeNotFound:
				// Tekil şirket profili yoksa yapılandırma hatasıdır; diğerleri sıradan
				if c.Path() == api.PathCompanyInfo {
					log.Error(ae.Message, fields)
				} else {
					log.Debug(ae.Message, fields)
				}
			default:
				log.WithError(err).Error(ae.Message, fields)
			}
			return c.Status(ae.HTTPStatus()).JSON(api.ErrorResponse{
				Error: ae.Message,
				Code:  string(ae.Code),
				Field: ae.Field,
			})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(api.ErrorResponse{Error: fe.Message})
		}

		log.WithError(err).Error("Beklenmeyen hata", map[string]interface{}{"path": c.Path()})
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Error: "Beklenmeyen sunucu hatası",
			Code:  string(apperrors.CodeInternal),
		})
	}
}

func joinOrigins(origins []string) string {
	if len(origins) == 0 {
		return "*"
	}
	return strings.Join(origins, ",")
}
