package leads

import (
	"context"
	"errors"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/apperrors"
	"goldencitizen-backend/internal/logger"
	"goldencitizen-backend/internal/metrics"
	"goldencitizen-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ConfirmationMessage = "İletişim formunuz başarıyla gönderildi. En kısa sürede size geri dönüş yapacağız."

type Service struct {
	db       *gorm.DB
	notifier Notifier
	log      logger.Logger
}

func NewService(db *gorm.DB, notifier Notifier, log logger.Logger) *Service {
	return &Service{db: db, notifier: notifier, log: log}
}

// Submit validates and stores one lead, then forwards it to the notifier.
// A non-empty key makes the call idempotent: a replay returns the lead that
// was stored first and reports duplicate=true without notifying again.
func (s *Service) Submit(ctx context.Context, req api.ContactRequest, key string) (lead *models.Lead, duplicate bool, err error) {
	req = Normalize(req)
	if err := Validate(req); err != nil {
		metrics.LeadsRejected.WithLabelValues(apperrors.FieldOf(err)).Inc()
		return nil, false, err
	}
	if len(key) > maxKeyLen {
		return nil, false, apperrors.Validation(api.HeaderIdempotencyKey, "Idempotency-Key çok uzun")
	}

	db := s.db.WithContext(ctx)

	if key != "" {
		existing, err := s.findByReference(db, key)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	reference := key
	if reference == "" {
		reference = uuid.NewString()
	}

	lead = &models.Lead{
		Reference: reference,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   models.LeadSubject(req.Subject),
		Message:   req.Message,
	}
	if err := db.Create(lead).Error; err != nil {
		// Aynı anahtarla eşzamanlı tekrar: ilk kayıt kazanır
		if key != "" && errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, findErr := s.findByReference(db, key)
			if findErr == nil && existing != nil {
				return existing, true, nil
			}
		}
		metrics.StoreErrors.WithLabelValues("create_lead").Inc()
		return nil, false, apperrors.ServiceUnavailable("İletişim formu kaydedilemedi", err)
	}

	metrics.LeadsSubmitted.WithLabelValues(string(lead.Subject)).Inc()

	// Kayıt oluştu; bildirim hatası başvuruyu düşürmez
	if err := s.notifier.NotifyLead(ctx, lead); err != nil {
		metrics.LeadNotificationFailures.Inc()
		s.log.WithError(err).Error("Lead bildirimi gönderilemedi", map[string]interface{}{
			"reference": lead.Reference,
		})
	}

	s.log.Info("Yeni iletişim formu kaydedildi", map[string]interface{}{
		"reference": lead.Reference,
		"subject":   lead.Subject,
	})
	return lead, false, nil
}

func (s *Service) findByReference(db *gorm.DB, reference string) (*models.Lead, error) {
	var lead models.Lead
	err := db.Where("reference = ?", reference).First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues("find_lead").Inc()
		return nil, apperrors.ServiceUnavailable("İletişim formu kontrol edilemedi", err)
	}
	return &lead, nil
}
