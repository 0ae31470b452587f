package leads

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/apperrors"
	"goldencitizen-backend/internal/models"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`)

// Sınırlar karakter sayısıdır, kolon boyutlarıyla aynı
const (
	maxNameLen    = 100
	maxEmailLen   = 100
	maxPhoneLen   = 30
	maxMessageLen = 5000
	maxKeyLen     = 64
)

// Normalize trims every field and fills the default subject.
func Normalize(req api.ContactRequest) api.ContactRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if req.Subject == "" {
		req.Subject = string(models.DefaultLeadSubject)
	}
	return req
}

// Validate checks a normalized request. The first offending field is
// reported; mesaj opsiyonel.
func Validate(req api.ContactRequest) error {
	switch {
	case req.Name == "":
		return apperrors.Validation("name", "İsim zorunludur")
	case req.Email == "":
		return apperrors.Validation("email", "E-posta zorunludur")
	case req.Phone == "":
		return apperrors.Validation("phone", "Telefon zorunludur")
	case utf8.RuneCountInString(req.Name) > maxNameLen:
		return apperrors.Validation("name", "İsim çok uzun")
	case utf8.RuneCountInString(req.Email) > maxEmailLen || !emailRe.MatchString(req.Email):
		return apperrors.Validation("email", "Geçerli bir e-posta adresi girin")
	case utf8.RuneCountInString(req.Phone) > maxPhoneLen:
		return apperrors.Validation("phone", "Telefon numarası çok uzun")
	case !models.LeadSubject(req.Subject).Valid():
		return apperrors.Validation("subject", "Geçersiz konu")
	case utf8.RuneCountInString(req.Message) > maxMessageLen:
		return apperrors.Validation("message", "Mesaj çok uzun")
	}
	return nil
}
