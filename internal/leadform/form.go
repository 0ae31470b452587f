// Package leadform is the view model of the contact section: the lead form,
// its submission lifecycle, the WhatsApp fallback and the contact details
// shown next to it.
package leadform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/apperrors"
	"goldencitizen-backend/internal/client"
	"goldencitizen-backend/internal/logger"
	"goldencitizen-backend/internal/messaging"

	"github.com/google/uuid"
)

type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSubmittedOK
	PhaseSubmittedError
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmittedOK:
		return "submitted_ok"
	case PhaseSubmittedError:
		return "submitted_error"
	}
	return "unknown"
}

type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Kullanıcıya gösterilen mesajlar
const (
	MsgSubmitFailed    = "Mesaj gönderilirken bir hata oluştu. Lütfen tekrar deneyin veya WhatsApp ile iletişime geçin."
	MsgSubmitOK        = "Mesajınız başarıyla gönderildi. En kısa sürede size dönüş yapacağız."
	MsgMissingRequired = "Lütfen zorunlu alanları doldurun."
	MsgInvalidInput    = "Lütfen işaretli alanı kontrol edin."
)

// Boş alanlar için WhatsApp mesajında kullanılan yer tutucular
const (
	placeholderName  = "[İsim]"
	placeholderPhone = "[Telefon]"
)

var requiredFields = []Field{FieldName, FieldEmail, FieldPhone}

type Values struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// InitialValues is what the form shows on mount and after a successful send.
func InitialValues() Values {
	return Values{Subject: api.DefaultSubject}
}

type Submitter interface {
	SubmitLead(ctx context.Context, req api.ContactRequest, idempotencyKey string) (*api.ContactResponse, error)
}

type CompanySource interface {
	GetCompanyProfile(ctx context.Context) (*api.CompanyInfo, error)
}

type Form struct {
	mu        sync.Mutex
	submitter Submitter
	linker    *messaging.Linker
	company   *client.Resource[*api.CompanyInfo]
	log       logger.Logger
	newKey    func() string

	values  Values
	phase   Phase
	notice  string
	missing []Field
	lastErr error

	// Başarısız gönderimin anahtarı; değerler değişmeden tekrar gönderilirse
	// aynı anahtar kullanılır, sunucu kaydı tekrarlamaz.
	pendingKey    string
	pendingValues Values
}

func New(sub Submitter, company CompanySource, linker *messaging.Linker, log logger.Logger) *Form {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Form{
		submitter: sub,
		linker:    linker,
		company:   client.NewResource[*api.CompanyInfo](company.GetCompanyProfile, client.MsgCompanyFailed, log),
		log:       log,
		newKey:    uuid.NewString,
		values:    InitialValues(),
		phase:     PhaseEditing,
	}
}

// Mount resets the form and fetches the contact details once.
func (f *Form) Mount(ctx context.Context) client.State[*api.CompanyInfo] {
	f.mu.Lock()
	f.values = InitialValues()
	f.phase = PhaseEditing
	f.notice = ""
	f.missing = nil
	f.lastErr = nil
	f.pendingKey = ""
	f.mu.Unlock()
	return f.company.Load(ctx)
}

// RetryCompany refetches the contact details after a failure.
func (f *Form) RetryCompany(ctx context.Context) client.State[*api.CompanyInfo] {
	return f.company.Retry(ctx)
}

func (f *Form) Company() client.State[*api.CompanyInfo] {
	return f.company.State()
}

// Set updates one field. Editing after a send returns the form to Editing.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == PhaseSubmitting {
		return fmt.Errorf("form gönderiliyor, alan değiştirilemez")
	}

	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldPhone:
		f.values.Phone = value
	case FieldSubject:
		if !validSubject(value) {
			return fmt.Errorf("geçersiz konu: %q", value)
		}
		f.values.Subject = value
	case FieldMessage:
		f.values.Message = value
	default:
		return fmt.Errorf("bilinmeyen alan: %q", field)
	}

	f.missing = removeField(f.missing, field)
	if f.phase != PhaseEditing {
		f.phase = PhaseEditing
		f.notice = ""
		f.lastErr = nil
	}
	return nil
}

// Submit sends the form. Missing required fields block the send without a
// network call; the form stays in Editing and Missing reports them.
func (f *Form) Submit(ctx context.Context) Phase {
	f.mu.Lock()
	if f.phase == PhaseSubmitting {
		f.mu.Unlock()
		return PhaseSubmitting
	}

	missing := missingRequired(f.values)
	if len(missing) > 0 {
		f.phase = PhaseEditing
		f.missing = missing
		f.notice = MsgMissingRequired
		f.mu.Unlock()
		return PhaseEditing
	}

	f.phase = PhaseSubmitting
	f.missing = nil
	f.notice = ""
	req := api.ContactRequest{
		Name:    strings.TrimSpace(f.values.Name),
		Email:   strings.TrimSpace(f.values.Email),
		Phone:   strings.TrimSpace(f.values.Phone),
		Subject: f.values.Subject,
		Message: f.values.Message,
	}
	key := f.pendingKey
	if key == "" || f.pendingValues != f.values {
		key = f.newKey()
	}
	sent := f.values
	f.mu.Unlock()

	resp, err := f.submitter.SubmitLead(ctx, req, key)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.lastErr = err
		var ae *apperrors.Error
		if errors.As(err, &ae) && ae.Code == apperrors.CodeValidation {
			// Sunucu girdiyi reddetti: kullanıcı düzeltip tekrar gönderir
			f.phase = PhaseEditing
			f.notice = ae.Message
			if f.notice == "" {
				f.notice = MsgInvalidInput
			}
			if fld := Field(ae.Field); isFormField(fld) {
				f.missing = []Field{fld}
			}
			f.pendingKey = ""
			return f.phase
		}

		f.log.WithError(err).Warn("İletişim formu gönderilemedi", map[string]interface{}{"subject": req.Subject})
		f.phase = PhaseSubmittedError
		f.notice = MsgSubmitFailed
		f.pendingKey = key
		f.pendingValues = sent
		return f.phase
	}

	f.phase = PhaseSubmittedOK
	f.notice = MsgSubmitOK
	if resp != nil && resp.Message != "" {
		f.notice = resp.Message
	}
	f.values = InitialValues()
	f.lastErr = nil
	f.pendingKey = ""
	return f.phase
}

func (f *Form) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Notice is the acknowledgement, failure or validation text to show.
func (f *Form) Notice() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

func (f *Form) Missing() []Field {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Field(nil), f.missing...)
}

func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// WhatsAppLink is available in every phase, whatever the form holds.
func (f *Form) WhatsAppLink() string {
	return f.linker.Link(FallbackMessage(f.Values()))
}

func FallbackMessage(v Values) string {
	return fmt.Sprintf("Merhaba Golden Citizen,\n\nAdım: %s\nTelefon: %s\n\nYunanistan Golden Visa hakkında bilgi almak istiyorum.",
		orPlaceholder(v.Name, placeholderName),
		orPlaceholder(v.Phone, placeholderPhone),
	)
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return strings.TrimSpace(v)
}

func missingRequired(v Values) []Field {
	var out []Field
	for _, fld := range requiredFields {
		var val string
		switch fld {
		case FieldName:
			val = v.Name
		case FieldEmail:
			val = v.Email
		case FieldPhone:
			val = v.Phone
		}
		if strings.TrimSpace(val) == "" {
			out = append(out, fld)
		}
	}
	return out
}

func isFormField(f Field) bool {
	switch f {
	case FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage:
		return true
	}
	return false
}

func validSubject(s string) bool {
	for _, v := range api.Subjects {
		if v == s {
			return true
		}
	}
	return false
}

func removeField(fields []Field, f Field) []Field {
	out := fields[:0]
	for _, x := range fields {
		if x != f {
			out = append(out, x)
		}
	}
	return out
}
