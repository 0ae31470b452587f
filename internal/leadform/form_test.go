package leadform

import (
	"context"
	"errors"
	"strings"
	"testing"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/apperrors"
	"goldencitizen-backend/internal/catalog"
	"goldencitizen-backend/internal/client"
	"goldencitizen-backend/internal/logger"
	"goldencitizen-backend/internal/messaging"
	"goldencitizen-backend/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubmitter struct {
	form  *Form
	err   error
	reqs  []api.ContactRequest
	keys  []string
	phase Phase // gönderim sırasında gözlenen faz
}

func (s *stubSubmitter) SubmitLead(_ context.Context, req api.ContactRequest, key string) (*api.ContactResponse, error) {
	s.reqs = append(s.reqs, req)
	s.keys = append(s.keys, key)
	if s.form != nil {
		s.phase = s.form.Phase()
	}
	if s.err != nil {
		return nil, s.err
	}
	return &api.ContactResponse{Success: true, Message: "Formunuz alındı."}, nil
}

type stubCompany struct {
	info *api.CompanyInfo
	err  error
}

func (s *stubCompany) GetCompanyProfile(context.Context) (*api.CompanyInfo, error) {
	return s.info, s.err
}

func (s *stubCompany) ListProperties(context.Context) ([]api.Property, error) {
	return nil, s.err
}

func newTestForm(t *testing.T, sub *stubSubmitter) *Form {
	t.Helper()
	f := New(sub, &stubCompany{info: &api.CompanyInfo{}}, messaging.NewLinker("https://wa.me", "905332853031"), logger.NewTestLogger(t))
	sub.form = f
	return f
}

func fill(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.Set(FieldName, "Ayşe Yılmaz"))
	require.NoError(t, f.Set(FieldEmail, "ayse@example.com"))
	require.NoError(t, f.Set(FieldPhone, "0532 000 00 00"))
}

func TestForm_Defaults(t *testing.T) {
	f := newTestForm(t, &stubSubmitter{})
	assert.Equal(t, PhaseEditing, f.Phase())
	assert.Equal(t, api.DefaultSubject, f.Values().Subject)
}

func TestForm_MissingFieldsBlockSubmit(t *testing.T) {
	sub := &stubSubmitter{}
	f := newTestForm(t, sub)
	require.NoError(t, f.Set(FieldName, "Ayşe"))
	require.NoError(t, f.Set(FieldPhone, "   "))

	assert.Equal(t, PhaseEditing, f.Submit(context.Background()))
	assert.Empty(t, sub.reqs)
	assert.Equal(t, []Field{FieldEmail, FieldPhone}, f.Missing())
	assert.Equal(t, MsgMissingRequired, f.Notice())

	require.NoError(t, f.Set(FieldEmail, "ayse@example.com"))
	assert.Equal(t, []Field{FieldPhone}, f.Missing())
}

func TestForm_SubmitOKResets(t *testing.T) {
	sub := &stubSubmitter{}
	f := newTestForm(t, sub)
	fill(t, f)
	// konu varsayılan, mesaj boş: yine de geçerli
	assert.Equal(t, PhaseSubmittedOK, f.Submit(context.Background()))

	require.Len(t, sub.reqs, 1)
	assert.Equal(t, PhaseSubmitting, sub.phase)
	assert.Equal(t, api.DefaultSubject, sub.reqs[0].Subject)
	assert.Empty(t, sub.reqs[0].Message)
	assert.NotEmpty(t, sub.keys[0])

	assert.Equal(t, "Formunuz alındı.", f.Notice())
	assert.Equal(t, InitialValues(), f.Values())
}

func TestForm_SubmitErrorKeepsValues(t *testing.T) {
	sub := &stubSubmitter{err: apperrors.ServiceUnavailable("down", errors.New("dial tcp"))}
	f := newTestForm(t, sub)
	fill(t, f)
	require.NoError(t, f.Set(FieldSubject, api.SubjectPricing))
	require.NoError(t, f.Set(FieldMessage, "Fiyat listesi"))

	assert.Equal(t, PhaseSubmittedError, f.Submit(context.Background()))
	assert.Equal(t, MsgSubmitFailed, f.Notice())
	assert.Error(t, f.Err())

	v := f.Values()
	assert.Equal(t, "Ayşe Yılmaz", v.Name)
	assert.Equal(t, api.SubjectPricing, v.Subject)
	assert.Equal(t, "Fiyat listesi", v.Message)

	// düzenleme formu tekrar Editing'e alır
	require.NoError(t, f.Set(FieldMessage, "Fiyat listesi lütfen"))
	assert.Equal(t, PhaseEditing, f.Phase())
	assert.Empty(t, f.Notice())

	sub.err = nil
	assert.Equal(t, PhaseSubmittedOK, f.Submit(context.Background()))
	assert.Len(t, sub.reqs, 2)
	assert.NotEqual(t, sub.keys[0], sub.keys[1])
}

func TestForm_ServerValidationReturnsToEditing(t *testing.T) {
	sub := &stubSubmitter{err: apperrors.Validation("email", "Geçerli bir e-posta adresi girin")}
	f := newTestForm(t, sub)
	fill(t, f)
	require.NoError(t, f.Set(FieldEmail, "ayse@"))

	assert.Equal(t, PhaseEditing, f.Submit(context.Background()))
	assert.Equal(t, []Field{FieldEmail}, f.Missing())
	assert.Equal(t, "Geçerli bir e-posta adresi girin", f.Notice())
	assert.Equal(t, "ayse@", f.Values().Email)
	assert.True(t, apperrors.Is(f.Err(), apperrors.CodeValidation))

	// düzeltilen alan işaretten çıkar, form tekrar gönderilebilir
	require.NoError(t, f.Set(FieldEmail, "ayse@example.com"))
	assert.Empty(t, f.Missing())
	sub.err = nil
	assert.Equal(t, PhaseSubmittedOK, f.Submit(context.Background()))
}

func TestForm_ServerValidationUnknownField(t *testing.T) {
	sub := &stubSubmitter{err: apperrors.Validation("body", "")}
	f := newTestForm(t, sub)
	fill(t, f)

	assert.Equal(t, PhaseEditing, f.Submit(context.Background()))
	assert.Empty(t, f.Missing())
	assert.Equal(t, MsgInvalidInput, f.Notice())
}

func TestForm_ResubmitAfterFailureReusesKey(t *testing.T) {
	sub := &stubSubmitter{err: apperrors.ServiceUnavailable("timeout", errors.New("context deadline exceeded"))}
	f := newTestForm(t, sub)
	fill(t, f)

	assert.Equal(t, PhaseSubmittedError, f.Submit(context.Background()))
	assert.Equal(t, PhaseSubmittedError, f.Submit(context.Background()))
	require.Len(t, sub.keys, 2)
	assert.Equal(t, sub.keys[0], sub.keys[1])

	// değer değişirse yeni gönderimdir
	require.NoError(t, f.Set(FieldPhone, "0533 111 11 11"))
	sub.err = nil
	assert.Equal(t, PhaseSubmittedOK, f.Submit(context.Background()))
	require.Len(t, sub.keys, 3)
	assert.NotEqual(t, sub.keys[1], sub.keys[2])

	fill(t, f)
	f.Submit(context.Background())
	assert.NotEqual(t, sub.keys[2], sub.keys[3])
}

func TestForm_SetRejectsUnknown(t *testing.T) {
	f := newTestForm(t, &stubSubmitter{})
	assert.Error(t, f.Set(FieldSubject, "Vize iptali"))
	assert.Error(t, f.Set(Field("age"), "30"))
	assert.Equal(t, api.DefaultSubject, f.Values().Subject)
}

func TestForm_WhatsAppLink(t *testing.T) {
	sub := &stubSubmitter{err: errors.New("boom")}
	f := newTestForm(t, sub)

	empty := "Merhaba Golden Citizen,\n\nAdım: [İsim]\nTelefon: [Telefon]\n\nYunanistan Golden Visa hakkında bilgi almak istiyorum."
	assert.Equal(t, "https://wa.me/905332853031?text="+messaging.Encode(empty), f.WhatsAppLink())

	require.NoError(t, f.Set(FieldName, "Ayşe"))
	link := f.WhatsAppLink()
	assert.Contains(t, link, messaging.Encode("Adım: Ayşe"))
	assert.Contains(t, link, messaging.Encode("[Telefon]"))

	fill(t, f)
	f.Submit(context.Background())
	assert.Equal(t, PhaseSubmittedError, f.Phase())
	assert.True(t, strings.HasPrefix(f.WhatsAppLink(), "https://wa.me/905332853031?text="))
}

// Şirket bilgisi alınamadığında her görünüm kendi hata durumuna ve
// yeniden deneme kontrolüne sahiptir.
func TestViews_FailIndependently(t *testing.T) {
	ctx := context.Background()
	down := &stubCompany{err: apperrors.ServiceUnavailable("down", errors.New("dial tcp"))}

	prices, err := catalog.NewPriceFormatter("tr-TR", "EUR")
	require.NoError(t, err)
	linker := messaging.NewLinker("https://wa.me", "905332853031")

	catalogView := catalog.NewView(down, prices, linker, logger.NewNoOpLogger())
	about := profile.NewView(down, logger.NewNoOpLogger())
	form := New(&stubSubmitter{}, down, linker, logger.NewNoOpLogger())

	assert.Equal(t, catalog.PhaseFailed, catalogView.Mount(ctx))
	assert.True(t, about.Mount(ctx).Failed())
	assert.True(t, form.Mount(ctx).Failed())
	assert.Equal(t, client.MsgCompanyFailed, form.Company().Message)

	// Hakkında bölümü düzelir, diğerleri etkilenmez
	down.err = nil
	down.info = &api.CompanyInfo{}
	assert.True(t, about.Retry(ctx).Ready())
	assert.Equal(t, catalog.PhaseFailed, catalogView.Phase())
	assert.True(t, form.Company().Failed())

	assert.True(t, form.RetryCompany(ctx).Ready())
	// form hata durumundayken de kullanılabilir
	assert.Equal(t, PhaseEditing, form.Phase())
}
