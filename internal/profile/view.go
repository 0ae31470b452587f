// Package profile is the view model of the About section: founder profile
// and the trust indicators built from company stats.
package profile

import (
	"context"
	"fmt"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/client"
	"goldencitizen-backend/internal/logger"
)

type CompanySource interface {
	GetCompanyProfile(ctx context.Context) (*api.CompanyInfo, error)
}

type TrustIndicator struct {
	Label string
	Value string
}

type View struct {
	company *client.Resource[*api.CompanyInfo]
}

func NewView(src CompanySource, log logger.Logger) *View {
	return &View{
		company: client.NewResource[*api.CompanyInfo](src.GetCompanyProfile, client.MsgCompanyFailed, log),
	}
}

func (v *View) Mount(ctx context.Context) client.State[*api.CompanyInfo] {
	return v.company.Load(ctx)
}

func (v *View) Retry(ctx context.Context) client.State[*api.CompanyInfo] {
	return v.company.Retry(ctx)
}

func (v *View) State() client.State[*api.CompanyInfo] {
	return v.company.State()
}

// TrustIndicators is empty unless the profile is loaded.
func (v *View) TrustIndicators() []TrustIndicator {
	st := v.company.State()
	if !st.Ready() || st.Data == nil {
		return nil
	}
	s := st.Data.Stats
	return []TrustIndicator{
		{Label: "Başarılı Başvuru", Value: fmt.Sprintf("%d+", s.SuccessfulApplications)},
		{Label: "Başarı Oranı", Value: fmt.Sprintf("%d%%", s.SuccessRate)},
		{Label: "Yıl Deneyim", Value: fmt.Sprintf("%d", s.ExperienceYears)},
		{Label: "Ortalama Süreç", Value: s.AverageProcessTime},
	}
}
