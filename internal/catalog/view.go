// Package catalog is the view model behind the property portfolio: fetch
// state, summary cards, favorites, the detail overlay and the WhatsApp
// inquiry handoff.
package catalog

import (
	"context"
	"fmt"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/client"
	"goldencitizen-backend/internal/logger"
	"goldencitizen-backend/internal/messaging"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseFailed
	PhaseEmpty
	PhasePopulated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseEmpty:
		return "empty"
	case PhasePopulated:
		return "populated"
	}
	return "unknown"
}

// Summary cards show at most this many feature tags.
const MaxCardFeatures = 2

type PropertySource interface {
	ListProperties(ctx context.Context) ([]api.Property, error)
}

type Card struct {
	ID           uint
	Title        string
	Location     string
	Type         string
	Price        string
	Size         string
	Bedrooms     int
	Bathrooms    int
	Features     []string
	MoreFeatures int // "+N" rozeti
	Description  string
	ImageURL     string
	Favorite     bool
	InquiryURL   string
}

type Detail struct {
	ID          uint
	Title       string
	Location    string
	Type        string
	Price       string
	Size        string
	Bedrooms    int
	Bathrooms   int
	Features    []string
	Description string
	ImageURL    string
	Gallery     []string
	Favorite    bool
	InquiryURL  string
}

type View struct {
	properties *client.Resource[[]api.Property]
	favorites  *FavoriteSet
	selected   *api.Property
	prices     *PriceFormatter
	linker     *messaging.Linker
}

func NewView(src PropertySource, prices *PriceFormatter, linker *messaging.Linker, log logger.Logger) *View {
	return &View{
		properties: client.NewResource[[]api.Property](src.ListProperties, client.MsgPropertiesFailed, log),
		favorites:  NewFavoriteSet(),
		prices:     prices,
		linker:     linker,
	}
}

// Mount starts a fresh view instance: favorites and selection are reset and
// the portfolio is fetched once.
func (v *View) Mount(ctx context.Context) Phase {
	v.favorites = NewFavoriteSet()
	v.selected = nil
	v.properties.Load(ctx)
	return v.Phase()
}

// Retry is the user-triggered refetch after a failure.
func (v *View) Retry(ctx context.Context) Phase {
	v.properties.Retry(ctx)
	if v.selected != nil {
		if _, ok := v.find(v.selected.ID); !ok {
			v.selected = nil
		}
	}
	return v.Phase()
}

func (v *View) Phase() Phase {
	st := v.properties.State()
	switch {
	case st.Loading():
		return PhaseLoading
	case st.Failed():
		return PhaseFailed
	case len(st.Data) == 0:
		return PhaseEmpty
	default:
		return PhasePopulated
	}
}

// ErrorMessage is set only in PhaseFailed.
func (v *View) ErrorMessage() string {
	return v.properties.State().Message
}

func (v *View) Cards() []Card {
	props := v.properties.State().Data
	cards := make([]Card, 0, len(props))
	for _, p := range props {
		shown := p.Features
		more := 0
		if len(shown) > MaxCardFeatures {
			more = len(shown) - MaxCardFeatures
			shown = shown[:MaxCardFeatures]
		}
		cards = append(cards, Card{
			ID:           p.ID,
			Title:        p.Title,
			Location:     p.Location,
			Type:         p.Type,
			Price:        v.prices.Format(p.Price),
			Size:         p.Size,
			Bedrooms:     p.Bedrooms,
			Bathrooms:    p.Bathrooms,
			Features:     append([]string(nil), shown...),
			MoreFeatures: more,
			Description:  p.Description,
			ImageURL:     p.ImageURL,
			Favorite:     v.favorites.Has(p.ID),
			InquiryURL:   v.InquiryLink(p),
		})
	}
	return cards
}

func (v *View) ToggleFavorite(id uint) bool {
	return v.favorites.Toggle(id)
}

func (v *View) IsFavorite(id uint) bool {
	return v.favorites.Has(id)
}

func (v *View) Favorites() []uint {
	return v.favorites.IDs()
}

// Select opens the detail overlay for id, replacing any open one.
func (v *View) Select(id uint) error {
	p, ok := v.find(id)
	if !ok {
		return fmt.Errorf("emlak bulunamadı: %d", id)
	}
	v.selected = &p
	return nil
}

func (v *View) Dismiss() {
	v.selected = nil
}

// Selected returns the detail overlay content, if one is open.
func (v *View) Selected() (Detail, bool) {
	if v.selected == nil {
		return Detail{}, false
	}
	p := *v.selected
	return Detail{
		ID:          p.ID,
		Title:       p.Title,
		Location:    p.Location,
		Type:        p.Type,
		Price:       v.prices.Format(p.Price),
		Size:        p.Size,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Features:    append([]string(nil), p.Features...),
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Gallery:     append([]string(nil), p.Gallery...),
		Favorite:    v.favorites.Has(p.ID),
		InquiryURL:  v.InquiryLink(p),
	}, true
}

// InquiryLink is shared by the summary card and the detail overlay.
func (v *View) InquiryLink(p api.Property) string {
	return v.linker.Link(InquiryMessage(p.Title, v.prices.Format(p.Price)))
}

func InquiryMessage(title, formattedPrice string) string {
	return fmt.Sprintf("Merhaba, %s (%s) hakkında detaylı bilgi almak istiyorum.", title, formattedPrice)
}

func (v *View) find(id uint) (api.Property, bool) {
	for _, p := range v.properties.State().Data {
		if p.ID == id {
			return p, true
		}
	}
	return api.Property{}, false
}
