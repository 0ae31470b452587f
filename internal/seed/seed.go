// Package seed loads the initial company profile and property portfolio
// into the content store.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"goldencitizen-backend/internal/models"

	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed data.yaml
var defaultData []byte

type Data struct {
	Company    Company    `yaml:"company"`
	Properties []Property `yaml:"properties"`
}

type Company struct {
	Founder struct {
		Name         string   `yaml:"name"`
		Title        string   `yaml:"title"`
		Experience   string   `yaml:"experience"`
		Credentials  string   `yaml:"credentials"`
		Description  string   `yaml:"description"`
		Achievements []string `yaml:"achievements"`
	} `yaml:"founder"`
	Contact struct {
		WhatsApp    string `yaml:"whatsapp"`
		Email       string `yaml:"email"`
		Address     string `yaml:"address"`
		OfficeHours string `yaml:"officeHours"`
	} `yaml:"contact"`
	Stats struct {
		SuccessfulApplications int    `yaml:"successfulApplications"`
		SuccessRate            int    `yaml:"successRate"`
		ExperienceYears        int    `yaml:"experienceYears"`
		AverageProcessTime     string `yaml:"averageProcessTime"`
	} `yaml:"stats"`
}

type Property struct {
	Title       string   `yaml:"title"`
	Location    string   `yaml:"location"`
	Price       int64    `yaml:"price"`
	Type        string   `yaml:"type"`
	Size        string   `yaml:"size"`
	Bedrooms    int      `yaml:"bedrooms"`
	Bathrooms   int      `yaml:"bathrooms"`
	Features    []string `yaml:"features"`
	Description string   `yaml:"description"`
	ImageURL    string   `yaml:"imageUrl"`
	Gallery     []string `yaml:"gallery"`
}

// Default returns the embedded seed set.
func Default() (*Data, error) {
	return Parse(defaultData)
}

func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("seed verisi okunamadı: %w", err)
	}
	if d.Company.Founder.Name == "" {
		return nil, fmt.Errorf("seed verisinde şirket profili eksik")
	}
	for i, p := range d.Properties {
		if p.Title == "" || p.Price <= 0 {
			return nil, fmt.Errorf("seed verisinde %d. emlak eksik (başlık/fiyat)", i+1)
		}
	}
	return &d, nil
}

func (d *Data) CompanyProfile() models.CompanyProfile {
	c := d.Company
	return models.CompanyProfile{
		Founder: models.Founder{
			Name:         c.Founder.Name,
			Title:        c.Founder.Title,
			Experience:   c.Founder.Experience,
			Credentials:  c.Founder.Credentials,
			Description:  c.Founder.Description,
			Achievements: pq.StringArray(c.Founder.Achievements),
		},
		Contact: models.CompanyContact{
			WhatsApp:    c.Contact.WhatsApp,
			Email:       c.Contact.Email,
			Address:     c.Contact.Address,
			OfficeHours: c.Contact.OfficeHours,
		},
		Stats: models.CompanyStats{
			SuccessfulApplications: c.Stats.SuccessfulApplications,
			SuccessRate:            c.Stats.SuccessRate,
			ExperienceYears:        c.Stats.ExperienceYears,
			AverageProcessTime:     c.Stats.AverageProcessTime,
		},
	}
}

func (d *Data) PropertyModels() []models.Property {
	out := make([]models.Property, 0, len(d.Properties))
	for _, p := range d.Properties {
		gallery := p.Gallery
		if len(gallery) == 0 && p.ImageURL != "" {
			gallery = []string{p.ImageURL}
		}
		out = append(out, models.Property{
			Title:       p.Title,
			Location:    p.Location,
			Price:       p.Price,
			Type:        p.Type,
			Size:        p.Size,
			Bedrooms:    p.Bedrooms,
			Bathrooms:   p.Bathrooms,
			Features:    pq.StringArray(p.Features),
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Gallery:     pq.StringArray(gallery),
			IsActive:    true,
		})
	}
	return out
}

type Result struct {
	Properties int
	Company    bool
}

// Run writes the seed set in one transaction. With reset, existing profile
// and properties are removed first; otherwise a store that already has a
// profile is left untouched.
func Run(db *gorm.DB, d *Data, reset bool) (Result, error) {
	var res Result
	err := db.Transaction(func(tx *gorm.DB) error {
		if reset {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Property{}).Error; err != nil {
				return fmt.Errorf("emlaklar silinemedi: %w", err)
			}
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CompanyProfile{}).Error; err != nil {
				return fmt.Errorf("şirket profili silinemedi: %w", err)
			}
		} else {
			var count int64
			if err := tx.Model(&models.CompanyProfile{}).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return nil
			}
		}

		profile := d.CompanyProfile()
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("şirket profili eklenemedi: %w", err)
		}
		res.Company = true

		props := d.PropertyModels()
		if len(props) > 0 {
			if err := tx.Create(&props).Error; err != nil {
				return fmt.Errorf("emlaklar eklenemedi: %w", err)
			}
		}
		res.Properties = len(props)
		return nil
	})
	return res, err
}

// Load reads a seed set from a YAML file on disk.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed dosyası okunamadı: %w", err)
	}
	return Parse(raw)
}
