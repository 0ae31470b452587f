package models

import (
	"time"

	"github.com/lib/pq"
)

// CompanyProfile tekil kayıttır; sadece içerik yönetimi (seed) tarafından değişir.
type CompanyProfile struct {
	ID        uint           `gorm:"primaryKey"`
	Founder   Founder        `gorm:"embedded;embeddedPrefix:founder_"`
	Contact   CompanyContact `gorm:"embedded;embeddedPrefix:contact_"`
	Stats     CompanyStats   `gorm:"embedded;embeddedPrefix:stats_"`
	UpdatedAt time.Time
}

type Founder struct {
	Name         string         `gorm:"size:100;not null"`
	Title        string         `gorm:"size:150"`
	Experience   string         `gorm:"size:255"`
	Credentials  string         `gorm:"size:255"`
	Description  string         `gorm:"size:2000"`
	Achievements pq.StringArray `gorm:"type:text[]"` // sıralı
}

type CompanyContact struct {
	WhatsApp    string `gorm:"column:whatsapp;size:30"`
	Email       string `gorm:"size:100"`
	Address     string `gorm:"size:255"`
	OfficeHours string `gorm:"size:100"`
}

type CompanyStats struct {
	SuccessfulApplications int
	// yüzde
	SuccessRate            int
	ExperienceYears        int
	// serbest metin, örn: "3-6 ay"
	AverageProcessTime     string `gorm:"size:50"`
}
