package models

import (
	"time"

	"github.com/lib/pq"
)

// Property - Golden Visa kapsamındaki satılık emlak
type Property struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"size:200;not null"`
	Location    string         `gorm:"size:200;not null"`
	Price       int64          `gorm:"not null"`         // EUR, kuruşsuz
	Type        string         `gorm:"size:50;not null"` // Daire, Villa, Resort Daire...
	Size        string         `gorm:"size:50"`          // "120 m²"
	Bedrooms    int            `gorm:"not null"`
	Bathrooms   int            `gorm:"not null"`
	Features    pq.StringArray `gorm:"type:text[]"`
	Description string         `gorm:"size:2000"`
	ImageURL    string         `gorm:"size:500"`
	Gallery     pq.StringArray `gorm:"type:text[]"`
	IsActive    bool           `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
