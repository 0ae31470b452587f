package models

import (
	"time"

	"goldencitizen-backend/internal/api"
)

type LeadSubject string

const DefaultLeadSubject LeadSubject = api.DefaultSubject

func (s LeadSubject) Valid() bool {
	for _, v := range api.Subjects {
		if v == string(s) {
			return true
		}
	}
	return false
}

// Lead - iletişim formundan gelen başvuru
type Lead struct {
	ID        uint        `gorm:"primaryKey"`
	Reference string      `gorm:"size:64;uniqueIndex;not null"` // Idempotency-Key veya uuid
	Name      string      `gorm:"size:100;not null"`
	Email     string      `gorm:"size:100;not null;index"`
	Phone     string      `gorm:"size:30;not null"`
	Subject   LeadSubject `gorm:"size:50;not null"`
	Message   string      `gorm:"type:text"`
	IsRead    bool        `gorm:"not null"`
	CreatedAt time.Time   `gorm:"index"`
}
