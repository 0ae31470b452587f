package models

import "time"

type AuditAction string

const (
	AuditActionCreate     AuditAction = "create"
	AuditActionUpdate     AuditAction = "update"
	AuditActionDeactivate AuditAction = "deactivate"
	AuditActionMarkRead   AuditAction = "mark_read"
)

// AuditLog - içerik deposundaki yönetimsel değişikliklerin kaydı
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Kimlik doğrulama yok; isteği yapan IP tutuluyor
	Actor string `gorm:"size:100" json:"actor"`

	// Hangi entity? ("property", "lead")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	// Önceki ve sonraki hal (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
