package audit

import (
	"encoding/json"
	"fmt"

	"goldencitizen-backend/internal/models"

	"gorm.io/gorm"
)

type LogOptions struct {
	Actor       string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

const (
	EntityProperty = "property"
	EntityLead     = "lead"
)

// WriteLog verilen transaction/oturum üzerinden audit kaydı yazar.
func WriteLog(db *gorm.DB, opts LogOptions) error {
	log := models.AuditLog{
		Actor:       opts.Actor,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  toJSON(opts.Before),
		AfterData:   toJSON(opts.After),
	}

	if err := db.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log kaydedilemedi: %w", err)
	}
	return nil
}

// PostgreSQL jsonb için boş string yerine "null" kullanılmalı
func toJSON(v any) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
