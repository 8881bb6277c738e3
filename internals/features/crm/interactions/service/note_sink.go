// file: internals/features/crm/interactions/service/note_sink.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"netku_backend/internals/features/crm/interactions/model"
)

// GormNoteSink menulis jejak billing ke crm_interactions.
// Dipakai engine billing sebagai fire-and-forget: error dikembalikan ke
// caller hanya untuk di-log, tidak pernah menggagalkan billing.
type GormNoteSink struct {
	DB *gorm.DB
}

func NewGormNoteSink(db *gorm.DB) *GormNoteSink {
	return &GormNoteSink{DB: db}
}

func (s *GormNoteSink) WriteBillingNote(ctx context.Context, clientID uuid.UUID, body string) error {
	row := model.CrmInteraction{
		CrmInteractionClientID: clientID,
		CrmInteractionKind:     model.CrmInteractionKindBilling,
		CrmInteractionBody:     body,
	}
	return s.DB.WithContext(ctx).Create(&row).Error
}
