// file: internals/features/crm/interactions/model/crm_interaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CrmInteractionKind string

const (
	CrmInteractionKindBilling    CrmInteractionKind = "billing"
	CrmInteractionKindSupport    CrmInteractionKind = "support"
	CrmInteractionKindCollection CrmInteractionKind = "collection"
	CrmInteractionKindInfo       CrmInteractionKind = "info"
)

// CrmInteraction = jejak audit human-readable per client.
// Billing menulis ke sini best-effort; gagal tulis tidak menggagalkan billing.
type CrmInteraction struct {
	CrmInteractionID uuid.UUID `gorm:"column:crm_interaction_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"crm_interaction_id"`

	CrmInteractionClientID uuid.UUID `gorm:"column:crm_interaction_client_id;type:uuid;not null;index" json:"crm_interaction_client_id"`

	CrmInteractionKind CrmInteractionKind `gorm:"column:crm_interaction_kind;type:varchar(20);not null;default:'info';index" json:"crm_interaction_kind"`
	CrmInteractionBody string             `gorm:"column:crm_interaction_body;type:text;not null" json:"crm_interaction_body"`

	CrmInteractionAuthor *string `gorm:"column:crm_interaction_author;type:varchar(80)" json:"crm_interaction_author,omitempty"`

	CrmInteractionCreatedAt time.Time      `gorm:"column:crm_interaction_created_at;type:timestamptz;not null;default:now();index" json:"crm_interaction_created_at"`
	CrmInteractionDeletedAt gorm.DeletedAt `gorm:"column:crm_interaction_deleted_at;type:timestamptz;index" json:"-"`
}

func (CrmInteraction) TableName() string { return "crm_interactions" }

func (m *CrmInteraction) BeforeCreate(tx *gorm.DB) (err error) {
	if m.CrmInteractionID == uuid.Nil {
		m.CrmInteractionID = uuid.New()
	}
	if m.CrmInteractionCreatedAt.IsZero() {
		m.CrmInteractionCreatedAt = time.Now()
	}
	return nil
}
