// file: internals/features/clients/additional_services/model/additional_service_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdditionalServiceStatus string

const (
	AdditionalServiceStatusActive  AdditionalServiceStatus = "active"
	AdditionalServiceStatusStopped AdditionalServiceStatus = "stopped"
)

// AdditionalService = layanan tambahan (IP publik, IPTV, dsb).
// Selalu ditagih tarif penuh, tidak pernah prorata.
type AdditionalService struct {
	AdditionalServiceID uuid.UUID `gorm:"column:additional_service_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"additional_service_id"`

	AdditionalServiceClientID uuid.UUID `gorm:"column:additional_service_client_id;type:uuid;not null;index" json:"additional_service_client_id"`

	AdditionalServiceName          string `gorm:"column:additional_service_name;type:varchar(80);not null" json:"additional_service_name"`
	AdditionalServiceMonthlyFeeIDR int    `gorm:"column:additional_service_monthly_fee_idr;type:int;not null;check:additional_service_monthly_fee_idr>=0" json:"additional_service_monthly_fee_idr"`

	AdditionalServiceStatus    AdditionalServiceStatus `gorm:"column:additional_service_status;type:varchar(20);not null;default:'active';index" json:"additional_service_status"`
	AdditionalServiceStartDate time.Time               `gorm:"column:additional_service_start_date;type:date;not null" json:"additional_service_start_date"`
	AdditionalServiceEndDate   *time.Time              `gorm:"column:additional_service_end_date;type:date" json:"additional_service_end_date,omitempty"`

	AdditionalServiceCreatedAt time.Time      `gorm:"column:additional_service_created_at;type:timestamptz;not null;default:now()" json:"additional_service_created_at"`
	AdditionalServiceUpdatedAt time.Time      `gorm:"column:additional_service_updated_at;type:timestamptz;not null;default:now()" json:"additional_service_updated_at"`
	AdditionalServiceDeletedAt gorm.DeletedAt `gorm:"column:additional_service_deleted_at;type:timestamptz;index" json:"-"`
}

func (AdditionalService) TableName() string { return "additional_services" }

func (m *AdditionalService) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AdditionalServiceID == uuid.Nil {
		m.AdditionalServiceID = uuid.New()
	}
	if strings.TrimSpace(string(m.AdditionalServiceStatus)) == "" {
		m.AdditionalServiceStatus = AdditionalServiceStatusActive
	}
	if m.AdditionalServiceCreatedAt.IsZero() {
		m.AdditionalServiceCreatedAt = now
	}
	m.AdditionalServiceUpdatedAt = now
	return nil
}

func (m *AdditionalService) BeforeUpdate(tx *gorm.DB) (err error) {
	m.AdditionalServiceUpdatedAt = time.Now()
	return nil
}
