// file: internals/features/clients/installations/model/installation_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status layanan
============================== */

type ServiceStatus string

const (
	ServiceStatusActive    ServiceStatus = "active"
	ServiceStatusSuspended ServiceStatus = "suspended"
	ServiceStatusCancelled ServiceStatus = "cancelled"
)

/* ==============================================
   MODEL — satu jalur layanan yang ditagih
============================================== */

// Installation billable pada satu periode iff jendela hidupnya
// [installation_date, installation_retired_at ?? +inf) beririsan dengan
// periode DAN tidak soft-deleted. Installation non-active hanya ditagih
// untuk porsi periode sebelum installation_retired_at.
type Installation struct {
	InstallationID uuid.UUID `gorm:"column:installation_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"installation_id"`

	InstallationClientID uuid.UUID  `gorm:"column:installation_client_id;type:uuid;not null;index" json:"installation_client_id"`
	InstallationPlanID   *uuid.UUID `gorm:"column:installation_plan_id;type:uuid;index" json:"installation_plan_id,omitempty"`

	InstallationAddress *string `gorm:"column:installation_address;type:text" json:"installation_address,omitempty"`

	// Jendela hidup
	InstallationDate      time.Time  `gorm:"column:installation_date;type:date;not null;index" json:"installation_date"`
	InstallationRetiredAt *time.Time `gorm:"column:installation_retired_at;type:date;index" json:"installation_retired_at,omitempty"`

	// Snapshot tarif dari service_plans saat pasang/ganti paket
	InstallationMonthlyFeeIDR int `gorm:"column:installation_monthly_fee_idr;type:int;not null;check:installation_monthly_fee_idr>=0" json:"installation_monthly_fee_idr"`

	InstallationServiceStatus ServiceStatus `gorm:"column:installation_service_status;type:varchar(20);not null;default:'active';index" json:"installation_service_status"`
	InstallationIsActive      bool          `gorm:"column:installation_is_active;not null;default:true" json:"installation_is_active"`

	InstallationNote *string `gorm:"column:installation_note;type:text" json:"installation_note,omitempty"`

	// Audit
	InstallationCreatedAt time.Time      `gorm:"column:installation_created_at;type:timestamptz;not null;default:now()" json:"installation_created_at"`
	InstallationUpdatedAt time.Time      `gorm:"column:installation_updated_at;type:timestamptz;not null;default:now()" json:"installation_updated_at"`
	InstallationDeletedAt gorm.DeletedAt `gorm:"column:installation_deleted_at;type:timestamptz;index" json:"-"`
}

func (Installation) TableName() string { return "installations" }

func (m *Installation) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.InstallationID == uuid.Nil {
		m.InstallationID = uuid.New()
	}
	if strings.TrimSpace(string(m.InstallationServiceStatus)) == "" {
		m.InstallationServiceStatus = ServiceStatusActive
	}
	if m.InstallationCreatedAt.IsZero() {
		m.InstallationCreatedAt = now
	}
	m.InstallationUpdatedAt = now
	return nil
}

func (m *Installation) BeforeUpdate(tx *gorm.DB) (err error) {
	m.InstallationUpdatedAt = time.Now()
	return nil
}
