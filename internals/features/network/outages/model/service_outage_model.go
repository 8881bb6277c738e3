// file: internals/features/network/outages/model/service_outage_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status outage credit
============================== */

type ServiceOutageStatus string

const (
	ServiceOutageStatusPending   ServiceOutageStatus = "pending"
	ServiceOutageStatusApplied   ServiceOutageStatus = "applied"
	ServiceOutageStatusCancelled ServiceOutageStatus = "cancelled"
)

/* ==============================================
   MODEL — kredit kompensasi gangguan
============================================== */

// ServiceOutage = catatan kompensasi downtime.
// pending boleh dipotongkan di periode mana pun; applied hanya dihitung
// ulang kalau sudah menunjuk payment yang sedang di-recompute
// (kunci idempotensi generate ulang).
type ServiceOutage struct {
	ServiceOutageID uuid.UUID `gorm:"column:service_outage_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"service_outage_id"`

	ServiceOutageClientID uuid.UUID `gorm:"column:service_outage_client_id;type:uuid;not null;index" json:"service_outage_client_id"`

	ServiceOutageStartedAt time.Time  `gorm:"column:service_outage_started_at;type:date;not null" json:"service_outage_started_at"`
	ServiceOutageEndedAt   *time.Time `gorm:"column:service_outage_ended_at;type:date" json:"service_outage_ended_at,omitempty"`

	ServiceOutageDays        int `gorm:"column:service_outage_days;type:int;not null;check:service_outage_days>=0" json:"service_outage_days"`
	ServiceOutageDiscountIDR int `gorm:"column:service_outage_discount_idr;type:int;not null;check:service_outage_discount_idr>=0" json:"service_outage_discount_idr"`

	ServiceOutageStatus ServiceOutageStatus `gorm:"column:service_outage_status;type:varchar(20);not null;default:'pending';index" json:"service_outage_status"`

	// Back-reference; terisi hanya saat status applied
	ServiceOutageAppliedPaymentID *uuid.UUID `gorm:"column:service_outage_applied_payment_id;type:uuid;index" json:"service_outage_applied_payment_id,omitempty"`

	ServiceOutageNote *string `gorm:"column:service_outage_note;type:text" json:"service_outage_note,omitempty"`

	ServiceOutageCreatedAt time.Time      `gorm:"column:service_outage_created_at;type:timestamptz;not null;default:now()" json:"service_outage_created_at"`
	ServiceOutageUpdatedAt time.Time      `gorm:"column:service_outage_updated_at;type:timestamptz;not null;default:now()" json:"service_outage_updated_at"`
	ServiceOutageDeletedAt gorm.DeletedAt `gorm:"column:service_outage_deleted_at;type:timestamptz;index" json:"-"`
}

func (ServiceOutage) TableName() string { return "service_outages" }

func (m *ServiceOutage) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ServiceOutageID == uuid.Nil {
		m.ServiceOutageID = uuid.New()
	}
	if strings.TrimSpace(string(m.ServiceOutageStatus)) == "" {
		m.ServiceOutageStatus = ServiceOutageStatusPending
	}
	if m.ServiceOutageCreatedAt.IsZero() {
		m.ServiceOutageCreatedAt = now
	}
	m.ServiceOutageUpdatedAt = now
	return nil
}

func (m *ServiceOutage) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ServiceOutageUpdatedAt = time.Now()
	return nil
}
