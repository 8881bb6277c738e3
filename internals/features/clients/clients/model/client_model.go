// file: internals/features/clients/clients/model/client_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status client
============================== */

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusArchived ClientStatus = "archived"
)

/* ==============================
   MODEL
============================== */

// Client adalah pelanggan ISP. Status di sini bukan sumber kebenaran
// billability; tanggal pasang/cabut di installations yang menentukan.
type Client struct {
	ClientID uuid.UUID `gorm:"column:client_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"client_id"`

	// Kode pelanggan (external id) — unik
	ClientCode string `gorm:"column:client_code;type:varchar(40);not null;uniqueIndex:uniq_client_code" json:"client_code"`

	ClientName    string         `gorm:"column:client_name;type:varchar(120);not null;index" json:"client_name"`
	ClientAddress *string        `gorm:"column:client_address;type:text" json:"client_address,omitempty"`
	ClientPhones  pq.StringArray `gorm:"column:client_phones;type:text[]" json:"client_phones,omitempty"`
	ClientEmail   *string        `gorm:"column:client_email;type:varchar(120)" json:"client_email,omitempty"`

	ClientStatus ClientStatus `gorm:"column:client_status;type:varchar(20);not null;default:'active';index" json:"client_status"`

	ClientNote *string `gorm:"column:client_note;type:text" json:"client_note,omitempty"`

	// Audit
	ClientCreatedAt time.Time      `gorm:"column:client_created_at;type:timestamptz;not null;default:now()" json:"client_created_at"`
	ClientUpdatedAt time.Time      `gorm:"column:client_updated_at;type:timestamptz;not null;default:now()" json:"client_updated_at"`
	ClientDeletedAt gorm.DeletedAt `gorm:"column:client_deleted_at;type:timestamptz;index" json:"-"`
}

func (Client) TableName() string { return "clients" }

/* ======================================
   HOOKS — default status & timestamps
====================================== */

func (m *Client) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ClientID == uuid.Nil {
		m.ClientID = uuid.New()
	}
	if strings.TrimSpace(string(m.ClientStatus)) == "" {
		m.ClientStatus = ClientStatusActive
	}
	if m.ClientCreatedAt.IsZero() {
		m.ClientCreatedAt = now
	}
	m.ClientUpdatedAt = now
	return nil
}

func (m *Client) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ClientUpdatedAt = time.Now()
	return nil
}
