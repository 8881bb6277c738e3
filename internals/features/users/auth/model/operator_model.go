// file: internals/features/users/auth/model/operator_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operator = akun back-office (admin/kasir/teknisi).
type Operator struct {
	OperatorID uuid.UUID `gorm:"column:operator_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"operator_id"`

	OperatorUsername     string `gorm:"column:operator_username;type:varchar(60);not null;uniqueIndex:uniq_operator_username" json:"operator_username"`
	OperatorPasswordHash string `gorm:"column:operator_password_hash;type:varchar(120);not null" json:"-"`
	OperatorName         string `gorm:"column:operator_name;type:varchar(120);not null" json:"operator_name"`

	OperatorIsActive bool `gorm:"column:operator_is_active;not null;default:true;index" json:"operator_is_active"`

	OperatorCreatedAt time.Time      `gorm:"column:operator_created_at;type:timestamptz;not null;default:now()" json:"operator_created_at"`
	OperatorUpdatedAt time.Time      `gorm:"column:operator_updated_at;type:timestamptz;not null;default:now()" json:"operator_updated_at"`
	OperatorDeletedAt gorm.DeletedAt `gorm:"column:operator_deleted_at;type:timestamptz;index" json:"-"`
}

func (Operator) TableName() string { return "operators" }

func (m *Operator) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.OperatorID == uuid.Nil {
		m.OperatorID = uuid.New()
	}
	if m.OperatorCreatedAt.IsZero() {
		m.OperatorCreatedAt = now
	}
	m.OperatorUpdatedAt = now
	return nil
}

func (m *Operator) BeforeUpdate(tx *gorm.DB) (err error) {
	m.OperatorUpdatedAt = time.Now()
	return nil
}
