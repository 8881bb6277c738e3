// file: internals/features/sales/products/model/product_installment_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductInstallmentStatus string

const (
	ProductInstallmentStatusPending   ProductInstallmentStatus = "pending"
	ProductInstallmentStatusPaid      ProductInstallmentStatus = "paid"
	ProductInstallmentStatusCancelled ProductInstallmentStatus = "cancelled"
)

// ProductInstallment = satu termin cicilan dengan jatuh tempo tetap.
// Hanya termin pending yang jadi kandidat billing; termin masuk "periode ini"
// iff due_date <= grace boundary periode dan sale_date <= akhir periode.
type ProductInstallment struct {
	ProductInstallmentID uuid.UUID `gorm:"column:product_installment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"product_installment_id"`

	ProductInstallmentSaleID uuid.UUID `gorm:"column:product_installment_sale_id;type:uuid;not null;index" json:"product_installment_sale_id"`
	// Denormalisasi untuk batch-load per client tanpa join
	ProductInstallmentClientID uuid.UUID `gorm:"column:product_installment_client_id;type:uuid;not null;index" json:"product_installment_client_id"`

	ProductInstallmentNo        int       `gorm:"column:product_installment_no;type:int;not null;check:product_installment_no>=1" json:"product_installment_no"`
	ProductInstallmentDueDate   time.Time `gorm:"column:product_installment_due_date;type:date;not null;index" json:"product_installment_due_date"`
	ProductInstallmentAmountIDR int       `gorm:"column:product_installment_amount_idr;type:int;not null;check:product_installment_amount_idr>=0" json:"product_installment_amount_idr"`

	ProductInstallmentStatus ProductInstallmentStatus `gorm:"column:product_installment_status;type:varchar(20);not null;default:'pending';index" json:"product_installment_status"`
	ProductInstallmentPaidAt *time.Time               `gorm:"column:product_installment_paid_at;type:timestamptz" json:"product_installment_paid_at,omitempty"`

	ProductInstallmentCreatedAt time.Time      `gorm:"column:product_installment_created_at;type:timestamptz;not null;default:now()" json:"product_installment_created_at"`
	ProductInstallmentUpdatedAt time.Time      `gorm:"column:product_installment_updated_at;type:timestamptz;not null;default:now()" json:"product_installment_updated_at"`
	ProductInstallmentDeletedAt gorm.DeletedAt `gorm:"column:product_installment_deleted_at;type:timestamptz;index" json:"-"`
}

func (ProductInstallment) TableName() string { return "product_installments" }

func (m *ProductInstallment) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ProductInstallmentID == uuid.Nil {
		m.ProductInstallmentID = uuid.New()
	}
	if strings.TrimSpace(string(m.ProductInstallmentStatus)) == "" {
		m.ProductInstallmentStatus = ProductInstallmentStatusPending
	}
	if m.ProductInstallmentCreatedAt.IsZero() {
		m.ProductInstallmentCreatedAt = now
	}
	m.ProductInstallmentUpdatedAt = now
	return nil
}

func (m *ProductInstallment) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ProductInstallmentUpdatedAt = time.Now()
	return nil
}
