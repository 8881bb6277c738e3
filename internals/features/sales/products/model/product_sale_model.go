// file: internals/features/sales/products/model/product_sale_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductSale = penjualan barang (router, ONT, kabel) yang dicicil
// lewat tagihan bulanan.
type ProductSale struct {
	ProductSaleID uuid.UUID `gorm:"column:product_sale_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"product_sale_id"`

	ProductSaleClientID uuid.UUID `gorm:"column:product_sale_client_id;type:uuid;not null;index" json:"product_sale_client_id"`

	ProductSaleName     string    `gorm:"column:product_sale_name;type:varchar(120);not null" json:"product_sale_name"`
	ProductSaleTotalIDR int       `gorm:"column:product_sale_total_idr;type:int;not null;check:product_sale_total_idr>=0" json:"product_sale_total_idr"`
	ProductSaleDate     time.Time `gorm:"column:product_sale_date;type:date;not null;index" json:"product_sale_date"`

	ProductSaleInstallmentCount int `gorm:"column:product_sale_installment_count;type:int;not null;default:1;check:product_sale_installment_count>=1" json:"product_sale_installment_count"`

	ProductSaleNote *string `gorm:"column:product_sale_note;type:text" json:"product_sale_note,omitempty"`

	ProductSaleCreatedAt time.Time      `gorm:"column:product_sale_created_at;type:timestamptz;not null;default:now()" json:"product_sale_created_at"`
	ProductSaleUpdatedAt time.Time      `gorm:"column:product_sale_updated_at;type:timestamptz;not null;default:now()" json:"product_sale_updated_at"`
	ProductSaleDeletedAt gorm.DeletedAt `gorm:"column:product_sale_deleted_at;type:timestamptz;index" json:"-"`
}

func (ProductSale) TableName() string { return "product_sales" }

func (m *ProductSale) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ProductSaleID == uuid.Nil {
		m.ProductSaleID = uuid.New()
	}
	if m.ProductSaleCreatedAt.IsZero() {
		m.ProductSaleCreatedAt = now
	}
	m.ProductSaleUpdatedAt = now
	return nil
}

func (m *ProductSale) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ProductSaleUpdatedAt = time.Now()
	return nil
}
