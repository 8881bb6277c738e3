// file: internals/features/sales/products/dto/product_sale_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "netku_backend/internals/features/sales/products/model"
)

////////////////////////////////////////////////////////////////////////////////
// PRODUCT SALES — DTO
////////////////////////////////////////////////////////////////////////////////

// CreateProductSaleDTO — sekali create langsung memecah total jadi termin.
// first_due_date nil → tanggal 5 bulan berikutnya setelah sale_date,
// termin berikutnya tiap bulan di tanggal yang sama.
type CreateProductSaleDTO struct {
	ProductSaleClientID         uuid.UUID  `json:"product_sale_client_id" validate:"required"`
	ProductSaleName             string     `json:"product_sale_name" validate:"required,max=120"`
	ProductSaleTotalIDR         int        `json:"product_sale_total_idr" validate:"min=0"`
	ProductSaleDate             time.Time  `json:"product_sale_date" validate:"required"`
	ProductSaleInstallmentCount int        `json:"product_sale_installment_count" validate:"min=1,max=36"`
	FirstDueDate                *time.Time `json:"first_due_date,omitempty"`
	ProductSaleNote             *string    `json:"product_sale_note,omitempty"`
}

type ProductInstallmentResponse struct {
	ProductInstallmentID        uuid.UUID  `json:"product_installment_id"`
	ProductInstallmentSaleID    uuid.UUID  `json:"product_installment_sale_id"`
	ProductInstallmentClientID  uuid.UUID  `json:"product_installment_client_id"`
	ProductInstallmentNo        int        `json:"product_installment_no"`
	ProductInstallmentDueDate   time.Time  `json:"product_installment_due_date"`
	ProductInstallmentAmountIDR int        `json:"product_installment_amount_idr"`
	ProductInstallmentStatus    string     `json:"product_installment_status"`
	ProductInstallmentPaidAt    *time.Time `json:"product_installment_paid_at,omitempty"`
}

type ProductSaleResponse struct {
	ProductSaleID               uuid.UUID `json:"product_sale_id"`
	ProductSaleClientID         uuid.UUID `json:"product_sale_client_id"`
	ProductSaleName             string    `json:"product_sale_name"`
	ProductSaleTotalIDR         int       `json:"product_sale_total_idr"`
	ProductSaleDate             time.Time `json:"product_sale_date"`
	ProductSaleInstallmentCount int       `json:"product_sale_installment_count"`
	ProductSaleNote             *string   `json:"product_sale_note,omitempty"`

	ProductSaleInstallments []ProductInstallmentResponse `json:"product_sale_installments,omitempty"`

	ProductSaleCreatedAt time.Time `json:"product_sale_created_at"`
	ProductSaleUpdatedAt time.Time `json:"product_sale_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (r CreateProductSaleDTO) ToProductSaleModel() model.ProductSale {
	return model.ProductSale{
		ProductSaleClientID:         r.ProductSaleClientID,
		ProductSaleName:             strings.TrimSpace(r.ProductSaleName),
		ProductSaleTotalIDR:         r.ProductSaleTotalIDR,
		ProductSaleDate:             r.ProductSaleDate,
		ProductSaleInstallmentCount: r.ProductSaleInstallmentCount,
		ProductSaleNote:             r.ProductSaleNote,
	}
}

// BuildInstallments memecah total jadi termin sama rata; sisa pembagian
// ditempel ke termin pertama supaya jumlah termin = total persis.
func (r CreateProductSaleDTO) BuildInstallments(saleID uuid.UUID) []model.ProductInstallment {
	n := r.ProductSaleInstallmentCount
	base := r.ProductSaleTotalIDR / n
	remainder := r.ProductSaleTotalIDR - base*n

	firstDue := time.Date(r.ProductSaleDate.Year(), r.ProductSaleDate.Month(), 5,
		0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	if r.FirstDueDate != nil {
		firstDue = *r.FirstDueDate
	}

	out := make([]model.ProductInstallment, 0, n)
	for i := 0; i < n; i++ {
		amount := base
		if i == 0 {
			amount += remainder
		}
		out = append(out, model.ProductInstallment{
			ProductInstallmentSaleID:    saleID,
			ProductInstallmentClientID:  r.ProductSaleClientID,
			ProductInstallmentNo:        i + 1,
			ProductInstallmentDueDate:   firstDue.AddDate(0, i, 0),
			ProductInstallmentAmountIDR: amount,
			ProductInstallmentStatus:    model.ProductInstallmentStatusPending,
		})
	}
	return out
}

func ToProductInstallmentResponse(m model.ProductInstallment) ProductInstallmentResponse {
	return ProductInstallmentResponse{
		ProductInstallmentID:        m.ProductInstallmentID,
		ProductInstallmentSaleID:    m.ProductInstallmentSaleID,
		ProductInstallmentClientID:  m.ProductInstallmentClientID,
		ProductInstallmentNo:        m.ProductInstallmentNo,
		ProductInstallmentDueDate:   m.ProductInstallmentDueDate,
		ProductInstallmentAmountIDR: m.ProductInstallmentAmountIDR,
		ProductInstallmentStatus:    string(m.ProductInstallmentStatus),
		ProductInstallmentPaidAt:    m.ProductInstallmentPaidAt,
	}
}

func ToProductInstallmentResponses(list []model.ProductInstallment) []ProductInstallmentResponse {
	out := make([]ProductInstallmentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToProductInstallmentResponse(v))
	}
	return out
}

func ToProductSaleResponse(m model.ProductSale, installments []model.ProductInstallment) ProductSaleResponse {
	return ProductSaleResponse{
		ProductSaleID:               m.ProductSaleID,
		ProductSaleClientID:         m.ProductSaleClientID,
		ProductSaleName:             m.ProductSaleName,
		ProductSaleTotalIDR:         m.ProductSaleTotalIDR,
		ProductSaleDate:             m.ProductSaleDate,
		ProductSaleInstallmentCount: m.ProductSaleInstallmentCount,
		ProductSaleNote:             m.ProductSaleNote,
		ProductSaleInstallments:     ToProductInstallmentResponses(installments),
		ProductSaleCreatedAt:        m.ProductSaleCreatedAt,
		ProductSaleUpdatedAt:        m.ProductSaleUpdatedAt,
	}
}
