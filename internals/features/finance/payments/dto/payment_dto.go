// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "netku_backend/internals/features/finance/payments/model"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type PaymentResponse struct {
	PaymentID       uuid.UUID `json:"payment_id"`
	PaymentClientID uuid.UUID `json:"payment_client_id"`
	PaymentType     string    `json:"payment_type"`

	PaymentPeriodMonth int16 `json:"payment_period_month"`
	PaymentPeriodYear  int16 `json:"payment_period_year"`

	PaymentAmountIDR int `json:"payment_amount_idr"`

	PaymentPlanAmountIDR              int  `json:"payment_plan_amount_idr"`
	PaymentAddonAmountIDR             int  `json:"payment_addon_amount_idr"`
	PaymentInstallmentAmountIDR       int  `json:"payment_installment_amount_idr"`
	PaymentOutageDiscountIDR          int  `json:"payment_outage_discount_idr"`
	PaymentOutageDays                 int  `json:"payment_outage_days"`
	PaymentFutureInstallmentAmountIDR int  `json:"payment_future_installment_amount_idr"`
	PaymentFutureInstallmentCount     int  `json:"payment_future_installment_count"`
	PaymentIsProrated                 bool `json:"payment_is_prorated"`
	PaymentBilledDays                 int  `json:"payment_billed_days"`
	PaymentTotalDays                  int  `json:"payment_total_days"`

	PaymentStatus  string     `json:"payment_status"`
	PaymentDueDate time.Time  `json:"payment_due_date"`
	PaymentMethod  *string    `json:"payment_method,omitempty"`
	PaymentPaidAt  *time.Time `json:"payment_paid_at,omitempty"`

	PaymentNote  *string                  `json:"payment_note,omitempty"`
	PaymentNotes []model.PaymentNoteEntry `json:"payment_notes,omitempty"`

	PaymentCreatedAt time.Time  `json:"payment_created_at"`
	PaymentUpdatedAt time.Time  `json:"payment_updated_at"`
	PaymentDeletedAt *time.Time `json:"payment_deleted_at,omitempty"`
}

// RegisterPaymentDTO — tandai satu baris paid, opsional sekalian melunasi
// cicilan lain (extra_installment_ids ikut ditambahkan ke total).
type RegisterPaymentDTO struct {
	PaidAt              *time.Time  `json:"paid_at,omitempty"` // nil → now()
	Method              string      `json:"method" validate:"required,oneof=cash bank_transfer qris other"`
	ExtraInstallmentIDs []uuid.UUID `json:"extra_installment_ids,omitempty"`
	AmountIDR           *int        `json:"amount_idr,omitempty" validate:"omitempty,min=0"` // override manual
	Note                *string     `json:"note,omitempty"`
}

// BulkMarkPaidDTO — per-client, hasil per item (bukan all-or-nothing).
type BulkMarkPaidDTO struct {
	ClientIDs []uuid.UUID `json:"client_ids" validate:"required,min=1"`
	Month     *string     `json:"month,omitempty"` // nil → bulan berjalan
	Year      *int        `json:"year,omitempty"`
	Method    *string     `json:"method,omitempty" validate:"omitempty,oneof=cash bank_transfer qris other"`
	PaidAt    *time.Time  `json:"paid_at,omitempty"`
}

const (
	BulkOutcomeUpdated     = "updated"
	BulkOutcomeNotFound    = "not_found"
	BulkOutcomeAlreadyPaid = "already_paid"
	BulkOutcomeError       = "error" // gagal persist, bukan baris tidak ada
)

type BulkMarkPaidOutcome struct {
	ClientID  uuid.UUID  `json:"client_id"`
	Outcome   string     `json:"outcome"` // updated|not_found|already_paid|error
	PaymentID *uuid.UUID `json:"payment_id,omitempty"`
	Detail    string     `json:"detail,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToPaymentResponse(m model.Payment) PaymentResponse {
	trail, _ := m.NoteTrail() // trail korup cukup dikosongkan, bukan error API
	return PaymentResponse{
		PaymentID:                         m.PaymentID,
		PaymentClientID:                   m.PaymentClientID,
		PaymentType:                       m.PaymentType,
		PaymentPeriodMonth:                m.PaymentPeriodMonth,
		PaymentPeriodYear:                 m.PaymentPeriodYear,
		PaymentAmountIDR:                  m.PaymentAmountIDR,
		PaymentPlanAmountIDR:              m.PaymentPlanAmountIDR,
		PaymentAddonAmountIDR:             m.PaymentAddonAmountIDR,
		PaymentInstallmentAmountIDR:       m.PaymentInstallmentAmountIDR,
		PaymentOutageDiscountIDR:          m.PaymentOutageDiscountIDR,
		PaymentOutageDays:                 m.PaymentOutageDays,
		PaymentFutureInstallmentAmountIDR: m.PaymentFutureInstallmentAmountIDR,
		PaymentFutureInstallmentCount:     m.PaymentFutureInstallmentCount,
		PaymentIsProrated:                 m.PaymentIsProrated,
		PaymentBilledDays:                 m.PaymentBilledDays,
		PaymentTotalDays:                  m.PaymentTotalDays,
		PaymentStatus:                     m.PaymentStatus,
		PaymentDueDate:                    m.PaymentDueDate,
		PaymentMethod:                     m.PaymentMethod,
		PaymentPaidAt:                     m.PaymentPaidAt,
		PaymentNote:                       m.PaymentNote,
		PaymentNotes:                      trail,
		PaymentCreatedAt:                  m.PaymentCreatedAt,
		PaymentUpdatedAt:                  m.PaymentUpdatedAt,
		PaymentDeletedAt:                  toPtrTimeFromDeletedAt(m.PaymentDeletedAt),
	}
}

func ToPaymentResponses(list []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToPaymentResponse(v))
	}
	return out
}

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		return &d.Time
	}
	return nil
}
