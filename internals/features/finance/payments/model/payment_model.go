// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusOverdue   = "overdue"
	PaymentStatusCancelled = "cancelled"
)

const (
	PaymentTypeMonthly = "monthly"
	PaymentTypeOther   = "other"
)

const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodQRIS         = "qris"
	PaymentMethodOther        = "other"
)

/* ===================== Model ===================== */

// Payment = satu baris ledger per (client, periode, type=monthly).
// Sekali paid, baris ini tidak boleh disentuh engine generate/rollback.
type Payment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	PaymentClientID uuid.UUID `gorm:"column:payment_client_id;type:uuid;not null;index;uniqueIndex:uniq_payment_client_period,priority:1" json:"payment_client_id"`

	// Index unik periode ini PARTIAL: baris soft-deleted tidak menahan key,
	// supaya rollback → generate ulang periode yang sama tidak kena 23505.
	PaymentType string `gorm:"column:payment_type;type:varchar(20);not null;default:'monthly';uniqueIndex:uniq_payment_client_period,priority:4,where:payment_deleted_at IS NULL" json:"payment_type"`

	// Periode tagihan
	PaymentPeriodMonth int16 `gorm:"column:payment_period_month;type:smallint;not null;index;uniqueIndex:uniq_payment_client_period,priority:2" json:"payment_period_month"`
	PaymentPeriodYear  int16 `gorm:"column:payment_period_year;type:smallint;not null;index;uniqueIndex:uniq_payment_client_period,priority:3" json:"payment_period_year"`

	// Total final
	PaymentAmountIDR int `gorm:"column:payment_amount_idr;type:int;not null;check:payment_amount_idr>=0" json:"payment_amount_idr"`

	// Breakdown (selalu disimpan supaya total bisa diaudit)
	PaymentPlanAmountIDR              int  `gorm:"column:payment_plan_amount_idr;type:int;not null;default:0" json:"payment_plan_amount_idr"`
	PaymentAddonAmountIDR             int  `gorm:"column:payment_addon_amount_idr;type:int;not null;default:0" json:"payment_addon_amount_idr"`
	PaymentInstallmentAmountIDR       int  `gorm:"column:payment_installment_amount_idr;type:int;not null;default:0" json:"payment_installment_amount_idr"`
	PaymentOutageDiscountIDR          int  `gorm:"column:payment_outage_discount_idr;type:int;not null;default:0" json:"payment_outage_discount_idr"`
	PaymentOutageDays                 int  `gorm:"column:payment_outage_days;type:int;not null;default:0" json:"payment_outage_days"`
	PaymentFutureInstallmentAmountIDR int  `gorm:"column:payment_future_installment_amount_idr;type:int;not null;default:0" json:"payment_future_installment_amount_idr"`
	PaymentFutureInstallmentCount     int  `gorm:"column:payment_future_installment_count;type:int;not null;default:0" json:"payment_future_installment_count"`
	PaymentIsProrated                 bool `gorm:"column:payment_is_prorated;not null;default:false" json:"payment_is_prorated"`
	PaymentBilledDays                 int  `gorm:"column:payment_billed_days;type:int;not null;default:0" json:"payment_billed_days"`
	PaymentTotalDays                  int  `gorm:"column:payment_total_days;type:int;not null;default:30" json:"payment_total_days"`

	// Status & jatuh tempo
	PaymentStatus  string     `gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index" json:"payment_status"`
	PaymentDueDate time.Time  `gorm:"column:payment_due_date;type:date;not null;index" json:"payment_due_date"`
	PaymentMethod  *string    `gorm:"column:payment_method;type:varchar(20)" json:"payment_method,omitempty"`
	PaymentPaidAt  *time.Time `gorm:"column:payment_paid_at;type:timestamptz" json:"payment_paid_at,omitempty"`

	// Catatan ringkas dari engine + trail append-only
	PaymentNote  *string           `gorm:"column:payment_note;type:text" json:"payment_note,omitempty"`
	PaymentNotes datatypes.JSON    `gorm:"column:payment_notes;type:jsonb" json:"payment_notes,omitempty"`
	PaymentMeta  datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	// Audit
	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;type:timestamptz;not null;default:now();index" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;type:timestamptz;not null;default:now()" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;type:timestamptz;index" json:"-"`
}

func (Payment) TableName() string { return "payments" }

func (m *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	if strings.TrimSpace(m.PaymentType) == "" {
		m.PaymentType = PaymentTypeMonthly
	}
	if strings.TrimSpace(m.PaymentStatus) == "" {
		m.PaymentStatus = PaymentStatusPending
	}
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	m.PaymentUpdatedAt = now
	return nil
}

func (m *Payment) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PaymentUpdatedAt = time.Now()
	return nil
}

/* ===================== Note trail ===================== */

type PaymentNoteEntry struct {
	At   time.Time `json:"at"`
	Body string    `json:"body"`
}

// AppendNote menambah entry ke trail payment_notes (append-only).
func (m *Payment) AppendNote(at time.Time, body string) error {
	var trail []PaymentNoteEntry
	if len(m.PaymentNotes) > 0 {
		if err := json.Unmarshal(m.PaymentNotes, &trail); err != nil {
			return err
		}
	}
	trail = append(trail, PaymentNoteEntry{At: at, Body: body})
	raw, err := json.Marshal(trail)
	if err != nil {
		return err
	}
	m.PaymentNotes = datatypes.JSON(raw)
	return nil
}

// NoteTrail membaca trail payment_notes; nil kalau kosong.
func (m *Payment) NoteTrail() ([]PaymentNoteEntry, error) {
	if len(m.PaymentNotes) == 0 {
		return nil, nil
	}
	var trail []PaymentNoteEntry
	if err := json.Unmarshal(m.PaymentNotes, &trail); err != nil {
		return nil, err
	}
	return trail, nil
}
