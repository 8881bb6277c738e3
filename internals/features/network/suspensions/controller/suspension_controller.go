// file: internals/features/network/suspensions/controller/suspension_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billingService "netku_backend/internals/features/finance/billing/service"
	paymentModel "netku_backend/internals/features/finance/payments/model"
	helper "netku_backend/internals/helpers"
)

/* =======================================================
   SUSPENSION CANDIDATES — proyeksi read-only
   Client dengan tagihan monthly pending/overdue di satu
   periode = kandidat isolir. Eksekusi isolir ke perangkat
   bukan urusan modul ini.
======================================================= */

type SuspensionHandler struct {
	DB *gorm.DB
}

func NewSuspensionHandler(db *gorm.DB) *SuspensionHandler {
	return &SuspensionHandler{DB: db}
}

type suspensionCandidate struct {
	ClientID      uuid.UUID `gorm:"column:client_id" json:"client_id"`
	ClientCode    string    `gorm:"column:client_code" json:"client_code"`
	ClientName    string    `gorm:"column:client_name" json:"client_name"`
	PaymentID     uuid.UUID `gorm:"column:payment_id" json:"payment_id"`
	PaymentStatus string    `gorm:"column:payment_status" json:"payment_status"`
	AmountIDR     int       `gorm:"column:payment_amount_idr" json:"payment_amount_idr"`
	DueDate       time.Time `gorm:"column:payment_due_date" json:"payment_due_date"`
	DaysPastDue   int       `gorm:"-" json:"days_past_due"`
}

// List (GET /suspension-candidates?month=oktober&year=2025)
// Periode kosong → bulan berjalan.
func (h *SuspensionHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 50, 500)

	now := time.Now()
	month := int(now.Month())
	year := now.Year()
	if v := strings.TrimSpace(c.Query("month")); v != "" {
		p, err := billingService.ResolvePeriod(v, year)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		month = p.Month
	}
	if v := c.QueryInt("year"); v > 0 {
		year = v
	}

	base := h.DB.WithContext(c.UserContext()).
		Table("payments").
		Joins("JOIN clients ON clients.client_id = payments.payment_client_id").
		Where(`payments.payment_type = ?
		       AND payments.payment_period_month = ? AND payments.payment_period_year = ?
		       AND payments.payment_status IN ?
		       AND payments.payment_deleted_at IS NULL
		       AND clients.client_deleted_at IS NULL`,
			paymentModel.PaymentTypeMonthly, month, year,
			[]string{paymentModel.PaymentStatusPending, paymentModel.PaymentStatusOverdue})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []suspensionCandidate
	if err := base.
		Select(`clients.client_id, clients.client_code, clients.client_name,
		        payments.payment_id, payments.payment_status,
		        payments.payment_amount_idr, payments.payment_due_date`).
		Order("payments.payment_due_date ASC").Order("clients.client_code ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Scan(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	today := now.Truncate(24 * time.Hour)
	for i := range list {
		if d := int(today.Sub(list[i].DueDate).Hours() / 24); d > 0 {
			list[i].DaysPastDue = d
		}
	}

	return helper.JsonList(c, "List suspension candidates", list,
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}
