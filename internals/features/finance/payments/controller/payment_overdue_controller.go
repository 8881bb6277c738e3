// file: internals/features/finance/payments/controller/payment_overdue_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "netku_backend/internals/features/finance/payments/model"
	helper "netku_backend/internals/helpers"
)

/* =======================================================
   OVERDUE SWEEP — POST /payments/mark-overdue
   pending + due_date < hari ini → overdue. Idempoten,
   dipanggil manual atau oleh cron harian.
======================================================= */

// SweepOverduePayments menjalankan sweep di luar konteks HTTP (dipakai cron).
func SweepOverduePayments(db *gorm.DB) (int64, error) {
	today := time.Now().Truncate(24 * time.Hour)
	res := db.Model(&model.Payment{}).
		Where(`payment_status = ? AND payment_due_date < ? AND payment_deleted_at IS NULL`,
			model.PaymentStatusPending, today).
		Updates(map[string]interface{}{
			"payment_status":     model.PaymentStatusOverdue,
			"payment_updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (h *PaymentHandler) MarkOverduePayments(c *fiber.Ctx) error {
	count, err := SweepOverduePayments(h.DB.WithContext(c.UserContext()))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		log.Printf("[PAYMENT] %d payment(s) marked overdue", count)
	}
	return helper.JsonOK(c, "overdue sweep done", fiber.Map{
		"marked_overdue": count,
	})
}
