// file: internals/features/finance/payments/controller/payment_register_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	crmService "netku_backend/internals/features/crm/interactions/service"
	billingService "netku_backend/internals/features/finance/billing/service"
	dto "netku_backend/internals/features/finance/payments/dto"
	model "netku_backend/internals/features/finance/payments/model"
	productModel "netku_backend/internals/features/sales/products/model"
	helper "netku_backend/internals/helpers"
)

/* =======================================================
   REGISTER — POST /payments/:id/register
   Tandai baris paid; cicilan tambahan ikut dilunasi dan
   nominalnya ditambahkan ke total (trail append-only).
======================================================= */

func (h *PaymentHandler) RegisterPayment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.RegisterPaymentDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	paidAt := time.Now()
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}

	var m model.Payment
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m,
			"payment_id = ? AND payment_deleted_at IS NULL", id).Error; err != nil {
			return err
		}
		if m.PaymentStatus == model.PaymentStatusPaid {
			return fiber.NewError(fiber.StatusConflict, "payment already paid")
		}
		if m.PaymentStatus == model.PaymentStatusCancelled {
			return fiber.NewError(fiber.StatusConflict, "payment is cancelled")
		}

		// Override nominal manual (mis. pembulatan kasir) — dicatat di trail
		if in.AmountIDR != nil && *in.AmountIDR != m.PaymentAmountIDR {
			if err := m.AppendNote(paidAt, fmt.Sprintf(
				"nominal disesuaikan Rp%d → Rp%d", m.PaymentAmountIDR, *in.AmountIDR)); err != nil {
				return err
			}
			m.PaymentAmountIDR = *in.AmountIDR
		}

		// Lunasi cicilan tambahan milik client yang sama
		for _, insID := range in.ExtraInstallmentIDs {
			var ins productModel.ProductInstallment
			if err := tx.First(&ins,
				`product_installment_id = ? AND product_installment_client_id = ?
				 AND product_installment_deleted_at IS NULL`,
				insID, m.PaymentClientID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound,
						"installment "+insID.String()+" not found for this client")
				}
				return err
			}
			if ins.ProductInstallmentStatus != productModel.ProductInstallmentStatusPending {
				return fiber.NewError(fiber.StatusConflict,
					"installment "+insID.String()+" is not pending")
			}

			ins.ProductInstallmentStatus = productModel.ProductInstallmentStatusPaid
			ins.ProductInstallmentPaidAt = &paidAt
			if err := tx.Save(&ins).Error; err != nil {
				return err
			}

			m.PaymentAmountIDR += ins.ProductInstallmentAmountIDR
			m.PaymentInstallmentAmountIDR += ins.ProductInstallmentAmountIDR
			if err := m.AppendNote(paidAt, fmt.Sprintf(
				"cicilan #%d Rp%d dilunasi bersama tagihan",
				ins.ProductInstallmentNo, ins.ProductInstallmentAmountIDR)); err != nil {
				return err
			}
		}

		method := in.Method
		m.PaymentMethod = &method
		m.PaymentStatus = model.PaymentStatusPaid
		m.PaymentPaidAt = &paidAt
		if in.Note != nil {
			if err := m.AppendNote(paidAt, *in.Note); err != nil {
				return err
			}
		}

		return tx.Save(&m).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// jejak CRM best-effort
	sink := crmService.NewGormNoteSink(h.DB)
	if err := sink.WriteBillingNote(c.UserContext(), m.PaymentClientID, fmt.Sprintf(
		"Pembayaran Rp%d diterima (%s) untuk periode %d/%d",
		m.PaymentAmountIDR, in.Method, m.PaymentPeriodMonth, m.PaymentPeriodYear)); err != nil {
		log.Printf("[PAYMENT] note skipped for client %s: %v", m.PaymentClientID, err)
	}

	return helper.JsonUpdated(c, "payment registered", dto.ToPaymentResponse(m))
}

/* =======================================================
   BULK MARK PAID — POST /payments/bulk-mark-paid
   Per-client best-effort; hasil per item, bukan all-or-nothing.
======================================================= */

func (h *PaymentHandler) BulkMarkPaid(c *fiber.Ctx) error {
	var in dto.BulkMarkPaidDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// Default periode = bulan berjalan
	now := time.Now()
	month := int(now.Month())
	year := now.Year()
	if in.Year != nil {
		if !billingService.YearInRange(*in.Year) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				fmt.Sprintf("year %d out of range", *in.Year))
		}
		year = *in.Year
	}
	if in.Month != nil {
		p, err := billingService.ResolvePeriod(*in.Month, year)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		month = p.Month
	}

	paidAt := now
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}
	method := model.PaymentMethodCash
	if in.Method != nil {
		method = *in.Method
	}

	outcomes := make([]dto.BulkMarkPaidOutcome, 0, len(in.ClientIDs))
	for _, clientID := range in.ClientIDs {
		outcomes = append(outcomes, h.markOnePaid(c, clientID, month, year, method, paidAt))
	}

	return helper.JsonOK(c, "bulk mark paid done", outcomes)
}

func (h *PaymentHandler) markOnePaid(c *fiber.Ctx, clientID uuid.UUID, month, year int, method string, paidAt time.Time) dto.BulkMarkPaidOutcome {
	var m model.Payment
	err := h.DB.WithContext(c.UserContext()).First(&m,
		`payment_client_id = ? AND payment_period_month = ? AND payment_period_year = ?
		 AND payment_type = ? AND payment_deleted_at IS NULL`,
		clientID, month, year, model.PaymentTypeMonthly).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BulkMarkPaidOutcome{ClientID: clientID, Outcome: dto.BulkOutcomeNotFound}
		}
		log.Printf("[PAYMENT] bulk mark paid lookup failed for client %s: %v", clientID, err)
		return dto.BulkMarkPaidOutcome{ClientID: clientID, Outcome: dto.BulkOutcomeError, Detail: err.Error()}
	}
	if m.PaymentStatus == model.PaymentStatusPaid {
		return dto.BulkMarkPaidOutcome{ClientID: clientID, Outcome: dto.BulkOutcomeAlreadyPaid, PaymentID: &m.PaymentID}
	}

	m.PaymentStatus = model.PaymentStatusPaid
	m.PaymentMethod = &method
	m.PaymentPaidAt = &paidAt
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		log.Printf("[PAYMENT] bulk mark paid failed for client %s: %v", clientID, err)
		return dto.BulkMarkPaidOutcome{ClientID: clientID, Outcome: dto.BulkOutcomeError, Detail: err.Error()}
	}
	return dto.BulkMarkPaidOutcome{ClientID: clientID, Outcome: dto.BulkOutcomeUpdated, PaymentID: &m.PaymentID}
}
