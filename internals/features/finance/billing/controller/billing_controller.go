// file: internals/features/finance/billing/controller/billing_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	crmService "netku_backend/internals/features/crm/interactions/service"
	"netku_backend/internals/features/finance/billing/dto"
	service "netku_backend/internals/features/finance/billing/service"
	helper "netku_backend/internals/helpers"
)

/* =======================================================
   BOOTSTRAP
======================================================= */

type BillingHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBillingHandler(db *gorm.DB) *BillingHandler {
	return &BillingHandler{DB: db, Validator: validator.New()}
}

func (h *BillingHandler) parsePeriod(c *fiber.Ctx) (service.Period, error) {
	var in dto.BillingPeriodDTO
	if err := c.BodyParser(&in); err != nil {
		return service.Period{}, fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return service.Period{}, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	// validasi periode SEBELUM transaksi apa pun dibuka
	p, err := service.ResolvePeriod(in.Month, in.Year)
	if err != nil {
		return service.Period{}, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return p, nil
}

/* =======================================================
   GENERATE — POST /billing/generate  (idempoten)
   Seluruh run = SATU transaksi; gagal di mana pun → batal total.
======================================================= */

func (h *BillingHandler) GenerateBilling(c *fiber.Ctx) error {
	return h.runGeneration(c, "billing generated")
}

// RecalculateBilling = operasi yang sama dengan generate; baris paid
// dijamin tidak tersentuh. POST /billing/recalculate
func (h *BillingHandler) RecalculateBilling(c *fiber.Ctx) error {
	return h.runGeneration(c, "billing recalculated")
}

func (h *BillingHandler) runGeneration(c *fiber.Ctx, okMessage string) error {
	p, err := h.parsePeriod(c)
	if err != nil {
		return fromFiberError(c, err)
	}

	if !service.AcquirePeriodLock(p) {
		return helper.JsonError(c, fiber.StatusConflict,
			"billing run for this period is already in progress")
	}
	defer service.ReleasePeriodLock(p)

	// Note sink pakai koneksi luar (bukan tx): catatan CRM best-effort,
	// tidak ikut batal kalau billing gagal dan tidak menggagalkan billing.
	sink := crmService.NewGormNoteSink(h.DB)

	var res service.GenerateResult
	start := time.Now()
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		engine := service.NewEngine(service.NewGormRepository(tx), sink, time.Now)
		var runErr error
		res, runErr = engine.Generate(c.UserContext(), p)
		return runErr
	})
	if err != nil {
		log.Printf("[BILLING] generate %s FAILED after %s: %v", p.Label(), time.Since(start), err)
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"duplicate payment row for this period (concurrent run?)")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[BILLING] generate %s ok: created=%d updated=%d deleted=%d skipped_paid=%d dur=%s",
		p.Label(), res.GeneratedCount, res.UpdatedCount, res.DeletedCount, res.SkippedPaid, time.Since(start))
	return helper.JsonOK(c, okMessage, dto.ToGenerateResponse(p, res))
}

/* =======================================================
   ROLLBACK — POST /billing/rollback
   Hapus baris pending/overdue + pulihkan outage; paid dilaporkan skip.
======================================================= */

func (h *BillingHandler) RollbackBilling(c *fiber.Ctx) error {
	p, err := h.parsePeriod(c)
	if err != nil {
		return fromFiberError(c, err)
	}

	if !service.AcquirePeriodLock(p) {
		return helper.JsonError(c, fiber.StatusConflict,
			"billing run for this period is already in progress")
	}
	defer service.ReleasePeriodLock(p)

	sink := crmService.NewGormNoteSink(h.DB)

	var res service.RollbackResult
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		engine := service.NewEngine(service.NewGormRepository(tx), sink, time.Now)
		var runErr error
		res, runErr = engine.Rollback(c.UserContext(), p)
		return runErr
	})
	if err != nil {
		log.Printf("[BILLING] rollback %s FAILED: %v", p.Label(), err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	log.Printf("[BILLING] rollback %s ok: deleted=%d restored=%d skipped_paid=%d",
		p.Label(), res.DeletedPayments, res.RestoredOutages, res.SkippedPaidPayments)
	return helper.JsonOK(c, "billing rolled back", dto.ToRollbackResponse(p, res))
}

/* ========================= helpers ========================= */

func fromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
