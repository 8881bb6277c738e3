// file: internals/features/finance/payments/controller/payments_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "netku_backend/internals/features/finance/payments/dto"
	model "netku_backend/internals/features/finance/payments/model"
	helper "netku_backend/internals/helpers"
)

/* =======================================================
   BOOTSTRAP
======================================================= */

type PaymentHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{DB: db, Validator: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

/* =========================
   List (GET /payments)
========================= */

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	// Sorting whitelist
	allowedSort := map[string]string{
		"created_at": "payment_created_at",
		"amount":     "payment_amount_idr",
		"status":     "payment_status",
		"due_date":   "payment_due_date",
		"paid_at":    "payment_paid_at",
	}
	sortBy := strings.ToLower(strings.TrimSpace(c.Query("sort_by", "created_at")))
	col, ok := allowedSort[sortBy]
	if !ok {
		col = allowedSort["created_at"]
	}
	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(c.Query("order")), "asc") {
		dir = "ASC"
	}

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.Payment{}).
		Where("payment_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("client_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("payment_client_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" { // pending|paid|overdue|cancelled
		q = q.Where("payment_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("type")); v != "" {
		q = q.Where("payment_type = ?", v)
	}
	if v := c.QueryInt("month"); v >= 1 && v <= 12 {
		q = q.Where("payment_period_month = ?", v)
	}
	if v := c.QueryInt("year"); v > 0 {
		q = q.Where("payment_period_year = ?", v)
	}
	if v := c.QueryInt("amount_min"); v > 0 {
		q = q.Where("payment_amount_idr >= ?", v)
	}
	if v := c.QueryInt("amount_max"); v > 0 {
		q = q.Where("payment_amount_idr <= ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Payment
	if err := q.Order(col + " " + dir).Order("payment_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List payments", dto.ToPaymentResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /payments/:id)
========================= */

func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Payment
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "payment_id = ? AND payment_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "payment detail", dto.ToPaymentResponse(m))
}
