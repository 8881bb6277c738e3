// file: internals/features/network/outages/controller/service_outage_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	installModel "netku_backend/internals/features/clients/installations/model"
	billingService "netku_backend/internals/features/finance/billing/service"
	dto "netku_backend/internals/features/network/outages/dto"
	model "netku_backend/internals/features/network/outages/model"
	helper "netku_backend/internals/helpers"
)

type ServiceOutageHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewServiceOutageHandler(db *gorm.DB) *ServiceOutageHandler {
	return &ServiceOutageHandler{DB: db, Validator: validator.New()}
}

/* =========================
   Create (POST /outages)
   discount_idr kosong → dihitung dari tarif harian
   installation aktif client dikali days.
========================= */

func (h *ServiceOutageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceOutageDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	discount := 0
	if in.ServiceOutageDiscountIDR != nil {
		discount = *in.ServiceOutageDiscountIDR
	} else {
		var installs []installModel.Installation
		if err := h.DB.WithContext(c.UserContext()).
			Where(`installation_client_id = ? AND installation_service_status = ?
			       AND installation_retired_at IS NULL AND installation_deleted_at IS NULL`,
				in.ServiceOutageClientID, installModel.ServiceStatusActive).
			Find(&installs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if len(installs) == 0 {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				"client has no active installation; set service_outage_discount_idr explicitly")
		}
		for _, ins := range installs {
			discount += billingService.DailyRateIDR(ins.InstallationMonthlyFeeIDR) * in.ServiceOutageDays
		}
	}

	m := in.ToServiceOutageModel(discount)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "outage created", dto.ToServiceOutageResponse(m))
}

/* =========================
   List (GET /outages)
========================= */

func (h *ServiceOutageHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.ServiceOutage{}).
		Where("service_outage_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("client_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("service_outage_client_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" { // pending|applied|cancelled
		q = q.Where("service_outage_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ServiceOutage
	if err := q.Order("service_outage_started_at DESC").Order("service_outage_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List outages", dto.ToServiceOutageResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /outages/:id)
========================= */

func (h *ServiceOutageHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.ServiceOutage
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "service_outage_id = ? AND service_outage_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "outage not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "outage detail", dto.ToServiceOutageResponse(m))
}

/* =========================
   Update (PUT /outages/:id) — hanya pending yang bisa diubah
========================= */

func (h *ServiceOutageHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.UpdateServiceOutageDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.ServiceOutage
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "service_outage_id = ? AND service_outage_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "outage not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.ServiceOutageStatus != model.ServiceOutageStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "only pending outages can be updated")
	}

	in.ApplyServiceOutageUpdate(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "outage updated", dto.ToServiceOutageResponse(m))
}

/* =========================
   Cancel (POST /outages/:id/cancel)
   Applied tidak bisa dibatalkan di sini; rollback billing yang
   mengembalikan applied → pending.
========================= */

func (h *ServiceOutageHandler) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.ServiceOutage
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "service_outage_id = ? AND service_outage_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "outage not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.ServiceOutageStatus == model.ServiceOutageStatusApplied {
		return helper.JsonError(c, fiber.StatusConflict,
			"outage already applied to a payment; rollback billing first")
	}
	if m.ServiceOutageStatus == model.ServiceOutageStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "outage already cancelled")
	}

	m.ServiceOutageStatus = model.ServiceOutageStatusCancelled
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "outage cancelled", dto.ToServiceOutageResponse(m))
}
