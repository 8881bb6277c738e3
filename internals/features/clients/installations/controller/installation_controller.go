// file: internals/features/clients/installations/controller/installation_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clientModel "netku_backend/internals/features/clients/clients/model"
	dto "netku_backend/internals/features/clients/installations/dto"
	model "netku_backend/internals/features/clients/installations/model"
	planModel "netku_backend/internals/features/clients/service_plans/model"
	helper "netku_backend/internals/helpers"
)

type InstallationHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInstallationHandler(db *gorm.DB) *InstallationHandler {
	return &InstallationHandler{DB: db, Validator: validator.New()}
}

/* =========================
   Create (POST /installations)
========================= */

func (h *InstallationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInstallationDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.Installation
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&clientModel.Client{}).
			Where("client_id = ? AND client_deleted_at IS NULL", in.InstallationClientID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "client not found")
		}

		// Snapshot tarif: body > plan. Tarif plan berubah nanti tidak
		// mempengaruhi installation ini.
		fee := 0
		if in.InstallationMonthlyFeeIDR != nil {
			fee = *in.InstallationMonthlyFeeIDR
		} else if in.InstallationPlanID != nil {
			var plan planModel.ServicePlan
			if err := tx.First(&plan,
				"service_plan_id = ? AND service_plan_deleted_at IS NULL",
				in.InstallationPlanID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusNotFound, "service plan not found")
				}
				return err
			}
			fee = plan.ServicePlanMonthlyFeeIDR
		} else {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"either installation_plan_id or installation_monthly_fee_idr is required")
		}

		m = in.ToInstallationModel(fee)
		return tx.Create(&m).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "installation created", dto.ToInstallationResponse(m))
}

/* =========================
   List (GET /installations)
========================= */

func (h *InstallationHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.Installation{}).
		Where("installation_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("client_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("installation_client_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" { // active|suspended|cancelled
		q = q.Where("installation_service_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("retired")); v != "" {
		if v == "true" || v == "1" {
			q = q.Where("installation_retired_at IS NOT NULL")
		} else {
			q = q.Where("installation_retired_at IS NULL")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Installation
	if err := q.Order("installation_date DESC").Order("installation_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List installations", dto.ToInstallationResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /installations/:id)
========================= */

func (h *InstallationHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Installation
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "installation_id = ? AND installation_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "installation not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "installation detail", dto.ToInstallationResponse(m))
}

/* =========================
   Update (PUT /installations/:id)
========================= */

func (h *InstallationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.UpdateInstallationDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.Installation
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "installation_id = ? AND installation_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "installation not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	in.ApplyInstallationUpdate(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "installation updated", dto.ToInstallationResponse(m))
}

/* =========================
   Retire (POST /installations/:id/retire)
   Cabut layanan: jendela billable berakhir di retired_at,
   porsi hari sebelum itu tetap ditagih prorata.
========================= */

func (h *InstallationHandler) Retire(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.RetireInstallationDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	retiredAt := time.Now()
	if in.RetiredAt != nil {
		retiredAt = *in.RetiredAt
	}

	var m model.Installation
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "installation_id = ? AND installation_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "installation not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.InstallationRetiredAt != nil {
		return helper.JsonError(c, fiber.StatusConflict, "installation already retired")
	}
	if retiredAt.Before(m.InstallationDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"retired_at cannot be before installation_date")
	}

	m.InstallationRetiredAt = &retiredAt
	m.InstallationServiceStatus = model.ServiceStatusCancelled
	m.InstallationIsActive = false
	if in.Note != nil {
		m.InstallationNote = in.Note
	}
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "installation retired", dto.ToInstallationResponse(m))
}

/* =========================
   Delete (DELETE /installations/:id) — soft delete
========================= */

func (h *InstallationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("installation_id = ? AND installation_deleted_at IS NULL", id).
		Delete(&model.Installation{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "installation not found")
	}
	return helper.JsonDeleted(c, "installation deleted", fiber.Map{"installation_id": id})
}
