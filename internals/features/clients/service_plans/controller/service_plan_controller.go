// file: internals/features/clients/service_plans/controller/service_plan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "netku_backend/internals/features/clients/service_plans/dto"
	model "netku_backend/internals/features/clients/service_plans/model"
	helper "netku_backend/internals/helpers"
)

type ServicePlanHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewServicePlanHandler(db *gorm.DB) *ServicePlanHandler {
	return &ServicePlanHandler{DB: db, Validator: validator.New()}
}

func (h *ServicePlanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServicePlanDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := in.ToServicePlanModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "plan name already used")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "service plan created", dto.ToServicePlanResponse(m))
}

func (h *ServicePlanHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.ServicePlan{}).
		Where("service_plan_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("active")); v != "" {
		q = q.Where("service_plan_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ServicePlan
	if err := q.Order("service_plan_monthly_fee_idr ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List service plans", dto.ToServicePlanResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (h *ServicePlanHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.ServicePlan
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "service_plan_id = ? AND service_plan_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "service plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "service plan detail", dto.ToServicePlanResponse(m))
}

func (h *ServicePlanHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.UpdateServicePlanDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.ServicePlan
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "service_plan_id = ? AND service_plan_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "service plan not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	in.ApplyServicePlanUpdate(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "plan name already used")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "service plan updated", dto.ToServicePlanResponse(m))
}

func (h *ServicePlanHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("service_plan_id = ? AND service_plan_deleted_at IS NULL", id).
		Delete(&model.ServicePlan{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "service plan not found")
	}
	return helper.JsonDeleted(c, "service plan deleted", fiber.Map{"service_plan_id": id})
}
