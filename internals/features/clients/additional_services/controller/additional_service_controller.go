// file: internals/features/clients/additional_services/controller/additional_service_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "netku_backend/internals/features/clients/additional_services/dto"
	model "netku_backend/internals/features/clients/additional_services/model"
	helper "netku_backend/internals/helpers"
)

type AdditionalServiceHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdditionalServiceHandler(db *gorm.DB) *AdditionalServiceHandler {
	return &AdditionalServiceHandler{DB: db, Validator: validator.New()}
}

func (h *AdditionalServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdditionalServiceDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := in.ToAdditionalServiceModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "additional service created", dto.ToAdditionalServiceResponse(m))
}

func (h *AdditionalServiceHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.AdditionalService{}).
		Where("additional_service_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("client_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("additional_service_client_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" { // active|stopped
		q = q.Where("additional_service_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.AdditionalService
	if err := q.Order("additional_service_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List additional services", dto.ToAdditionalServiceResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (h *AdditionalServiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.AdditionalService
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "additional_service_id = ? AND additional_service_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "additional service not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "additional service detail", dto.ToAdditionalServiceResponse(m))
}

func (h *AdditionalServiceHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.UpdateAdditionalServiceDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.AdditionalService
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "additional_service_id = ? AND additional_service_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "additional service not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	in.ApplyAdditionalServiceUpdate(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "additional service updated", dto.ToAdditionalServiceResponse(m))
}

func (h *AdditionalServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("additional_service_id = ? AND additional_service_deleted_at IS NULL", id).
		Delete(&model.AdditionalService{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "additional service not found")
	}
	return helper.JsonDeleted(c, "additional service deleted", fiber.Map{"additional_service_id": id})
}
