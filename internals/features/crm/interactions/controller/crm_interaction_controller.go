// file: internals/features/crm/interactions/controller/crm_interaction_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "netku_backend/internals/features/crm/interactions/dto"
	model "netku_backend/internals/features/crm/interactions/model"
	helper "netku_backend/internals/helpers"
)

type CrmInteractionHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCrmInteractionHandler(db *gorm.DB) *CrmInteractionHandler {
	return &CrmInteractionHandler{DB: db, Validator: validator.New()}
}

func (h *CrmInteractionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCrmInteractionDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := in.ToCrmInteractionModel()
	if m.CrmInteractionAuthor == nil {
		// operator login jadi author default
		if v, ok := c.Locals("operator_username").(string); ok && v != "" {
			m.CrmInteractionAuthor = &v
		}
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "interaction created", dto.ToCrmInteractionResponse(m))
}

func (h *CrmInteractionHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.CrmInteraction{}).
		Where("crm_interaction_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("client_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("crm_interaction_client_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("kind")); v != "" { // billing|support|collection|info
		q = q.Where("crm_interaction_kind = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.CrmInteraction
	if err := q.Order("crm_interaction_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List interactions", dto.ToCrmInteractionResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (h *CrmInteractionHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.CrmInteraction
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "crm_interaction_id = ? AND crm_interaction_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "interaction not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "interaction detail", dto.ToCrmInteractionResponse(m))
}

func (h *CrmInteractionHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("crm_interaction_id = ? AND crm_interaction_deleted_at IS NULL", id).
		Delete(&model.CrmInteraction{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "interaction not found")
	}
	return helper.JsonDeleted(c, "interaction deleted", fiber.Map{"crm_interaction_id": id})
}
