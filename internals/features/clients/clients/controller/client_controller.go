// file: internals/features/clients/clients/controller/client_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "netku_backend/internals/features/clients/clients/dto"
	model "netku_backend/internals/features/clients/clients/model"
	helper "netku_backend/internals/helpers"
)

type ClientHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{DB: db, Validator: validator.New()}
}

/* =========================
   Create (POST /clients)
========================= */

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := in.ToClientModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "client code already used")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "client created", dto.ToClientResponse(m))
}

/* =========================
   List (GET /clients)
========================= */

func (h *ClientHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.Client{}).
		Where("client_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("status")); v != "" { // active|inactive|archived
		q = q.Where("client_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where("LOWER(client_name) LIKE ? OR LOWER(client_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Client
	if err := q.Order("client_name ASC").Order("client_id ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List clients", dto.ToClientResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /clients/:id)
========================= */

func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Client
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "client_id = ? AND client_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "client not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "client detail", dto.ToClientResponse(m))
}

/* =========================
   Update (PUT /clients/:id)
========================= */

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.UpdateClientDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.Client
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "client_id = ? AND client_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "client not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	in.ApplyClientUpdate(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "client code already used")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "client updated", dto.ToClientResponse(m))
}

/* =========================
   Delete (DELETE /clients/:id) — soft delete
========================= */

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.UserContext()).
		Where("client_id = ? AND client_deleted_at IS NULL", id).
		Delete(&model.Client{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "client not found")
	}
	return helper.JsonDeleted(c, "client deleted", fiber.Map{"client_id": id})
}
