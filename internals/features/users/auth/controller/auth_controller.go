// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"netku_backend/internals/configs"
	dto "netku_backend/internals/features/users/auth/dto"
	model "netku_backend/internals/features/users/auth/model"
	helper "netku_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db, Validator: validator.New()}
}

/* =========================
   Login (POST /auth/login)
========================= */

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var op model.Operator
	if err := h.DB.WithContext(c.UserContext()).
		First(&op, "operator_username = ? AND operator_deleted_at IS NULL",
			strings.TrimSpace(in.Username)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid username or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !op.OperatorIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "operator is disabled")
	}
	if err := bcrypt.CompareHashAndPassword(
		[]byte(op.OperatorPasswordHash), []byte(in.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid username or password")
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      op.OperatorID.String(),
		"username": op.OperatorUsername,
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign token")
	}

	// cookie untuk dashboard web; API client pakai bearer header
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    signed,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "login success", dto.LoginResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		Operator:    dto.ToOperatorResponse(op),
	})
}

/* =========================
   Me (GET /auth/me)
========================= */

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	operatorID, ok := c.Locals("operator_id").(uuid.UUID)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing operator context")
	}

	var op model.Operator
	if err := h.DB.WithContext(c.UserContext()).
		First(&op, "operator_id = ? AND operator_deleted_at IS NULL", operatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "operator not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "operator profile", dto.ToOperatorResponse(op))
}

/* =========================
   Change password (POST /auth/change-password)
========================= */

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	operatorID, ok := c.Locals("operator_id").(uuid.UUID)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing operator context")
	}

	var in dto.ChangePasswordDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var op model.Operator
	if err := h.DB.WithContext(c.UserContext()).
		First(&op, "operator_id = ? AND operator_deleted_at IS NULL", operatorID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := bcrypt.CompareHashAndPassword(
		[]byte(op.OperatorPasswordHash), []byte(in.OldPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "old password does not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}
	op.OperatorPasswordHash = string(hashed)
	if err := h.DB.WithContext(c.UserContext()).Save(&op).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "password changed", fiber.Map{"operator_id": op.OperatorID})
}

/* =========================
   Create operator (POST /auth/operators)
========================= */

func (h *AuthHandler) CreateOperator(c *fiber.Ctx) error {
	var in dto.CreateOperatorDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	op := model.Operator{
		OperatorUsername:     strings.TrimSpace(in.Username),
		OperatorPasswordHash: string(hashed),
		OperatorName:         strings.TrimSpace(in.Name),
		OperatorIsActive:     true,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&op).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "username already used")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "operator created", dto.ToOperatorResponse(op))
}
