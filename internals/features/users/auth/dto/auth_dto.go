// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "netku_backend/internals/features/users/auth/model"
)

type LoginDTO struct {
	Username string `json:"username" validate:"required,max=60"`
	Password string `json:"password" validate:"required,min=6"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type CreateOperatorDTO struct {
	Username string `json:"username" validate:"required,max=60"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=120"`
}

type OperatorResponse struct {
	OperatorID       uuid.UUID `json:"operator_id"`
	OperatorUsername string    `json:"operator_username"`
	OperatorName     string    `json:"operator_name"`
	OperatorIsActive bool      `json:"operator_is_active"`
	OperatorCreatedAt time.Time `json:"operator_created_at"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresAt   time.Time        `json:"expires_at"`
	Operator    OperatorResponse `json:"operator"`
}

func ToOperatorResponse(m model.Operator) OperatorResponse {
	return OperatorResponse{
		OperatorID:        m.OperatorID,
		OperatorUsername:  m.OperatorUsername,
		OperatorName:      m.OperatorName,
		OperatorIsActive:  m.OperatorIsActive,
		OperatorCreatedAt: m.OperatorCreatedAt,
	}
}
