// file: internals/features/clients/installations/dto/installation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "netku_backend/internals/features/clients/installations/model"
)

////////////////////////////////////////////////////////////////////////////////
// INSTALLATIONS — DTO
////////////////////////////////////////////////////////////////////////////////

// CreateInstallationDTO — monthly_fee_idr opsional: nil berarti snapshot
// tarif dari plan_id saat pasang.
type CreateInstallationDTO struct {
	InstallationClientID      uuid.UUID  `json:"installation_client_id" validate:"required"`
	InstallationPlanID        *uuid.UUID `json:"installation_plan_id,omitempty"`
	InstallationAddress       *string    `json:"installation_address,omitempty"`
	InstallationDate          time.Time  `json:"installation_date" validate:"required"`
	InstallationMonthlyFeeIDR *int       `json:"installation_monthly_fee_idr,omitempty" validate:"omitempty,min=0"`
	InstallationNote          *string    `json:"installation_note,omitempty"`
}

type UpdateInstallationDTO struct {
	InstallationPlanID        *uuid.UUID `json:"installation_plan_id,omitempty"`
	InstallationAddress       *string    `json:"installation_address,omitempty"`
	InstallationDate          *time.Time `json:"installation_date,omitempty"`
	InstallationMonthlyFeeIDR *int       `json:"installation_monthly_fee_idr,omitempty" validate:"omitempty,min=0"`
	InstallationServiceStatus *string    `json:"installation_service_status,omitempty" validate:"omitempty,oneof=active suspended cancelled"`
	InstallationNote          *string    `json:"installation_note,omitempty"`
}

// RetireInstallationDTO — cabut layanan per tanggal tertentu (nil → hari ini).
// Sisa hari sebelum tanggal cabut tetap ditagih prorata.
type RetireInstallationDTO struct {
	RetiredAt *time.Time `json:"retired_at,omitempty"`
	Note      *string    `json:"note,omitempty"`
}

type InstallationResponse struct {
	InstallationID       uuid.UUID  `json:"installation_id"`
	InstallationClientID uuid.UUID  `json:"installation_client_id"`
	InstallationPlanID   *uuid.UUID `json:"installation_plan_id,omitempty"`

	InstallationAddress *string `json:"installation_address,omitempty"`

	InstallationDate      time.Time  `json:"installation_date"`
	InstallationRetiredAt *time.Time `json:"installation_retired_at,omitempty"`

	InstallationMonthlyFeeIDR int `json:"installation_monthly_fee_idr"`

	InstallationServiceStatus string  `json:"installation_service_status"`
	InstallationIsActive      bool    `json:"installation_is_active"`
	InstallationNote          *string `json:"installation_note,omitempty"`

	InstallationCreatedAt time.Time `json:"installation_created_at"`
	InstallationUpdatedAt time.Time `json:"installation_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (r CreateInstallationDTO) ToInstallationModel(monthlyFeeIDR int) model.Installation {
	return model.Installation{
		InstallationClientID:      r.InstallationClientID,
		InstallationPlanID:        r.InstallationPlanID,
		InstallationAddress:       r.InstallationAddress,
		InstallationDate:          r.InstallationDate,
		InstallationMonthlyFeeIDR: monthlyFeeIDR,
		InstallationServiceStatus: model.ServiceStatusActive,
		InstallationIsActive:      true,
		InstallationNote:          r.InstallationNote,
	}
}

func (r UpdateInstallationDTO) ApplyInstallationUpdate(m *model.Installation) {
	if r.InstallationPlanID != nil {
		m.InstallationPlanID = r.InstallationPlanID
	}
	if r.InstallationAddress != nil {
		m.InstallationAddress = r.InstallationAddress
	}
	if r.InstallationDate != nil {
		m.InstallationDate = *r.InstallationDate
	}
	if r.InstallationMonthlyFeeIDR != nil {
		m.InstallationMonthlyFeeIDR = *r.InstallationMonthlyFeeIDR
	}
	if r.InstallationServiceStatus != nil {
		m.InstallationServiceStatus = model.ServiceStatus(*r.InstallationServiceStatus)
		m.InstallationIsActive = m.InstallationServiceStatus == model.ServiceStatusActive
	}
	if r.InstallationNote != nil {
		m.InstallationNote = r.InstallationNote
	}
}

func ToInstallationResponse(m model.Installation) InstallationResponse {
	return InstallationResponse{
		InstallationID:            m.InstallationID,
		InstallationClientID:      m.InstallationClientID,
		InstallationPlanID:        m.InstallationPlanID,
		InstallationAddress:       m.InstallationAddress,
		InstallationDate:          m.InstallationDate,
		InstallationRetiredAt:     m.InstallationRetiredAt,
		InstallationMonthlyFeeIDR: m.InstallationMonthlyFeeIDR,
		InstallationServiceStatus: string(m.InstallationServiceStatus),
		InstallationIsActive:      m.InstallationIsActive,
		InstallationNote:          m.InstallationNote,
		InstallationCreatedAt:     m.InstallationCreatedAt,
		InstallationUpdatedAt:     m.InstallationUpdatedAt,
	}
}

func ToInstallationResponses(list []model.Installation) []InstallationResponse {
	out := make([]InstallationResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToInstallationResponse(v))
	}
	return out
}
