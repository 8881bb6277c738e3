// file: internals/features/network/outages/dto/service_outage_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "netku_backend/internals/features/network/outages/model"
)

// CreateServiceOutageDTO — discount_idr nil berarti dihitung dari tarif
// harian installation aktif client dikali days.
type CreateServiceOutageDTO struct {
	ServiceOutageClientID    uuid.UUID  `json:"service_outage_client_id" validate:"required"`
	ServiceOutageStartedAt   time.Time  `json:"service_outage_started_at" validate:"required"`
	ServiceOutageEndedAt     *time.Time `json:"service_outage_ended_at,omitempty"`
	ServiceOutageDays        int        `json:"service_outage_days" validate:"min=1"`
	ServiceOutageDiscountIDR *int       `json:"service_outage_discount_idr,omitempty" validate:"omitempty,min=0"`
	ServiceOutageNote        *string    `json:"service_outage_note,omitempty"`
}

type UpdateServiceOutageDTO struct {
	ServiceOutageEndedAt     *time.Time `json:"service_outage_ended_at,omitempty"`
	ServiceOutageDays        *int       `json:"service_outage_days,omitempty" validate:"omitempty,min=1"`
	ServiceOutageDiscountIDR *int       `json:"service_outage_discount_idr,omitempty" validate:"omitempty,min=0"`
	ServiceOutageNote        *string    `json:"service_outage_note,omitempty"`
}

type ServiceOutageResponse struct {
	ServiceOutageID       uuid.UUID  `json:"service_outage_id"`
	ServiceOutageClientID uuid.UUID  `json:"service_outage_client_id"`

	ServiceOutageStartedAt time.Time  `json:"service_outage_started_at"`
	ServiceOutageEndedAt   *time.Time `json:"service_outage_ended_at,omitempty"`

	ServiceOutageDays        int `json:"service_outage_days"`
	ServiceOutageDiscountIDR int `json:"service_outage_discount_idr"`

	ServiceOutageStatus           string     `json:"service_outage_status"`
	ServiceOutageAppliedPaymentID *uuid.UUID `json:"service_outage_applied_payment_id,omitempty"`
	ServiceOutageNote             *string    `json:"service_outage_note,omitempty"`

	ServiceOutageCreatedAt time.Time `json:"service_outage_created_at"`
	ServiceOutageUpdatedAt time.Time `json:"service_outage_updated_at"`
}

func (r CreateServiceOutageDTO) ToServiceOutageModel(discountIDR int) model.ServiceOutage {
	return model.ServiceOutage{
		ServiceOutageClientID:    r.ServiceOutageClientID,
		ServiceOutageStartedAt:   r.ServiceOutageStartedAt,
		ServiceOutageEndedAt:     r.ServiceOutageEndedAt,
		ServiceOutageDays:        r.ServiceOutageDays,
		ServiceOutageDiscountIDR: discountIDR,
		ServiceOutageStatus:      model.ServiceOutageStatusPending,
		ServiceOutageNote:        r.ServiceOutageNote,
	}
}

func (r UpdateServiceOutageDTO) ApplyServiceOutageUpdate(m *model.ServiceOutage) {
	if r.ServiceOutageEndedAt != nil {
		m.ServiceOutageEndedAt = r.ServiceOutageEndedAt
	}
	if r.ServiceOutageDays != nil {
		m.ServiceOutageDays = *r.ServiceOutageDays
	}
	if r.ServiceOutageDiscountIDR != nil {
		m.ServiceOutageDiscountIDR = *r.ServiceOutageDiscountIDR
	}
	if r.ServiceOutageNote != nil {
		m.ServiceOutageNote = r.ServiceOutageNote
	}
}

func ToServiceOutageResponse(m model.ServiceOutage) ServiceOutageResponse {
	return ServiceOutageResponse{
		ServiceOutageID:               m.ServiceOutageID,
		ServiceOutageClientID:         m.ServiceOutageClientID,
		ServiceOutageStartedAt:        m.ServiceOutageStartedAt,
		ServiceOutageEndedAt:          m.ServiceOutageEndedAt,
		ServiceOutageDays:             m.ServiceOutageDays,
		ServiceOutageDiscountIDR:      m.ServiceOutageDiscountIDR,
		ServiceOutageStatus:           string(m.ServiceOutageStatus),
		ServiceOutageAppliedPaymentID: m.ServiceOutageAppliedPaymentID,
		ServiceOutageNote:             m.ServiceOutageNote,
		ServiceOutageCreatedAt:        m.ServiceOutageCreatedAt,
		ServiceOutageUpdatedAt:        m.ServiceOutageUpdatedAt,
	}
}

func ToServiceOutageResponses(list []model.ServiceOutage) []ServiceOutageResponse {
	out := make([]ServiceOutageResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToServiceOutageResponse(v))
	}
	return out
}
