// file: internals/features/clients/additional_services/dto/additional_service_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "netku_backend/internals/features/clients/additional_services/model"
)

type CreateAdditionalServiceDTO struct {
	AdditionalServiceClientID      uuid.UUID `json:"additional_service_client_id" validate:"required"`
	AdditionalServiceName          string    `json:"additional_service_name" validate:"required,max=80"`
	AdditionalServiceMonthlyFeeIDR int       `json:"additional_service_monthly_fee_idr" validate:"min=0"`
	AdditionalServiceStartDate     time.Time `json:"additional_service_start_date" validate:"required"`
}

type UpdateAdditionalServiceDTO struct {
	AdditionalServiceName          *string    `json:"additional_service_name,omitempty" validate:"omitempty,max=80"`
	AdditionalServiceMonthlyFeeIDR *int       `json:"additional_service_monthly_fee_idr,omitempty" validate:"omitempty,min=0"`
	AdditionalServiceStatus        *string    `json:"additional_service_status,omitempty" validate:"omitempty,oneof=active stopped"`
	AdditionalServiceEndDate       *time.Time `json:"additional_service_end_date,omitempty"`
}

type AdditionalServiceResponse struct {
	AdditionalServiceID            uuid.UUID  `json:"additional_service_id"`
	AdditionalServiceClientID      uuid.UUID  `json:"additional_service_client_id"`
	AdditionalServiceName          string     `json:"additional_service_name"`
	AdditionalServiceMonthlyFeeIDR int        `json:"additional_service_monthly_fee_idr"`
	AdditionalServiceStatus        string     `json:"additional_service_status"`
	AdditionalServiceStartDate     time.Time  `json:"additional_service_start_date"`
	AdditionalServiceEndDate       *time.Time `json:"additional_service_end_date,omitempty"`
	AdditionalServiceCreatedAt     time.Time  `json:"additional_service_created_at"`
	AdditionalServiceUpdatedAt     time.Time  `json:"additional_service_updated_at"`
}

func (r CreateAdditionalServiceDTO) ToAdditionalServiceModel() model.AdditionalService {
	return model.AdditionalService{
		AdditionalServiceClientID:      r.AdditionalServiceClientID,
		AdditionalServiceName:          strings.TrimSpace(r.AdditionalServiceName),
		AdditionalServiceMonthlyFeeIDR: r.AdditionalServiceMonthlyFeeIDR,
		AdditionalServiceStatus:        model.AdditionalServiceStatusActive,
		AdditionalServiceStartDate:     r.AdditionalServiceStartDate,
	}
}

func (r UpdateAdditionalServiceDTO) ApplyAdditionalServiceUpdate(m *model.AdditionalService) {
	if r.AdditionalServiceName != nil {
		m.AdditionalServiceName = strings.TrimSpace(*r.AdditionalServiceName)
	}
	if r.AdditionalServiceMonthlyFeeIDR != nil {
		m.AdditionalServiceMonthlyFeeIDR = *r.AdditionalServiceMonthlyFeeIDR
	}
	if r.AdditionalServiceStatus != nil {
		m.AdditionalServiceStatus = model.AdditionalServiceStatus(*r.AdditionalServiceStatus)
	}
	if r.AdditionalServiceEndDate != nil {
		m.AdditionalServiceEndDate = r.AdditionalServiceEndDate
	}
}

func ToAdditionalServiceResponse(m model.AdditionalService) AdditionalServiceResponse {
	return AdditionalServiceResponse{
		AdditionalServiceID:            m.AdditionalServiceID,
		AdditionalServiceClientID:      m.AdditionalServiceClientID,
		AdditionalServiceName:          m.AdditionalServiceName,
		AdditionalServiceMonthlyFeeIDR: m.AdditionalServiceMonthlyFeeIDR,
		AdditionalServiceStatus:        string(m.AdditionalServiceStatus),
		AdditionalServiceStartDate:     m.AdditionalServiceStartDate,
		AdditionalServiceEndDate:       m.AdditionalServiceEndDate,
		AdditionalServiceCreatedAt:     m.AdditionalServiceCreatedAt,
		AdditionalServiceUpdatedAt:     m.AdditionalServiceUpdatedAt,
	}
}

func ToAdditionalServiceResponses(list []model.AdditionalService) []AdditionalServiceResponse {
	out := make([]AdditionalServiceResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToAdditionalServiceResponse(v))
	}
	return out
}
