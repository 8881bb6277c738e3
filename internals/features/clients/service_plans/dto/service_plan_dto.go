// file: internals/features/clients/service_plans/dto/service_plan_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "netku_backend/internals/features/clients/service_plans/model"
)

type CreateServicePlanDTO struct {
	ServicePlanName          string `json:"service_plan_name" validate:"required,max=80"`
	ServicePlanMonthlyFeeIDR int    `json:"service_plan_monthly_fee_idr" validate:"min=0"`
	ServicePlanDownloadMbps  *int   `json:"service_plan_download_mbps,omitempty" validate:"omitempty,min=1"`
	ServicePlanUploadMbps    *int   `json:"service_plan_upload_mbps,omitempty" validate:"omitempty,min=1"`
}

type UpdateServicePlanDTO struct {
	ServicePlanName          *string `json:"service_plan_name,omitempty" validate:"omitempty,max=80"`
	ServicePlanMonthlyFeeIDR *int    `json:"service_plan_monthly_fee_idr,omitempty" validate:"omitempty,min=0"`
	ServicePlanDownloadMbps  *int    `json:"service_plan_download_mbps,omitempty" validate:"omitempty,min=1"`
	ServicePlanUploadMbps    *int    `json:"service_plan_upload_mbps,omitempty" validate:"omitempty,min=1"`
	ServicePlanIsActive      *bool   `json:"service_plan_is_active,omitempty"`
}

type ServicePlanResponse struct {
	ServicePlanID            uuid.UUID `json:"service_plan_id"`
	ServicePlanName          string    `json:"service_plan_name"`
	ServicePlanMonthlyFeeIDR int       `json:"service_plan_monthly_fee_idr"`
	ServicePlanDownloadMbps  *int      `json:"service_plan_download_mbps,omitempty"`
	ServicePlanUploadMbps    *int      `json:"service_plan_upload_mbps,omitempty"`
	ServicePlanIsActive      bool      `json:"service_plan_is_active"`
	ServicePlanCreatedAt     time.Time `json:"service_plan_created_at"`
	ServicePlanUpdatedAt     time.Time `json:"service_plan_updated_at"`
}

func (r CreateServicePlanDTO) ToServicePlanModel() model.ServicePlan {
	return model.ServicePlan{
		ServicePlanName:          strings.TrimSpace(r.ServicePlanName),
		ServicePlanMonthlyFeeIDR: r.ServicePlanMonthlyFeeIDR,
		ServicePlanDownloadMbps:  r.ServicePlanDownloadMbps,
		ServicePlanUploadMbps:    r.ServicePlanUploadMbps,
		ServicePlanIsActive:      true,
	}
}

// ApplyServicePlanUpdate — mengubah tarif TIDAK menyentuh installation yang
// sudah jalan: tarif di-snapshot saat pasang.
func (r UpdateServicePlanDTO) ApplyServicePlanUpdate(m *model.ServicePlan) {
	if r.ServicePlanName != nil {
		m.ServicePlanName = strings.TrimSpace(*r.ServicePlanName)
	}
	if r.ServicePlanMonthlyFeeIDR != nil {
		m.ServicePlanMonthlyFeeIDR = *r.ServicePlanMonthlyFeeIDR
	}
	if r.ServicePlanDownloadMbps != nil {
		m.ServicePlanDownloadMbps = r.ServicePlanDownloadMbps
	}
	if r.ServicePlanUploadMbps != nil {
		m.ServicePlanUploadMbps = r.ServicePlanUploadMbps
	}
	if r.ServicePlanIsActive != nil {
		m.ServicePlanIsActive = *r.ServicePlanIsActive
	}
}

func ToServicePlanResponse(m model.ServicePlan) ServicePlanResponse {
	return ServicePlanResponse{
		ServicePlanID:            m.ServicePlanID,
		ServicePlanName:          m.ServicePlanName,
		ServicePlanMonthlyFeeIDR: m.ServicePlanMonthlyFeeIDR,
		ServicePlanDownloadMbps:  m.ServicePlanDownloadMbps,
		ServicePlanUploadMbps:    m.ServicePlanUploadMbps,
		ServicePlanIsActive:      m.ServicePlanIsActive,
		ServicePlanCreatedAt:     m.ServicePlanCreatedAt,
		ServicePlanUpdatedAt:     m.ServicePlanUpdatedAt,
	}
}

func ToServicePlanResponses(list []model.ServicePlan) []ServicePlanResponse {
	out := make([]ServicePlanResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToServicePlanResponse(v))
	}
	return out
}
