// file: internals/features/clients/service_plans/model/service_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServicePlan adalah katalog paket layanan. Tarif bulanan di-snapshot ke
// installation saat pasang/ganti paket, jadi ubah tarif di sini tidak
// mengubah tagihan installation yang sudah jalan.
type ServicePlan struct {
	ServicePlanID uuid.UUID `gorm:"column:service_plan_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"service_plan_id"`

	ServicePlanName          string `gorm:"column:service_plan_name;type:varchar(80);not null;uniqueIndex:uniq_service_plan_name" json:"service_plan_name"`
	ServicePlanMonthlyFeeIDR int    `gorm:"column:service_plan_monthly_fee_idr;type:int;not null;check:service_plan_monthly_fee_idr>=0" json:"service_plan_monthly_fee_idr"`

	ServicePlanDownloadMbps *int `gorm:"column:service_plan_download_mbps;type:int" json:"service_plan_download_mbps,omitempty"`
	ServicePlanUploadMbps   *int `gorm:"column:service_plan_upload_mbps;type:int" json:"service_plan_upload_mbps,omitempty"`

	ServicePlanIsActive bool `gorm:"column:service_plan_is_active;not null;default:true;index" json:"service_plan_is_active"`

	ServicePlanCreatedAt time.Time      `gorm:"column:service_plan_created_at;type:timestamptz;not null;default:now()" json:"service_plan_created_at"`
	ServicePlanUpdatedAt time.Time      `gorm:"column:service_plan_updated_at;type:timestamptz;not null;default:now()" json:"service_plan_updated_at"`
	ServicePlanDeletedAt gorm.DeletedAt `gorm:"column:service_plan_deleted_at;type:timestamptz;index" json:"-"`
}

func (ServicePlan) TableName() string { return "service_plans" }

func (m *ServicePlan) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ServicePlanID == uuid.Nil {
		m.ServicePlanID = uuid.New()
	}
	if m.ServicePlanCreatedAt.IsZero() {
		m.ServicePlanCreatedAt = now
	}
	m.ServicePlanUpdatedAt = now
	return nil
}

func (m *ServicePlan) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ServicePlanUpdatedAt = time.Now()
	return nil
}
