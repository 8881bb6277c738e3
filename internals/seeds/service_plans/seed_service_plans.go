// file: internals/seeds/service_plans/seed_service_plans.go
package serviceplans

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	model "netku_backend/internals/features/clients/service_plans/model"
)

type planSeed struct {
	Name          string `json:"name"`
	MonthlyFeeIDR int    `json:"monthly_fee_idr"`
	DownloadMbps  *int   `json:"download_mbps,omitempty"`
	UploadMbps    *int   `json:"upload_mbps,omitempty"`
}

// SeedServicePlansFromJSON memuat katalog paket awal; nama yang sudah ada
// dilewati.
func SeedServicePlansFromJSON(db *gorm.DB, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[SEED] service_plans: baca %s gagal: %v", path, err)
		return
	}
	var plans []planSeed
	if err := json.Unmarshal(raw, &plans); err != nil {
		log.Printf("[SEED] service_plans: parse gagal: %v", err)
		return
	}

	created := 0
	for _, p := range plans {
		var count int64
		if err := db.Model(&model.ServicePlan{}).
			Where("service_plan_name = ?", p.Name).
			Count(&count).Error; err != nil {
			log.Printf("[SEED] service_plans: cek %q gagal: %v", p.Name, err)
			continue
		}
		if count > 0 {
			continue
		}
		row := model.ServicePlan{
			ServicePlanName:          p.Name,
			ServicePlanMonthlyFeeIDR: p.MonthlyFeeIDR,
			ServicePlanDownloadMbps:  p.DownloadMbps,
			ServicePlanUploadMbps:    p.UploadMbps,
			ServicePlanIsActive:      true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[SEED] service_plans: create %q gagal: %v", p.Name, err)
			continue
		}
		created++
	}
	log.Printf("[SEED] service_plans: %d paket baru ✅", created)
}
