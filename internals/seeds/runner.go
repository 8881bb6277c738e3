// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	operators "netku_backend/internals/seeds/operators"
	serviceplans "netku_backend/internals/seeds/service_plans"
)

// RunAllSeeds dipanggil manual untuk lingkungan baru. Semua seed idempoten:
// baris yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) {
	operators.SeedDefaultOperator(db)
	serviceplans.SeedServicePlansFromJSON(db, "internals/seeds/service_plans/data_service_plans.json")
}
