// file: internals/features/finance/billing/route/billing_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingapi "netku_backend/internals/features/finance/billing/controller"
)

/*
Admin routes — generate/recalculate/rollback hanya untuk operator login.
*/
func BillingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := billingapi.NewBillingHandler(db)

	grp := admin.Group("/billing")
	{
		grp.Post("/generate", h.GenerateBilling)
		grp.Post("/recalculate", h.RecalculateBilling)
		grp.Post("/rollback", h.RollbackBilling)
	}
}
