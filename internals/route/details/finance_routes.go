// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	BillingRoute "netku_backend/internals/features/finance/billing/route"
	PaymentRoute "netku_backend/internals/features/finance/payments/route"
)

func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	BillingRoute.BillingAdminRoutes(admin, db)
	PaymentRoute.PaymentAdminRoutes(admin, db)
}
