// file: internals/route/details/sales_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ProductSaleRoute "netku_backend/internals/features/sales/products/route"
)

func SalesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ProductSaleRoute.ProductSaleAdminRoutes(admin, db)
}
