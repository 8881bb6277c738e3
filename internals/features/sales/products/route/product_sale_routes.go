// file: internals/features/sales/products/route/product_sale_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	saleapi "netku_backend/internals/features/sales/products/controller"
)

func ProductSaleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := saleapi.NewProductSaleHandler(db)

	grp := admin.Group("/product-sales")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Post("/:id/cancel", h.Cancel)
	}
}
