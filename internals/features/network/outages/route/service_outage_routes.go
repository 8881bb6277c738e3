// file: internals/features/network/outages/route/service_outage_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	outageapi "netku_backend/internals/features/network/outages/controller"
)

func ServiceOutageAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := outageapi.NewServiceOutageHandler(db)

	grp := admin.Group("/outages")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Post("/:id/cancel", h.Cancel)
	}
}
