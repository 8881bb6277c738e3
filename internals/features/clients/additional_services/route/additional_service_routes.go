// file: internals/features/clients/additional_services/route/additional_service_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	addonapi "netku_backend/internals/features/clients/additional_services/controller"
)

func AdditionalServiceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := addonapi.NewAdditionalServiceHandler(db)

	grp := admin.Group("/additional-services")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
