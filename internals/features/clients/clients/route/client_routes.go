// file: internals/features/clients/clients/route/client_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clientapi "netku_backend/internals/features/clients/clients/controller"
)

func ClientAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := clientapi.NewClientHandler(db)

	grp := admin.Group("/clients")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
