// file: internals/features/clients/installations/route/installation_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	installapi "netku_backend/internals/features/clients/installations/controller"
)

func InstallationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := installapi.NewInstallationHandler(db)

	grp := admin.Group("/installations")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Post("/:id/retire", h.Retire)
		grp.Delete("/:id", h.Delete)
	}
}
