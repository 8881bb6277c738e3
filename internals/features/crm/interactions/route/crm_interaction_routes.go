// file: internals/features/crm/interactions/route/crm_interaction_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	crmapi "netku_backend/internals/features/crm/interactions/controller"
)

func CrmInteractionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := crmapi.NewCrmInteractionHandler(db)

	grp := admin.Group("/interactions")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Delete("/:id", h.Delete)
	}
}
