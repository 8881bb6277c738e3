// file: internals/features/clients/service_plans/route/service_plan_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planapi "netku_backend/internals/features/clients/service_plans/controller"
)

func ServicePlanAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := planapi.NewServicePlanHandler(db)

	grp := admin.Group("/service-plans")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Put("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
