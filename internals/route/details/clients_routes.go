// file: internals/route/details/clients_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AddonRoute "netku_backend/internals/features/clients/additional_services/route"
	ClientRoute "netku_backend/internals/features/clients/clients/route"
	InstallationRoute "netku_backend/internals/features/clients/installations/route"
	ServicePlanRoute "netku_backend/internals/features/clients/service_plans/route"
)

func ClientAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ClientRoute.ClientAdminRoutes(admin, db)
	ServicePlanRoute.ServicePlanAdminRoutes(admin, db)
	InstallationRoute.InstallationAdminRoutes(admin, db)
	AddonRoute.AdditionalServiceAdminRoutes(admin, db)
}
