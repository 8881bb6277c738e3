// file: internals/route/details/network_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	OutageRoute "netku_backend/internals/features/network/outages/route"
	SuspensionRoute "netku_backend/internals/features/network/suspensions/route"
)

func NetworkAdminRoutes(admin fiber.Router, db *gorm.DB) {
	OutageRoute.ServiceOutageAdminRoutes(admin, db)
	SuspensionRoute.SuspensionAdminRoutes(admin, db)
}
