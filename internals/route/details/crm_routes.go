// file: internals/route/details/crm_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	CrmRoute "netku_backend/internals/features/crm/interactions/route"
)

func CrmAdminRoutes(admin fiber.Router, db *gorm.DB) {
	CrmRoute.CrmInteractionAdminRoutes(admin, db)
}
