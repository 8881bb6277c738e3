// file: internals/features/network/suspensions/route/suspension_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	suspensionapi "netku_backend/internals/features/network/suspensions/controller"
)

func SuspensionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := suspensionapi.NewSuspensionHandler(db)

	admin.Get("/suspension-candidates", h.List)
}
