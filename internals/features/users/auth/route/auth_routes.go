// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authapi "netku_backend/internals/features/users/auth/controller"
	"netku_backend/internals/middlewares"
	authmw "netku_backend/internals/middlewares/auth"
)

// AuthRoutes — login publik (rate-limited), sisanya butuh token.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	h := authapi.NewAuthHandler(db)

	grp := api.Group("/auth")
	{
		grp.Post("/login", middlewares.LoginRateLimiter(), h.Login)

		protected := grp.Use(authmw.AuthMiddleware())
		protected.Get("/me", h.Me)
		protected.Post("/change-password", h.ChangePassword)
		protected.Post("/operators", h.CreateOperator)
	}
}
