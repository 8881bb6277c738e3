// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authmw "netku_backend/internals/middlewares/auth"
	routeDetails "netku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, db)

	// ===================== ADMIN =====================
	// Semua fitur back-office di belakang token operator.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/a", authmw.AuthMiddleware())

	log.Println("[INFO] Mounting Client routes...")
	routeDetails.ClientAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Sales routes...")
	routeDetails.SalesAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Network routes...")
	routeDetails.NetworkAdminRoutes(admin, db)

	log.Println("[INFO] Mounting CRM routes...")
	routeDetails.CrmAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceAdminRoutes(admin, db)
}
