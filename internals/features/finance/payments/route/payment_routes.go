// file: internals/features/finance/payments/route/payment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentapi "netku_backend/internals/features/finance/payments/controller"
)

/*
Admin routes — ledger pembayaran hanya untuk operator login.
*/
func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := paymentapi.NewPaymentHandler(db)

	grp := admin.Group("/payments")
	{
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Post("/:id/register", h.RegisterPayment)
		grp.Post("/bulk-mark-paid", h.BulkMarkPaid)
		grp.Post("/mark-overdue", h.MarkOverduePayments)
	}
}
