package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "coachfit_backend/internals/features/payment/payments/controller"
)

// PaymentRoutes monta el webhook de Midtrans. Va fuera del grupo
// autenticado: Midtrans firma la notificación, no manda JWT.
func PaymentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	app.Post("/api/payments/notification", ctrl.Notification)
}
