package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentService "coachfit_backend/internals/features/payment/payments/service"
	helper "coachfit_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// POST /api/payments/notification  (webhook Midtrans, sin auth)
func (ctrl *PaymentController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}

	if err := paymentService.HandlePaymentStatusWebhook(ctrl.DB, body); err != nil {
		// Midtrans reintenta en cualquier código != 2xx
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la notificación")
	}

	return helper.Success(c, "OK", nil)
}
