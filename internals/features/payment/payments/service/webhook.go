package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"coachfit_backend/internals/constants"
	enrollmentModel "coachfit_backend/internals/features/activities/enrollment/model"
	paymentModel "coachfit_backend/internals/features/payment/payments/model"
)

// HandlePaymentStatusWebhook procesa una notificación de estado de Midtrans.
// Es idempotente: la re-entrega de un settlement ya aplicado no cambia nada.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload de webhook incompleto:", body)
		return fmt.Errorf("invalid payload")
	}

	var payment paymentModel.PaymentModel
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		log.Println("[ERROR] Pago no encontrado:", orderID)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		if payment.PaymentStatus == constants.PaymentPaid {
			// re-entrega, nada que hacer
			return nil
		}
		now := time.Now()
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&payment).Updates(map[string]interface{}{
				"payment_status":  constants.PaymentPaid,
				"payment_paid_at": now,
			}).Error; err != nil {
				return err
			}
			// activa la inscripción asociada
			return tx.Model(&enrollmentModel.EnrollmentModel{}).
				Where("enrollment_id = ?", payment.PaymentEnrollmentID).
				Update("enrollment_status", constants.EnrollmentActive).Error
		})

	case "expire":
		return db.Model(&payment).Update("payment_status", constants.PaymentExpired).Error
	case "cancel":
		return db.Model(&payment).Update("payment_status", constants.PaymentCanceled).Error
	case "deny":
		return db.Model(&payment).Update("payment_status", constants.PaymentDenied).Error
	default:
		log.Println("[INFO] Estado de transacción no procesado:", status)
		return nil
	}
}
