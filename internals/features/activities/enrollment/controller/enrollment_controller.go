package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachfit_backend/internals/constants"
	activityModel "coachfit_backend/internals/features/activities/activity/model"
	enrollmentModel "coachfit_backend/internals/features/activities/enrollment/model"
	paymentModel "coachfit_backend/internals/features/payment/payments/model"
	paymentService "coachfit_backend/internals/features/payment/payments/service"
	userModel "coachfit_backend/internals/features/users/user/model"
	helper "coachfit_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// POST /api/u/activities/:id/enroll
// Actividad gratis -> inscripción activa de inmediato.
// Actividad paga -> inscripción pending + token de checkout Midtrans.
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de actividad inválido")
	}

	var activity activityModel.ActivityModel
	if err := ctrl.DB.
		Where("activity_id = ? AND activity_is_published = ?", activityID, true).
		First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Actividad no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
	if activity.ActivityCoachID == userID {
		return helper.Error(c, fiber.StatusBadRequest, "No puedes inscribirte en tu propia actividad")
	}

	var existing enrollmentModel.EnrollmentModel
	if err := ctrl.DB.
		Where("enrollment_activity_id = ? AND enrollment_user_id = ?", activityID, userID).
		First(&existing).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "Ya estás inscrito en esta actividad")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	// gratis -> activa directo
	if activity.ActivityPrice == 0 {
		enrollment := enrollmentModel.EnrollmentModel{
			EnrollmentActivityID: activityID,
			EnrollmentUserID:     userID,
			EnrollmentStatus:     constants.EnrollmentActive,
		}
		if err := ctrl.DB.Create(&enrollment).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				return helper.Error(c, fiber.StatusConflict, "Ya estás inscrito en esta actividad")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la inscripción")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Inscripción creada", enrollment)
	}

	// paga -> pending + checkout
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	enrollment := enrollmentModel.EnrollmentModel{
		EnrollmentActivityID: activityID,
		EnrollmentUserID:     userID,
		EnrollmentStatus:     constants.EnrollmentPending,
	}
	payment := paymentModel.PaymentModel{
		PaymentUserID: userID,
		PaymentAmount: activity.ActivityPrice,
		PaymentStatus: constants.PaymentPending,
		PaymentOrderID: fmt.Sprintf("CF-%s-%d",
			strings.Split(activityID.String(), "-")[0], time.Now().Unix()),
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		payment.PaymentEnrollmentID = enrollment.EnrollmentID
		return tx.Create(&payment).Error
	}); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.Error(c, fiber.StatusConflict, "Ya estás inscrito en esta actividad")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la inscripción")
	}

	token, redirectURL, err := paymentService.GenerateSnapToken(payment, user.UserName, user.UserEmail)
	if err != nil {
		log.Printf("[ERROR] snap token %s: %v", payment.PaymentOrderID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo iniciar el pago")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Inscripción pendiente de pago", fiber.Map{
		"enrollment":   enrollment,
		"payment":      payment,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// GET /api/u/enrollments  (las del usuario autenticado)
func (ctrl *EnrollmentController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := ctrl.DB.
		Where("enrollment_user_id = ?", userID).
		Order("enrollment_created_at DESC").
		Find(&enrollments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return helper.Success(c, "OK", enrollments)
}

// GET /api/u/activities/:id/enrollees  (solo el coach dueño)
func (ctrl *EnrollmentController) ListEnrollees(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de actividad inválido")
	}

	var activity activityModel.ActivityModel
	if err := ctrl.DB.First(&activity, "activity_id = ?", activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Actividad no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
	if activity.ActivityCoachID != coachID {
		return helper.Error(c, fiber.StatusForbidden, "No eres el coach de esta actividad")
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := ctrl.DB.
		Where("enrollment_activity_id = ?", activityID).
		Order("enrollment_created_at ASC").
		Find(&enrollments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return helper.Success(c, "OK", enrollments)
}
