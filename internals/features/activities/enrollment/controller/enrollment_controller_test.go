package controller

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"coachfit_backend/internals/constants"
	activityModel "coachfit_backend/internals/features/activities/activity/model"
	enrollmentModel "coachfit_backend/internals/features/activities/enrollment/model"
	paymentModel "coachfit_backend/internals/features/payment/payments/model"
	userModel "coachfit_backend/internals/features/users/user/model"
)

func newEnrollmentApp(t *testing.T, userID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&activityModel.ActivityModel{},
		&enrollmentModel.EnrollmentModel{},
		&paymentModel.PaymentModel{},
	))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})

	ctrl := NewEnrollmentController(db)
	app.Post("/api/u/activities/:id/enroll", ctrl.Enroll)
	app.Get("/api/u/enrollments", ctrl.ListMine)
	app.Get("/api/u/activities/:id/enrollees", ctrl.ListEnrollees)

	return app, db
}

func seedPublishedActivity(t *testing.T, db *gorm.DB, coachID uuid.UUID, price int64) activityModel.ActivityModel {
	t.Helper()
	activity := activityModel.ActivityModel{
		ActivityCoachID:     coachID,
		ActivityType:        constants.ActivityTypeWorkshop,
		ActivityTitle:       "Cardio grupal",
		ActivitySlug:        "cardio-grupal-" + uuid.NewString()[:8],
		ActivityPrice:       price,
		ActivityIsPublished: true,
	}
	require.NoError(t, db.Create(&activity).Error)
	return activity
}

func TestEnroll_ActividadGratisQuedaActiva(t *testing.T) {
	client := uuid.New()
	app, db := newEnrollmentApp(t, client)
	activity := seedPublishedActivity(t, db, uuid.New(), 0)

	req := httptest.NewRequest(fiber.MethodPost,
		fmt.Sprintf("/api/u/activities/%s/enroll", activity.ActivityID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var enrollment enrollmentModel.EnrollmentModel
	require.NoError(t, db.First(&enrollment,
		"enrollment_activity_id = ? AND enrollment_user_id = ?",
		activity.ActivityID, client).Error)
	assert.Equal(t, constants.EnrollmentActive, enrollment.EnrollmentStatus)

	// gratis: no se crea pago
	var n int64
	require.NoError(t, db.Model(&paymentModel.PaymentModel{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestEnroll_DuplicadoDevuelveConflicto(t *testing.T) {
	client := uuid.New()
	app, db := newEnrollmentApp(t, client)
	activity := seedPublishedActivity(t, db, uuid.New(), 0)

	path := fmt.Sprintf("/api/u/activities/%s/enroll", activity.ActivityID)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, path, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, path, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestEnroll_PropiaActividadRechazada(t *testing.T) {
	coach := uuid.New()
	app, db := newEnrollmentApp(t, coach)
	activity := seedPublishedActivity(t, db, coach, 0)

	req := httptest.NewRequest(fiber.MethodPost,
		fmt.Sprintf("/api/u/activities/%s/enroll", activity.ActivityID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEnroll_NoPublicadaEsNotFound(t *testing.T) {
	client := uuid.New()
	app, db := newEnrollmentApp(t, client)

	activity := activityModel.ActivityModel{
		ActivityCoachID: uuid.New(),
		ActivityType:    constants.ActivityTypeWorkshop,
		ActivityTitle:   "Borrador",
		ActivitySlug:    "borrador-" + uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(&activity).Error)

	req := httptest.NewRequest(fiber.MethodPost,
		fmt.Sprintf("/api/u/activities/%s/enroll", activity.ActivityID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListEnrollees_SoloElCoach(t *testing.T) {
	coach := uuid.New()
	app, db := newEnrollmentApp(t, coach)
	activity := seedPublishedActivity(t, db, coach, 0)

	require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
		EnrollmentActivityID: activity.ActivityID,
		EnrollmentUserID:     uuid.New(),
		EnrollmentStatus:     constants.EnrollmentActive,
	}).Error)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		fmt.Sprintf("/api/u/activities/%s/enrollees", activity.ActivityID), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// otra actividad, otro coach: prohibido
	other := seedPublishedActivity(t, db, uuid.New(), 0)
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet,
		fmt.Sprintf("/api/u/activities/%s/enrollees", other.ActivityID), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
