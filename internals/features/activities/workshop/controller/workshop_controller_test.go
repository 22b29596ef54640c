package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
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
	surveyModel "coachfit_backend/internals/features/activities/survey/model"
	workshopModel "coachfit_backend/internals/features/activities/workshop/model"
)

func newTestApp(t *testing.T, userID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&activityModel.ActivityModel{},
		&workshopModel.WorkshopVersionModel{},
		&surveyModel.ActivitySurveyModel{},
		&enrollmentModel.EnrollmentModel{},
	))

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "error": err.Error()})
		},
	})

	// reemplaza al middleware de auth real: deja el user_id en Locals
	app.Use(func(c *fiber.Ctx) error {
		if userID != uuid.Nil {
			c.Locals("user_id", userID.String())
		}
		return c.Next()
	})

	ctrl := NewWorkshopController(db)
	app.Post("/api/u/activities/:id/finish-workshop", ctrl.FinishWorkshop)
	app.Get("/api/u/activities/:id/check-coach-survey", ctrl.CheckCoachSurvey)

	return app, db
}

func createWorkshop(t *testing.T, db *gorm.DB, coachID uuid.UUID) activityModel.ActivityModel {
	t.Helper()
	activity := activityModel.ActivityModel{
		ActivityCoachID: coachID,
		ActivityType:    constants.ActivityTypeWorkshop,
		ActivityTitle:   "Movilidad articular",
		ActivitySlug:    "movilidad-articular-" + uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(&activity).Error)
	return activity
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestFinishWorkshopEndpoint_Cierre(t *testing.T) {
	coach := uuid.New()
	app, db := newTestApp(t, coach)
	activity := createWorkshop(t, db, coach)

	resp, body := doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/u/activities/%s/finish-workshop", activity.ActivityID),
		fiber.Map{"is_finished": true, "coach_rating": 4, "coach_feedback": "Sólido"})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Taller finalizado correctamente", body["message"])
	assert.EqualValues(t, 1, body["version"])
}

func TestFinishWorkshopEndpoint_RatingInvalido(t *testing.T) {
	coach := uuid.New()
	app, db := newTestApp(t, coach)
	activity := createWorkshop(t, db, coach)

	resp, body := doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/u/activities/%s/finish-workshop", activity.ActivityID),
		fiber.Map{"is_finished": true, "coach_rating": 9})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "La calificación debe estar entre 1 y 5", body["error"])
}

func TestFinishWorkshopEndpoint_NoEsElCoach(t *testing.T) {
	caller := uuid.New()
	app, db := newTestApp(t, caller)
	activity := createWorkshop(t, db, uuid.New())

	resp, body := doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/u/activities/%s/finish-workshop", activity.ActivityID),
		fiber.Map{"is_finished": true})

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "No eres el coach de esta actividad", body["error"])
}

// Un caller ajeno recibe 403 aunque el body además traiga un rating
// fuera de rango.
func TestFinishWorkshopEndpoint_NoEsElCoachConBodyInvalido(t *testing.T) {
	caller := uuid.New()
	app, db := newTestApp(t, caller)
	activity := createWorkshop(t, db, uuid.New())

	resp, body := doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/u/activities/%s/finish-workshop", activity.ActivityID),
		fiber.Map{"is_finished": true, "coach_rating": 9})

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "No eres el coach de esta actividad", body["error"])
}

func TestFinishWorkshopEndpoint_NoExiste(t *testing.T) {
	coach := uuid.New()
	app, _ := newTestApp(t, coach)

	resp, body := doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/u/activities/%s/finish-workshop", uuid.New()),
		fiber.Map{"is_finished": true})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Actividad no encontrada", body["error"])
}

func TestFinishWorkshopEndpoint_IDInvalido(t *testing.T) {
	coach := uuid.New()
	app, _ := newTestApp(t, coach)

	resp, body := doJSON(t, app, fiber.MethodPost,
		"/api/u/activities/no-es-uuid/finish-workshop",
		fiber.Map{"is_finished": true})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ID de actividad inválido", body["error"])
}

func TestFinishWorkshopEndpoint_SinSesion(t *testing.T) {
	app, db := newTestApp(t, uuid.Nil)
	activity := createWorkshop(t, db, uuid.New())

	resp, body := doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/u/activities/%s/finish-workshop", activity.ActivityID),
		fiber.Map{"is_finished": true})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestCheckCoachSurveyEndpoint_SinCierrePrevio(t *testing.T) {
	coach := uuid.New()
	app, db := newTestApp(t, coach)
	activity := createWorkshop(t, db, coach)

	resp, body := doJSON(t, app, fiber.MethodGet,
		fmt.Sprintf("/api/u/activities/%s/check-coach-survey", activity.ActivityID), nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["hasSurvey"])
	assert.Nil(t, body["survey"])
	assert.Nil(t, body["currentVersion"])
}

func TestCheckCoachSurveyEndpoint_ConEvaluacion(t *testing.T) {
	coach := uuid.New()
	app, db := newTestApp(t, coach)
	activity := createWorkshop(t, db, coach)

	// cerrar con evaluación vía el propio endpoint
	_, _ = doJSON(t, app, fiber.MethodPost,
		fmt.Sprintf("/api/u/activities/%s/finish-workshop", activity.ActivityID),
		fiber.Map{"is_finished": true, "coach_rating": 5})

	resp, body := doJSON(t, app, fiber.MethodGet,
		fmt.Sprintf("/api/u/activities/%s/check-coach-survey", activity.ActivityID), nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["hasSurvey"])
	assert.NotNil(t, body["survey"])
	assert.EqualValues(t, 1, body["currentVersion"])
}
