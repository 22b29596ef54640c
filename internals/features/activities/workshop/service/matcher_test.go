package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	surveyModel "coachfit_backend/internals/features/activities/survey/model"
	workshopModel "coachfit_backend/internals/features/activities/workshop/model"
)

func seedVersion(t *testing.T, db *gorm.DB, activityID uuid.UUID, number int) {
	t.Helper()
	require.NoError(t, db.Create(&workshopModel.WorkshopVersionModel{
		WorkshopVersionActivityID:    activityID,
		WorkshopVersionNumber:        number,
		WorkshopVersionStartedLabel:  "01/01/24",
		WorkshopVersionFinishedLabel: "01/02/24",
	}).Error)
}

func seedSurvey(t *testing.T, db *gorm.DB, activityID, raterID uuid.UUID, rawVersion string, rating *float64) {
	t.Helper()
	require.NoError(t, db.Create(&surveyModel.ActivitySurveyModel{
		ActivitySurveyActivityID:      activityID,
		ActivitySurveyRaterID:         raterID,
		ActivitySurveyWorkshopVersion: datatypes.JSON(rawVersion),
		ActivitySurveyRating:          rating,
	}).Error)
}

// La columna de versión debe sobrevivir el round-trip por GORM con payloads
// numéricos y string: una fila recién escrita tiene que poder releerse.
func TestVersionPersistenciaRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	activityID := uuid.New()

	r := 3.0
	for _, raw := range []datatypes.JSON{VersionJSON(2), datatypes.JSON(`"2"`), datatypes.JSON(`2.0`)} {
		require.NoError(t, db.Create(&surveyModel.ActivitySurveyModel{
			ActivitySurveyActivityID:      activityID,
			ActivitySurveyRaterID:         uuid.New(),
			ActivitySurveyWorkshopVersion: raw,
			ActivitySurveyRating:          &r,
		}).Error)
	}

	var rows []surveyModel.ActivitySurveyModel
	require.NoError(t, db.Find(&rows,
		"activity_survey_activity_id = ?", activityID).Error)
	require.Len(t, rows, 3)
	for _, row := range rows {
		v, ok := NormalizeStoredVersion(row.ActivitySurveyWorkshopVersion)
		require.True(t, ok, "raw=%s", row.ActivitySurveyWorkshopVersion)
		assert.Equal(t, 2, v)
	}
}

func TestHasCompletedSurvey_TallerNuncaCerrado(t *testing.T) {
	db := setupTestDB(t)
	coach := uuid.New()
	activity := seedWorkshop(t, db, coach, false)

	check, err := HasCompletedSurvey(db, activity.ActivityID, coach)
	require.NoError(t, err)
	assert.False(t, check.HasSurvey)
	assert.Nil(t, check.Survey)
	assert.Equal(t, VersionNone, check.CurrentVersion)
}

func TestHasCompletedSurvey_SinEvaluacionParaVersionActual(t *testing.T) {
	db := setupTestDB(t)
	coach := uuid.New()
	activity := seedWorkshop(t, db, coach, true)
	seedVersion(t, db, activity.ActivityID, 1)
	seedVersion(t, db, activity.ActivityID, 2)

	// evaluación de la versión anterior, no de la actual
	r := 4.0
	seedSurvey(t, db, activity.ActivityID, coach, `1`, &r)

	check, err := HasCompletedSurvey(db, activity.ActivityID, coach)
	require.NoError(t, err)
	assert.False(t, check.HasSurvey)
	assert.Nil(t, check.Survey)
	assert.Equal(t, 2, check.CurrentVersion)
}

func TestHasCompletedSurvey_RatingNuloNoCuenta(t *testing.T) {
	db := setupTestDB(t)
	coach := uuid.New()
	activity := seedWorkshop(t, db, coach, true)
	seedVersion(t, db, activity.ActivityID, 1)

	seedSurvey(t, db, activity.ActivityID, coach, `1`, nil)

	check, err := HasCompletedSurvey(db, activity.ActivityID, coach)
	require.NoError(t, err)
	assert.False(t, check.HasSurvey)
	assert.Equal(t, 1, check.CurrentVersion)
}

// Las representaciones históricas de la versión deben hacer match contra la
// versión actual tipada.
func TestHasCompletedSurvey_NormalizaRepresentaciones(t *testing.T) {
	for _, raw := range []string{`2`, `"2"`, `2.0`, `"2.0"`} {
		t.Run(raw, func(t *testing.T) {
			db := setupTestDB(t)
			coach := uuid.New()
			activity := seedWorkshop(t, db, coach, true)
			seedVersion(t, db, activity.ActivityID, 1)
			seedVersion(t, db, activity.ActivityID, 2)

			r := 5.0
			seedSurvey(t, db, activity.ActivityID, coach, raw, &r)

			check, err := HasCompletedSurvey(db, activity.ActivityID, coach)
			require.NoError(t, err)
			assert.True(t, check.HasSurvey)
			require.NotNil(t, check.Survey)
			assert.Equal(t, 2, check.CurrentVersion)
		})
	}
}

func TestHasCompletedSurvey_IgnoraEvaluacionesDeOtroUsuario(t *testing.T) {
	db := setupTestDB(t)
	coach := uuid.New()
	activity := seedWorkshop(t, db, coach, true)
	seedVersion(t, db, activity.ActivityID, 1)

	r := 5.0
	seedSurvey(t, db, activity.ActivityID, uuid.New(), `1`, &r)

	check, err := HasCompletedSurvey(db, activity.ActivityID, coach)
	require.NoError(t, err)
	assert.False(t, check.HasSurvey)
}

// Flujo completo: un taller recién creado se cierra con rating y el check
// inmediato lo reporta como evaluado para la versión 1.
func TestFinishLuegoCheck(t *testing.T) {
	db := setupTestDB(t)
	coach := uuid.New()
	activity := seedWorkshop(t, db, coach, false)

	rating := 4.0
	res, err := FinishWorkshop(db, activity.ActivityID, coach, FinishInput{
		IsFinished: true, Rating: &rating,
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.Version)

	check, err := HasCompletedSurvey(db, activity.ActivityID, coach)
	require.NoError(t, err)
	assert.True(t, check.HasSurvey)
	assert.Equal(t, 1, check.CurrentVersion)
	require.NotNil(t, check.Survey)
	require.NotNil(t, check.Survey.ActivitySurveyRating)
	assert.Equal(t, 4.0, *check.Survey.ActivitySurveyRating)

	var version workshopModel.WorkshopVersionModel
	require.NoError(t, db.First(&version,
		"workshop_version_activity_id = ?", activity.ActivityID).Error)
	assert.Equal(t, 1, version.WorkshopVersionNumber)
	assert.Equal(t, "01/01/24", version.WorkshopVersionStartedLabel)
}

func TestHasCompletedSurvey_Guards(t *testing.T) {
	db := setupTestDB(t)
	coach := uuid.New()
	activity := seedWorkshop(t, db, coach, false)

	_, err := HasCompletedSurvey(db, uuid.New(), coach)
	assert.ErrorIs(t, err, ErrActivityNotFound)

	_, err = HasCompletedSurvey(db, activity.ActivityID, uuid.New())
	assert.ErrorIs(t, err, ErrNotActivityCoach)
}
