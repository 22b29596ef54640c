package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "coachfit_backend/internals/features/activities/activity/model"
	surveyModel "coachfit_backend/internals/features/activities/survey/model"
	helper "coachfit_backend/internals/helpers"
)

type SurveyController struct {
	DB *gorm.DB
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db}
}

// GET /api/u/activities/:id/surveys
// El coach lee sus propias evaluaciones; la autorización va por el predicado
// rater = caller, sin credenciales privilegiadas.
func (ctrl *SurveyController) ListMine(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
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
	if activity.ActivityCoachID != callerID {
		return helper.Error(c, fiber.StatusForbidden, "No eres el coach de esta actividad")
	}

	var surveys []surveyModel.ActivitySurveyModel
	if err := ctrl.DB.
		Where("activity_survey_activity_id = ? AND activity_survey_rater_id = ?", activityID, callerID).
		Order("activity_survey_created_at DESC").
		Find(&surveys).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return helper.Success(c, "OK", surveys)
}
