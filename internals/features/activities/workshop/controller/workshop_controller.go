package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	workshopService "coachfit_backend/internals/features/activities/workshop/service"
	helper "coachfit_backend/internals/helpers"
)

type WorkshopController struct {
	DB *gorm.DB
}

func NewWorkshopController(db *gorm.DB) *WorkshopController {
	return &WorkshopController{DB: db}
}

type finishWorkshopRequest struct {
	IsFinished    bool     `json:"is_finished"`
	CoachRating   *float64 `json:"coach_rating"`
	CoachFeedback *string  `json:"coach_feedback"`
}

// POST /api/u/activities/:id/finish-workshop
func (ctrl *WorkshopController) FinishWorkshop(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de actividad inválido")
	}

	var req finishWorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}

	res, err := workshopService.FinishWorkshop(ctrl.DB, activityID, callerID, workshopService.FinishInput{
		IsFinished: req.IsFinished,
		Rating:     req.CoachRating,
		Feedback:   req.CoachFeedback,
	})
	if err != nil {
		return ctrl.mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Taller finalizado correctamente",
		"version": res.Version,
	})
}

// GET /api/u/activities/:id/check-coach-survey
func (ctrl *WorkshopController) CheckCoachSurvey(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de actividad inválido")
	}

	check, err := workshopService.HasCompletedSurvey(ctrl.DB, activityID, callerID)
	if err != nil {
		return ctrl.mapServiceError(c, err)
	}

	var currentVersion interface{}
	if check.CurrentVersion != workshopService.VersionNone {
		currentVersion = check.CurrentVersion
	}
	var survey interface{}
	if check.Survey != nil {
		survey = check.Survey
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"hasSurvey":      check.HasSurvey,
		"survey":         survey,
		"currentVersion": currentVersion,
	})
}

func (ctrl *WorkshopController) mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, workshopService.ErrActivityNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Actividad no encontrada")
	case errors.Is(err, workshopService.ErrNotAWorkshop):
		return helper.Error(c, fiber.StatusBadRequest, "La actividad no es un taller")
	case errors.Is(err, workshopService.ErrNotActivityCoach):
		return helper.Error(c, fiber.StatusForbidden, "No eres el coach de esta actividad")
	case errors.Is(err, workshopService.ErrInvalidRating):
		return helper.Error(c, fiber.StatusBadRequest, "La calificación debe estar entre 1 y 5")
	case errors.Is(err, workshopService.ErrSurveySave):
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar la evaluación")
	default:
		log.Printf("[ERROR] workshop: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
}
