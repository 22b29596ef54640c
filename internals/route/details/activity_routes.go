package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "coachfit_backend/internals/features/activities/activity/controller"
	surveyController "coachfit_backend/internals/features/activities/survey/controller"
	workshopController "coachfit_backend/internals/features/activities/workshop/controller"
)

func ActivityRoutes(private fiber.Router, db *gorm.DB) {
	activityCtrl := activityController.NewActivityController(db)
	workshopCtrl := workshopController.NewWorkshopController(db)
	surveyCtrl := surveyController.NewSurveyController(db)

	private.Post("/activities", activityCtrl.Create)
	private.Get("/activities", activityCtrl.ListMine)
	private.Put("/activities/:id", activityCtrl.Update)
	private.Delete("/activities/:id", activityCtrl.Delete)
	private.Post("/activities/:id/image", activityCtrl.UploadImage)

	// cierre de taller + autoevaluación del coach
	private.Post("/activities/:id/finish-workshop", workshopCtrl.FinishWorkshop)
	private.Get("/activities/:id/check-coach-survey", workshopCtrl.CheckCoachSurvey)
	private.Get("/activities/:id/surveys", surveyCtrl.ListMine)
}
