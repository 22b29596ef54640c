package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "coachfit_backend/internals/features/activities/enrollment/controller"
)

func EnrollmentRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	private.Post("/activities/:id/enroll", ctrl.Enroll)
	private.Get("/activities/:id/enrollees", ctrl.ListEnrollees)
	private.Get("/enrollments", ctrl.ListMine)
}
