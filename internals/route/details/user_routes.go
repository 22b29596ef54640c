package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "coachfit_backend/internals/features/users/user/controller"
)

func UserRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	private.Get("/me", ctrl.GetMe)
	private.Put("/me", ctrl.UpdateMe)
}
