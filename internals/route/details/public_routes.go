package details

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"gorm.io/gorm"

	activityController "coachfit_backend/internals/features/activities/activity/controller"
	userController "coachfit_backend/internals/features/users/user/controller"
)

// PublicRoutes monta el catálogo sin autenticación. Las listas llevan
// un cache corto en memoria porque son las rutas más golpeadas.
func PublicRoutes(public fiber.Router, db *gorm.DB) {
	activityCtrl := activityController.NewActivityController(db)
	userCtrl := userController.NewUserController(db)

	listCache := cache.New(cache.Config{
		Expiration:   30 * time.Second,
		CacheControl: true,
	})

	public.Get("/activities", listCache, activityCtrl.Browse)
	public.Get("/activities/:slug", activityCtrl.GetBySlug)
	public.Get("/coaches/:id", userCtrl.GetCoachByID)
}
