package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "coachfit_backend/internals/middlewares/auth"
	routeDetails "coachfit_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.PublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(private, db)
	routeDetails.ActivityRoutes(private, db)
	routeDetails.EnrollmentRoutes(private, db)

	// ===================== WEBHOOKS =====================
	log.Println("[INFO] Setting up PaymentRoutes...")
	routeDetails.PaymentRoutes(app, db)
}
