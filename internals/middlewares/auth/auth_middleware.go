package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"coachfit_backend/internals/configs"
	authModel "coachfit_backend/internals/features/users/auth/model"
)

// Webhooks públicos que se saltan auth
var skipPaths = map[string]struct{}{
	"/api/payments/notification": {},
}

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Skip para webhooks
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		// 2) Authorization header (o cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 3) Blacklist (una vez por request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Sesión cerrada, vuelve a iniciar sesión")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error al verificar blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Error interno del servidor")
			}
			c.Locals("token_checked", true)
		}

		// 4) Parse + verificación de firma
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vacío")
			return fiber.NewError(fiber.StatusInternalServerError, "Error interno del servidor")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
		}

		// 5) Expiración
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expirado")
		}

		// 6) user_id + usuario activo
		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sin usuario válido")
		}
		c.Locals("user_id", userID.String())

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Usuario no encontrado")
			}
			return fiber.NewError(fiber.StatusForbidden, "Tu cuenta está desactivada")
		}

		// 7) resto de claims a Locals
		storeBasicClaimsToLocals(c, claims)

		return c.Next()
	}
}
