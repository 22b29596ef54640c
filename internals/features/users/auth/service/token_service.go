package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"coachfit_backend/internals/configs"
	userModel "coachfit_backend/internals/features/users/user/model"
)

const accessTokenTTL = 24 * time.Hour

// GenerateAccessToken firma un JWT con id, role y name.
func GenerateAccessToken(user userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.UserID.String(),
		"role": user.UserRole,
		"name": user.UserName,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// TokenExpiry extrae el exp de un token ya validado (para la blacklist).
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return time.Now().Add(accessTokenTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(accessTokenTTL)
}
