package controller

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachfit_backend/internals/configs"
	"coachfit_backend/internals/constants"
	authModel "coachfit_backend/internals/features/users/auth/model"
	authService "coachfit_backend/internals/features/users/auth/service"
	userDTO "coachfit_backend/internals/features/users/user/dto"
	userModel "coachfit_backend/internals/features/users/user/model"
	helper "coachfit_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type registerRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role" validate:"required,oneof=coach client"`
}

type loginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var cnt int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("lower(user_email) = ?", email).
		Count(&cnt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
	if cnt > 0 {
		return helper.Error(c, fiber.StatusConflict, "El email ya está registrado")
	}

	hash, err := authService.HashPassword(req.UserPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: hash,
		UserRole:     req.UserRole,
		UserIsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la cuenta")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cuenta creada", userDTO.ToUserResponse(user))
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.
		Where("lower(user_email) = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Tu cuenta está desactivada")
	}
	if !authService.CheckPassword(user.UserPassword, req.UserPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	token, err := authService.GenerateAccessToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return helper.Success(c, "Sesión iniciada", fiber.Map{
		"access_token": token,
		"user":         userDTO.ToUserResponse(user),
	})
}

// POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Token de Google inválido")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo decodificar el token de Google")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	var user userModel.UserModel
	err = ctrl.DB.Where("lower(user_email) = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// primera vez con Google -> cuenta de cliente
		user = userModel.UserModel{
			UserName:     claimSet.Name,
			UserEmail:    email,
			UserRole:     constants.RoleClient,
			UserIsActive: true,
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la cuenta")
		}
	} else if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Tu cuenta está desactivada")
	}

	token, err := authService.GenerateAccessToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return helper.Success(c, "Sesión iniciada", fiber.Map{
		"access_token": token,
		"user":         userDTO.ToUserResponse(user),
	})
}

// POST /api/auth/logout  (requiere sesión)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.Error(c, fiber.StatusUnauthorized, "No autenticado")
	}
	token := fields[1]

	entry := authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: authService.TokenExpiry(token),
	}
	// token ya en blacklist cuenta como logout exitoso
	if err := ctrl.DB.Create(&entry).Error; err != nil && !strings.Contains(strings.ToLower(err.Error()), "unique") {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo cerrar la sesión")
	}

	return helper.Success(c, "Sesión cerrada", nil)
}
