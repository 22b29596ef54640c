package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachfit_backend/internals/constants"
	userDTO "coachfit_backend/internals/features/users/user/dto"
	userModel "coachfit_backend/internals/features/users/user/model"
	helper "coachfit_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/u/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return helper.Success(c, "OK", userDTO.ToUserResponse(user))
}

// PUT /api/u/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = strings.TrimSpace(*req.UserName)
	}
	if req.UserBio != nil {
		updates["user_bio"] = strings.TrimSpace(*req.UserBio)
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el perfil")
	}

	return helper.Success(c, "Perfil actualizado", userDTO.ToUserResponse(user))
}

// GET /api/public/coaches/:id
func (ctrl *UserController) GetCoachByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var user userModel.UserModel
	if err := ctrl.DB.
		Where("user_id = ? AND user_role = ? AND user_is_active = ?", id, constants.RoleCoach, true).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Coach no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return helper.Success(c, "OK", userDTO.ToPublicCoachResponse(user))
}
