package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"coachfit_backend/internals/configs"
	"coachfit_backend/internals/constants"
	activityDTO "coachfit_backend/internals/features/activities/activity/dto"
	activityModel "coachfit_backend/internals/features/activities/activity/model"
	helper "coachfit_backend/internals/helpers"
)

type ActivityController struct {
	DB        *gorm.DB
	UploadDir string
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{
		DB:        db,
		UploadDir: configs.GetEnv("UPLOAD_DIR", "./uploads"),
	}
}

// POST /api/u/activities  (solo coach)
func (ctrl *ActivityController) Create(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if helper.GetUserRoleFromToken(c) != constants.RoleCoach {
		return helper.Error(c, fiber.StatusForbidden, "Solo un coach puede publicar actividades")
	}

	var req activityDTO.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.ActivityTitle = strings.TrimSpace(req.ActivityTitle)
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(coachID)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx,
			helper.GenerateSlug(m.ActivityTitle),
			"activities", "activity_slug", "activity_deleted_at")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el slug")
		}
		m.ActivitySlug = slug

		if err := tx.Create(&m).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "El slug ya está en uso")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la actividad")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Actividad creada", activityDTO.ToActivityResponse(m))
}

// PUT /api/u/activities/:id
func (ctrl *ActivityController) Update(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	activity, err := ctrl.findOwned(c, coachID)
	if err != nil {
		return err
	}

	var req activityDTO.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.ActivityTitle != nil {
		updates["activity_title"] = strings.TrimSpace(*req.ActivityTitle)
	}
	if req.ActivityDescription != nil {
		updates["activity_description"] = *req.ActivityDescription
	}
	if req.ActivityPrice != nil {
		updates["activity_price"] = *req.ActivityPrice
	}
	if req.ActivityTags != nil {
		updates["activity_tags"] = pq.StringArray(req.ActivityTags)
	}
	if req.ActivityIsPublished != nil {
		updates["activity_is_published"] = *req.ActivityIsPublished
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	if err := ctrl.DB.Model(activity).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la actividad")
	}

	return helper.Success(c, "Actividad actualizada", activityDTO.ToActivityResponse(*activity))
}

// DELETE /api/u/activities/:id  (soft delete)
func (ctrl *ActivityController) Delete(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	activity, err := ctrl.findOwned(c, coachID)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(activity).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la actividad")
	}

	return helper.Success(c, "Actividad eliminada", nil)
}

// GET /api/u/activities  (las del coach autenticado)
func (ctrl *ActivityController) ListMine(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var activities []activityModel.ActivityModel
	if err := ctrl.DB.
		Where("activity_coach_id = ?", coachID).
		Order("activity_created_at DESC").
		Find(&activities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return helper.Success(c, "OK", activityDTO.ToActivityResponses(activities))
}

// GET /api/public/activities?type=&tag=&page=&per_page=
func (ctrl *ActivityController) Browse(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&activityModel.ActivityModel{}).
		Where("activity_is_published = ?", true)

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		if !constants.IsValidActivityType(t) {
			return helper.Error(c, fiber.StatusBadRequest, "Tipo de actividad inválido")
		}
		q = q.Where("activity_type = ?", t)
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("? = ANY(activity_tags)", tag)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	var activities []activityModel.ActivityModel
	if err := q.
		Order("activity_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&activities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	// cacheable para el listado público
	c.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", 60, 120))

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       activityDTO.ToActivityResponses(activities),
		"pagination": helper.BuildPagination(total, paging, len(activities)),
	})
}

// GET /api/public/activities/:slug
func (ctrl *ActivityController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Slug inválido")
	}

	var activity activityModel.ActivityModel
	if err := ctrl.DB.
		Where("activity_slug = ? AND activity_is_published = ?", slug, true).
		First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Actividad no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return helper.Success(c, "OK", activityDTO.ToActivityResponse(activity))
}

// POST /api/u/activities/:id/image  (multipart "image")
func (ctrl *ActivityController) UploadImage(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	activity, err := ctrl.findOwned(c, coachID)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Falta el archivo de imagen")
	}

	img, err := helper.DecodeUploadedImage(fileHeader)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Imagen inválida o formato no soportado")
	}

	data, err := helper.ConvertToWebP(img)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la imagen")
	}

	relPath := helper.GenerateUniqueFilename("activities", fileHeader.Filename)
	publicURL, err := helper.SaveWebPImage(ctrl.UploadDir, configs.PublicAssetBase, relPath, data)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo guardar la imagen")
	}

	if err := ctrl.DB.Model(activity).Update("activity_image_url", publicURL).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la actividad")
	}

	return helper.Success(c, "Imagen actualizada", fiber.Map{"activity_image_url": publicURL})
}

// findOwned carga la actividad del path param y verifica ownership.
// Devuelve fiber.Error para que el ErrorHandler central arme la respuesta.
func (ctrl *ActivityController) findOwned(c *fiber.Ctx, coachID uuid.UUID) (*activityModel.ActivityModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var activity activityModel.ActivityModel
	if err := ctrl.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error interno del servidor")
	}
	if activity.ActivityCoachID != coachID {
		return nil, fiber.NewError(fiber.StatusForbidden, "No eres el coach de esta actividad")
	}
	return &activity, nil
}
