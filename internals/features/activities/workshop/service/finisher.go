package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachfit_backend/internals/constants"
	activityModel "coachfit_backend/internals/features/activities/activity/model"
	enrollmentModel "coachfit_backend/internals/features/activities/enrollment/model"
	surveyModel "coachfit_backend/internals/features/activities/survey/model"
	workshopModel "coachfit_backend/internals/features/activities/workshop/model"
)

type FinishInput struct {
	IsFinished bool
	Rating     *float64
	Feedback   *string
}

type FinishResult struct {
	Version int
}

// FinishWorkshop cierra la corrida actual de un taller y, si viene
// calificación o comentario, registra/actualiza la auto-evaluación del
// coach para la versión activa.
//
// Todo corre en una sola transacción: un cierre con su evaluación nunca
// queda aplicado a medias. El UPDATE condicionado sobre
// activity_is_finished y el índice único (activity, number) garantizan
// que dos cierres simultáneos del mismo taller produzcan una sola versión.
func FinishWorkshop(db *gorm.DB, activityID, callerID uuid.UUID, in FinishInput) (FinishResult, error) {
	var res FinishResult

	err := db.Transaction(func(tx *gorm.DB) error {
		activity, err := loadOwnedWorkshop(tx, activityID, callerID)
		if err != nil {
			return err
		}

		// los guards de existencia/tipo/ownership van primero: un caller
		// ajeno recibe Forbidden sin importar qué traiga el body
		if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
			return ErrInvalidRating
		}

		now := time.Now()
		activeVersion := VersionNone

		if in.IsFinished && !activity.ActivityIsFinished {
			// transición real de cierre; el WHERE sobre el flag evita que un
			// doble submit del mismo coach agregue dos versiones
			upd := tx.Model(&activityModel.ActivityModel{}).
				Where("activity_id = ? AND activity_is_finished = ?", activityID, false).
				Updates(map[string]interface{}{
					"activity_is_finished": true,
					"activity_finished_at": now,
				})
			if upd.Error != nil {
				return fmt.Errorf("cerrar taller: %w", upd.Error)
			}
			if upd.RowsAffected == 1 {
				cur, err := CurrentVersion(tx, activityID)
				if err != nil {
					return fmt.Errorf("leer versiones: %w", err)
				}
				version := workshopModel.WorkshopVersionModel{
					WorkshopVersionActivityID:    activityID,
					WorkshopVersionNumber:        cur + 1,
					WorkshopVersionStartedLabel:  DateLabel(activity.ActivityCreatedAt),
					WorkshopVersionFinishedLabel: DateLabel(now),
				}
				if err := tx.Create(&version).Error; err != nil {
					return fmt.Errorf("registrar versión: %w", err)
				}
				activeVersion = version.WorkshopVersionNumber
			}
		}

		if activeVersion == VersionNone {
			// sin transición (o la perdió contra una request concurrente):
			// la versión activa es la última registrada
			cur, err := CurrentVersion(tx, activityID)
			if err != nil {
				return fmt.Errorf("leer versiones: %w", err)
			}
			if cur == VersionNone && activity.ActivityIsFinished {
				// taller marcado como cerrado sin versiones: recuperación de
				// estado inconsistente, no un camino normal
				cur = 1
			}
			activeVersion = cur

			if in.IsFinished != activity.ActivityIsFinished {
				updates := map[string]interface{}{"activity_is_finished": in.IsFinished}
				if in.IsFinished {
					updates["activity_finished_at"] = now
				} else {
					updates["activity_finished_at"] = nil
				}
				if err := tx.Model(&activityModel.ActivityModel{}).
					Where("activity_id = ?", activityID).
					Updates(updates).Error; err != nil {
					return fmt.Errorf("actualizar taller: %w", err)
				}
			}
		}

		// sin versión activa no hay nada que evaluar: un taller que nunca
		// se cerró no acumula encuestas sueltas
		if activeVersion != VersionNone &&
			(in.Rating != nil || (in.Feedback != nil && strings.TrimSpace(*in.Feedback) != "")) {
			if err := upsertSurvey(tx, activityID, callerID, activeVersion, in); err != nil {
				return err
			}
		}

		res.Version = activeVersion
		return nil
	})

	return res, err
}

// upsertSurvey actualiza en el lugar la evaluación existente para
// (actividad, coach, versión) o crea una nueva. Nunca duplica filas para la
// misma versión.
func upsertSurvey(tx *gorm.DB, activityID, raterID uuid.UUID, version int, in FinishInput) error {
	var rows []surveyModel.ActivitySurveyModel
	if err := tx.
		Where("activity_survey_activity_id = ? AND activity_survey_rater_id = ?", activityID, raterID).
		Find(&rows).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrSurveySave, err)
	}

	for i := range rows {
		v, ok := NormalizeStoredVersion(rows[i].ActivitySurveyWorkshopVersion)
		if !ok || v != version {
			continue
		}
		updates := map[string]interface{}{}
		if in.Rating != nil {
			updates["activity_survey_rating"] = *in.Rating
		}
		if in.Feedback != nil {
			updates["activity_survey_comments"] = strings.TrimSpace(*in.Feedback)
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&rows[i]).Updates(updates).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrSurveySave, err)
		}
		return nil
	}

	// enrollment best-effort: el coach de su propio taller normalmente no
	// tiene inscripción, y su ausencia jamás bloquea la evaluación
	var enrollmentID *uuid.UUID
	var enr enrollmentModel.EnrollmentModel
	if err := tx.
		Where("enrollment_activity_id = ? AND enrollment_user_id = ?", activityID, raterID).
		First(&enr).Error; err == nil {
		enrollmentID = &enr.EnrollmentID
	}

	row := surveyModel.ActivitySurveyModel{
		ActivitySurveyActivityID:      activityID,
		ActivitySurveyRaterID:         raterID,
		ActivitySurveyWorkshopVersion: VersionJSON(version),
		ActivitySurveyRating:          in.Rating,
		ActivitySurveyEnrollmentID:    enrollmentID,
	}
	if in.Feedback != nil {
		f := strings.TrimSpace(*in.Feedback)
		if f != "" {
			row.ActivitySurveyComments = &f
		}
	}
	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrSurveySave, err)
	}
	return nil
}

// loadOwnedWorkshop aplica los guards compartidos: existencia, tipo workshop
// y ownership del caller.
func loadOwnedWorkshop(tx *gorm.DB, activityID, callerID uuid.UUID) (*activityModel.ActivityModel, error) {
	var activity activityModel.ActivityModel
	if err := tx.First(&activity, "activity_id = ?", activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("cargar actividad: %w", err)
	}
	if activity.ActivityType != constants.ActivityTypeWorkshop {
		return nil, ErrNotAWorkshop
	}
	if activity.ActivityCoachID != callerID {
		return nil, ErrNotActivityCoach
	}
	return &activity, nil
}
