package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	surveyModel "coachfit_backend/internals/features/activities/survey/model"
)

type SurveyCheck struct {
	HasSurvey      bool
	Survey         *surveyModel.ActivitySurveyModel
	CurrentVersion int // VersionNone si el taller nunca se cerró
}

// HasCompletedSurvey responde si el coach ya tiene una evaluación completa
// (rating no nulo) para la versión ACTUAL del taller.
//
// El filtrado se hace normalizando cada fila candidata en vez de confiar en
// la igualdad nativa del store: hay filas históricas con la versión guardada
// como "2", 2 o 2.0 y todas deben contar como la versión 2.
func HasCompletedSurvey(db *gorm.DB, activityID, callerID uuid.UUID) (SurveyCheck, error) {
	var check SurveyCheck

	if _, err := loadOwnedWorkshop(db, activityID, callerID); err != nil {
		return check, err
	}

	cur, err := CurrentVersion(db, activityID)
	if err != nil {
		return check, fmt.Errorf("leer versiones: %w", err)
	}
	if cur == VersionNone {
		// nunca se cerró: no es un error, simplemente no hay nada que evaluar
		return check, nil
	}
	check.CurrentVersion = cur

	// las filas sin rating no pueden ser "completas", se descartan en el query
	var rows []surveyModel.ActivitySurveyModel
	if err := db.
		Where("activity_survey_activity_id = ? AND activity_survey_rater_id = ? AND activity_survey_rating IS NOT NULL",
			activityID, callerID).
		Find(&rows).Error; err != nil {
		return check, fmt.Errorf("leer evaluaciones: %w", err)
	}

	for i := range rows {
		if v, ok := NormalizeStoredVersion(rows[i].ActivitySurveyWorkshopVersion); ok && v == cur {
			check.HasSurvey = true
			check.Survey = &rows[i]
			return check, nil
		}
	}

	return check, nil
}
