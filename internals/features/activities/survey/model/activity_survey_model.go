package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivitySurveyModel es la auto-evaluación del coach para una versión de su taller.
//
// activity_survey_workshop_version queda en jsonb a propósito: las filas
// históricas traen la versión como número o como string ("2", 2, 2.0), así
// que la comparación siempre pasa por el codec de versiones.
type ActivitySurveyModel struct {
	ActivitySurveyID              uuid.UUID      `json:"activity_survey_id" gorm:"column:activity_survey_id;type:uuid;primaryKey"`
	ActivitySurveyActivityID      uuid.UUID      `json:"activity_survey_activity_id" gorm:"column:activity_survey_activity_id;type:uuid;not null;index"`
	ActivitySurveyRaterID         uuid.UUID      `json:"activity_survey_rater_id" gorm:"column:activity_survey_rater_id;type:uuid;not null;index"`
	ActivitySurveyWorkshopVersion datatypes.JSON `json:"activity_survey_workshop_version" gorm:"column:activity_survey_workshop_version"`
	ActivitySurveyRating          *float64       `json:"activity_survey_rating" gorm:"column:activity_survey_rating;type:numeric"`
	ActivitySurveyComments        *string        `json:"activity_survey_comments,omitempty" gorm:"column:activity_survey_comments;type:text"`
	ActivitySurveyEnrollmentID    *uuid.UUID     `json:"activity_survey_enrollment_id,omitempty" gorm:"column:activity_survey_enrollment_id;type:uuid"`
	ActivitySurveyCreatedAt       time.Time      `json:"activity_survey_created_at" gorm:"column:activity_survey_created_at;autoCreateTime"`
	ActivitySurveyUpdatedAt       time.Time      `json:"activity_survey_updated_at" gorm:"column:activity_survey_updated_at;autoUpdateTime"`
}

func (ActivitySurveyModel) TableName() string {
	return "activity_surveys"
}

func (m *ActivitySurveyModel) BeforeCreate(tx *gorm.DB) error {
	if m.ActivitySurveyID == uuid.Nil {
		m.ActivitySurveyID = uuid.New()
	}
	return nil
}
