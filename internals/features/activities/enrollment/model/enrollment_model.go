package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentModel struct {
	EnrollmentID         uuid.UUID      `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;primaryKey"`
	EnrollmentActivityID uuid.UUID      `json:"enrollment_activity_id" gorm:"column:enrollment_activity_id;type:uuid;not null;uniqueIndex:uq_enrollment_activity_user"`
	EnrollmentUserID     uuid.UUID      `json:"enrollment_user_id" gorm:"column:enrollment_user_id;type:uuid;not null;uniqueIndex:uq_enrollment_activity_user"`
	EnrollmentStatus     string         `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(20);not null;default:pending"`
	EnrollmentCreatedAt  time.Time      `json:"enrollment_created_at" gorm:"column:enrollment_created_at;autoCreateTime"`
	EnrollmentUpdatedAt  time.Time      `json:"enrollment_updated_at" gorm:"column:enrollment_updated_at;autoUpdateTime"`
	EnrollmentDeletedAt  gorm.DeletedAt `json:"enrollment_deleted_at,omitempty" gorm:"column:enrollment_deleted_at;index"`
}

func (EnrollmentModel) TableName() string {
	return "activity_enrollments"
}

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentID == uuid.Nil {
		m.EnrollmentID = uuid.New()
	}
	return nil
}
