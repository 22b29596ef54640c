package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ActivityModel struct {
	ActivityID          uuid.UUID      `json:"activity_id" gorm:"column:activity_id;type:uuid;primaryKey"`
	ActivityCoachID     uuid.UUID      `json:"activity_coach_id" gorm:"column:activity_coach_id;type:uuid;not null;index"`
	ActivityType        string         `json:"activity_type" gorm:"column:activity_type;type:varchar(20);not null"`
	ActivityTitle       string         `json:"activity_title" gorm:"column:activity_title;type:varchar(200);not null"`
	ActivitySlug        string         `json:"activity_slug" gorm:"column:activity_slug;type:varchar(160);not null;uniqueIndex"`
	ActivityDescription *string        `json:"activity_description,omitempty" gorm:"column:activity_description;type:text"`
	ActivityPrice       int64          `json:"activity_price" gorm:"column:activity_price;not null;default:0"`
	ActivityTags        pq.StringArray `json:"activity_tags,omitempty" gorm:"column:activity_tags;type:text[]"`
	ActivityImageURL    *string        `json:"activity_image_url,omitempty" gorm:"column:activity_image_url;type:text"`
	ActivityIsPublished bool           `json:"activity_is_published" gorm:"column:activity_is_published;not null;default:false"`
	ActivityIsFinished  bool           `json:"activity_is_finished" gorm:"column:activity_is_finished;not null;default:false"`
	ActivityFinishedAt  *time.Time     `json:"activity_finished_at,omitempty" gorm:"column:activity_finished_at"`
	ActivityCreatedAt   time.Time      `json:"activity_created_at" gorm:"column:activity_created_at;autoCreateTime"`
	ActivityUpdatedAt   time.Time      `json:"activity_updated_at" gorm:"column:activity_updated_at;autoUpdateTime"`
	ActivityDeletedAt   gorm.DeletedAt `json:"activity_deleted_at,omitempty" gorm:"column:activity_deleted_at;index"`
}

func (ActivityModel) TableName() string {
	return "activities"
}

func (m *ActivityModel) BeforeCreate(tx *gorm.DB) error {
	if m.ActivityID == uuid.Nil {
		m.ActivityID = uuid.New()
	}
	return nil
}
