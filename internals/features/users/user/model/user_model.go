package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID        uuid.UUID      `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey"`
	UserName      string         `json:"user_name" gorm:"column:user_name;type:varchar(100);not null"`
	UserEmail     string         `json:"user_email" gorm:"column:user_email;type:varchar(255);not null;uniqueIndex"`
	UserPassword  string         `json:"-" gorm:"column:user_password;type:text"`
	UserRole      string         `json:"user_role" gorm:"column:user_role;type:varchar(20);not null"`
	UserBio       *string        `json:"user_bio,omitempty" gorm:"column:user_bio;type:text"`
	UserAvatarURL *string        `json:"user_avatar_url,omitempty" gorm:"column:user_avatar_url;type:text"`
	UserIsActive  bool           `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`
	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
