package model

import (
	"time"

	"gorm.io/gorm"
)

type TokenBlacklist struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Token     string         `json:"token" gorm:"type:text;not null;unique"`
	ExpiredAt time.Time      `json:"expired_at"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
