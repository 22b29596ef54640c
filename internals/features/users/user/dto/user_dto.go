package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "coachfit_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	UserBio  *string `json:"user_bio" validate:"omitempty,max=2000"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserBio       *string   `json:"user_bio,omitempty"`
	UserAvatarURL *string   `json:"user_avatar_url,omitempty"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

// PublicCoachResponse omite el email para perfiles públicos.
type PublicCoachResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserBio       *string   `json:"user_bio,omitempty"`
	UserAvatarURL *string   `json:"user_avatar_url,omitempty"`
}

/* =========================================================
   MAPPERS
========================================================= */

func ToUserResponse(m userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserBio:       m.UserBio,
		UserAvatarURL: m.UserAvatarURL,
		UserCreatedAt: m.UserCreatedAt,
	}
}

func ToPublicCoachResponse(m userModel.UserModel) PublicCoachResponse {
	return PublicCoachResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserBio:       m.UserBio,
		UserAvatarURL: m.UserAvatarURL,
	}
}
