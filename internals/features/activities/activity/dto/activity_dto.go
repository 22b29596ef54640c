package dto

import (
	"time"

	"github.com/google/uuid"

	activityModel "coachfit_backend/internals/features/activities/activity/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateActivityRequest struct {
	ActivityType        string   `json:"activity_type" validate:"required,oneof=workshop program document"`
	ActivityTitle       string   `json:"activity_title" validate:"required,min=3,max=200"`
	ActivityDescription *string  `json:"activity_description" validate:"omitempty,max=10000"`
	ActivityPrice       *int64   `json:"activity_price" validate:"omitempty,gte=0"`
	ActivityTags        []string `json:"activity_tags" validate:"omitempty,max=10,dive,min=1,max=40"`
	ActivityIsPublished *bool    `json:"activity_is_published" validate:"omitempty"`
}

type UpdateActivityRequest struct {
	ActivityTitle       *string  `json:"activity_title" validate:"omitempty,min=3,max=200"`
	ActivityDescription *string  `json:"activity_description" validate:"omitempty,max=10000"`
	ActivityPrice       *int64   `json:"activity_price" validate:"omitempty,gte=0"`
	ActivityTags        []string `json:"activity_tags" validate:"omitempty,max=10,dive,min=1,max=40"`
	ActivityIsPublished *bool    `json:"activity_is_published" validate:"omitempty"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ActivityResponse struct {
	ActivityID          uuid.UUID  `json:"activity_id"`
	ActivityCoachID     uuid.UUID  `json:"activity_coach_id"`
	ActivityType        string     `json:"activity_type"`
	ActivityTitle       string     `json:"activity_title"`
	ActivitySlug        string     `json:"activity_slug"`
	ActivityDescription *string    `json:"activity_description,omitempty"`
	ActivityPrice       int64      `json:"activity_price"`
	ActivityTags        []string   `json:"activity_tags,omitempty"`
	ActivityImageURL    *string    `json:"activity_image_url,omitempty"`
	ActivityIsPublished bool       `json:"activity_is_published"`
	ActivityIsFinished  bool       `json:"activity_is_finished"`
	ActivityFinishedAt  *time.Time `json:"activity_finished_at,omitempty"`
	ActivityCreatedAt   time.Time  `json:"activity_created_at"`
}

/* =========================================================
   MAPPERS
========================================================= */

func (r CreateActivityRequest) ToModel(coachID uuid.UUID) activityModel.ActivityModel {
	m := activityModel.ActivityModel{
		ActivityCoachID:     coachID,
		ActivityType:        r.ActivityType,
		ActivityTitle:       r.ActivityTitle,
		ActivityDescription: r.ActivityDescription,
		ActivityTags:        r.ActivityTags,
	}
	if r.ActivityPrice != nil {
		m.ActivityPrice = *r.ActivityPrice
	}
	if r.ActivityIsPublished != nil {
		m.ActivityIsPublished = *r.ActivityIsPublished
	}
	return m
}

func ToActivityResponse(m activityModel.ActivityModel) ActivityResponse {
	return ActivityResponse{
		ActivityID:          m.ActivityID,
		ActivityCoachID:     m.ActivityCoachID,
		ActivityType:        m.ActivityType,
		ActivityTitle:       m.ActivityTitle,
		ActivitySlug:        m.ActivitySlug,
		ActivityDescription: m.ActivityDescription,
		ActivityPrice:       m.ActivityPrice,
		ActivityTags:        m.ActivityTags,
		ActivityImageURL:    m.ActivityImageURL,
		ActivityIsPublished: m.ActivityIsPublished,
		ActivityIsFinished:  m.ActivityIsFinished,
		ActivityFinishedAt:  m.ActivityFinishedAt,
		ActivityCreatedAt:   m.ActivityCreatedAt,
	}
}

func ToActivityResponses(ms []activityModel.ActivityModel) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToActivityResponse(m))
	}
	return out
}
