package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkshopVersionModel es una corrida cerrada de un taller. Append-only:
// las filas nunca se editan ni se borran, y el número es 1-based y
// estrictamente creciente por actividad (índice único compuesto).
type WorkshopVersionModel struct {
	WorkshopVersionID            uuid.UUID `json:"workshop_version_id" gorm:"column:workshop_version_id;type:uuid;primaryKey"`
	WorkshopVersionActivityID    uuid.UUID `json:"workshop_version_activity_id" gorm:"column:workshop_version_activity_id;type:uuid;not null;uniqueIndex:uq_workshop_version_per_activity"`
	WorkshopVersionNumber        int       `json:"workshop_version_number" gorm:"column:workshop_version_number;not null;uniqueIndex:uq_workshop_version_per_activity"`
	WorkshopVersionStartedLabel  string    `json:"workshop_version_started_label" gorm:"column:workshop_version_started_label;type:varchar(10);not null"`
	WorkshopVersionFinishedLabel string    `json:"workshop_version_finished_label" gorm:"column:workshop_version_finished_label;type:varchar(10);not null"`
	WorkshopVersionCreatedAt     time.Time `json:"workshop_version_created_at" gorm:"column:workshop_version_created_at;autoCreateTime"`
}

func (WorkshopVersionModel) TableName() string {
	return "activity_workshop_versions"
}

func (m *WorkshopVersionModel) BeforeCreate(tx *gorm.DB) error {
	if m.WorkshopVersionID == uuid.Nil {
		m.WorkshopVersionID = uuid.New()
	}
	return nil
}
