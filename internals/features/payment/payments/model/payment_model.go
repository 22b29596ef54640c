package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentModel struct {
	PaymentID           uuid.UUID  `json:"payment_id" gorm:"column:payment_id;type:uuid;primaryKey"`
	PaymentOrderID      string     `json:"payment_order_id" gorm:"column:payment_order_id;type:varchar(64);not null;uniqueIndex"`
	PaymentEnrollmentID uuid.UUID  `json:"payment_enrollment_id" gorm:"column:payment_enrollment_id;type:uuid;not null;index"`
	PaymentUserID       uuid.UUID  `json:"payment_user_id" gorm:"column:payment_user_id;type:uuid;not null;index"`
	PaymentAmount       int64      `json:"payment_amount" gorm:"column:payment_amount;not null"`
	PaymentStatus       string     `json:"payment_status" gorm:"column:payment_status;type:varchar(20);not null;default:pending"`
	PaymentPaidAt       *time.Time `json:"payment_paid_at,omitempty" gorm:"column:payment_paid_at"`
	PaymentCreatedAt    time.Time  `json:"payment_created_at" gorm:"column:payment_created_at;autoCreateTime"`
	PaymentUpdatedAt    time.Time  `json:"payment_updated_at" gorm:"column:payment_updated_at;autoUpdateTime"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	return nil
}
