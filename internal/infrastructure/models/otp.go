package models

import "time"

type Otp struct {
	Email     string    `gorm:"type:varchar(255);primaryKey"`
	Code      string    `gorm:"type:varchar(10);not null"`
	ExpiresAt time.Time `gorm:"type:timestamp;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Otp) TableName() string {
	return "otps"
}
