package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind       string    `gorm:"type:varchar(50);not null"`
	Recipients string    `gorm:"type:text;not null"` // JSON array
	Subject    string    `gorm:"type:varchar(255);not null"`
	Body       string    `gorm:"type:text;not null"`
	Calendar   string    `gorm:"type:text"` // JSON CalendarEvent, empty when none
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts   int       `gorm:"not null;default:0"`
	LastError  string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"index"`
	SentAt     *time.Time
}
