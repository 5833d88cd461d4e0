package models

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone           string    `gorm:"type:varchar(50);not null"`
	Position        string    `gorm:"type:varchar(100);not null"`
	Experience      string    `gorm:"type:varchar(50);not null"`
	Status          string    `gorm:"type:varchar(50);not null;default:'application_sent'"`
	AssignedCompany *uuid.UUID `gorm:"type:uuid"`
	InterviewDate   *time.Time `gorm:"type:timestamp"`
	Skills          string     `gorm:"type:text;not null;default:'[]'"` // JSON array
	CreatedBy       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
}
