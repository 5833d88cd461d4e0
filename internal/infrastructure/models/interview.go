package models

import (
	"time"

	"github.com/google/uuid"
)

type Interview struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CandidateID   uuid.UUID `gorm:"type:uuid;not null"`
	CandidateName string    `gorm:"type:varchar(100);not null"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null"`
	CompanyName   string    `gorm:"type:varchar(100);not null"`
	Position      string    `gorm:"type:varchar(100);not null"`
	Date          time.Time `gorm:"type:timestamp;not null"`
	Time          string    `gorm:"type:varchar(20);not null"`
	Type          string    `gorm:"type:varchar(50);not null"`
	Status        string    `gorm:"type:varchar(50);not null;default:'scheduled'"`
	Interviewer   string    `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time `gorm:"index;<-:create"`
}
