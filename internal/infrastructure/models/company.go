package models

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Industry  string    `gorm:"type:varchar(100);not null"`
	Location  string    `gorm:"type:varchar(255)"`
	Website   string    `gorm:"type:varchar(255)"`
	POCName   string    `gorm:"column:poc_name;type:varchar(100);not null"`
	POCEmail  string    `gorm:"column:poc_email;type:varchar(255);not null"`
	POCPhone  string    `gorm:"column:poc_phone;type:varchar(50);not null"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
