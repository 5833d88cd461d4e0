package entities

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a hiring company
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	Location  string    `json:"location,omitempty"`
	Website   string    `json:"website,omitempty"`
	POCName   string    `json:"poc_name"`
	POCEmail  string    `json:"poc_email"`
	POCPhone  string    `json:"poc_phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompanyInput represents input for creating or replacing a company
type CompanyInput struct {
	Name     string `json:"name" binding:"required"`
	Industry string `json:"industry" binding:"required"`
	Location string `json:"location"`
	Website  string `json:"website"`
	POCName  string `json:"poc_name" binding:"required"`
	POCEmail string `json:"poc_email" binding:"required,email"`
	POCPhone string `json:"poc_phone" binding:"required"`
	Active   *bool  `json:"active"`
}
