package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CandidateStatus represents a candidate pipeline status
type CandidateStatus string

const (
	CandidateStatusApplicationSent    CandidateStatus = "application_sent"
	CandidateStatusShortlisted        CandidateStatus = "shortlisted"
	CandidateStatusInterviewScheduled CandidateStatus = "interview_scheduled"
	CandidateStatusOffer              CandidateStatus = "offer"
	CandidateStatusJoined             CandidateStatus = "joined"
	CandidateStatusHired              CandidateStatus = "hired"
	CandidateStatusRejected           CandidateStatus = "rejected"
	CandidateStatusActive             CandidateStatus = "active"
)

// ValidCandidateStatus reports whether s is a known pipeline status
func ValidCandidateStatus(s CandidateStatus) bool {
	switch s {
	case CandidateStatusApplicationSent, CandidateStatusShortlisted,
		CandidateStatusInterviewScheduled, CandidateStatusOffer,
		CandidateStatusJoined, CandidateStatusHired,
		CandidateStatusRejected, CandidateStatusActive:
		return true
	}
	return false
}

// Candidate represents a candidate profile
type Candidate struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Position        string          `json:"position"`
	Experience      string          `json:"experience"`
	Status          CandidateStatus `json:"status"`
	AssignedCompany null.String     `json:"assignedCompany,omitempty"`
	InterviewDate   null.Time       `json:"interviewDate,omitempty"`
	Skills          []string        `json:"skills"`
	CreatedBy       null.String     `json:"createdBy,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CreateCandidateInput represents input for the onboarding workflow
type CreateCandidateInput struct {
	Name            string          `json:"name" binding:"required"`
	Email           string          `json:"email" binding:"required,email"`
	Phone           string          `json:"phone" binding:"required"`
	Position        string          `json:"position" binding:"required"`
	Experience      string          `json:"experience" binding:"required"`
	Skills          []string        `json:"skills"`
	AssignedCompany string          `json:"assignedCompany" binding:"required,uuid"`
	InterviewDate   time.Time       `json:"interviewDate" binding:"required"`
	Status          CandidateStatus `json:"status"`
}

// UpdateCandidateInput represents input for a full candidate update
type UpdateCandidateInput struct {
	Name            string          `json:"name" binding:"required"`
	Email           string          `json:"email" binding:"required,email"`
	Phone           string          `json:"phone" binding:"required"`
	Position        string          `json:"position" binding:"required"`
	Experience      string          `json:"experience" binding:"required"`
	Skills          []string        `json:"skills"`
	AssignedCompany string          `json:"assignedCompany" binding:"omitempty,uuid"`
	InterviewDate   *time.Time      `json:"interviewDate"`
	Status          CandidateStatus `json:"status"`
}

// CandidateProfile is the self-scoped view returned to a logged-in candidate
type CandidateProfile struct {
	Candidate
	AssignedCompanyName string          `json:"assignedCompanyName,omitempty"`
	Creator             *CreatorSummary `json:"creator,omitempty"`
}

// CreatorSummary is the user summary embedded in a candidate profile
type CreatorSummary struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
