package entities

import (
	"time"

	"github.com/google/uuid"
)

// InterviewType represents the interview round type
type InterviewType string

const (
	InterviewTypeTechnical  InterviewType = "Technical"
	InterviewTypeHRRound    InterviewType = "HR Round"
	InterviewTypeManagerial InterviewType = "Managerial"
	InterviewTypeOther      InterviewType = "Other"
)

// ValidInterviewType reports whether t is a known round type
func ValidInterviewType(t InterviewType) bool {
	switch t {
	case InterviewTypeTechnical, InterviewTypeHRRound, InterviewTypeManagerial, InterviewTypeOther:
		return true
	}
	return false
}

// InterviewStatus represents an interview lifecycle status.
// Independent of CandidateStatus: the two state machines are
// updated by separate operations with no enforced coupling.
type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "scheduled"
	InterviewStatusCompleted   InterviewStatus = "completed"
	InterviewStatusCancelled   InterviewStatus = "cancelled"
	InterviewStatusRescheduled InterviewStatus = "rescheduled"
)

// ValidInterviewStatus reports whether s is a known lifecycle status
func ValidInterviewStatus(s InterviewStatus) bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled, InterviewStatusRescheduled:
		return true
	}
	return false
}

// Interview represents a scheduled interview.
// CandidateName and CompanyName are snapshots taken at creation time
// and are never re-synced after a candidate or company rename.
type Interview struct {
	ID            uuid.UUID       `json:"id"`
	CandidateID   uuid.UUID       `json:"candidateId"`
	CandidateName string          `json:"candidateName"`
	CompanyID     uuid.UUID       `json:"companyId"`
	CompanyName   string          `json:"companyName"`
	Position      string          `json:"position"`
	Date          time.Time       `json:"date"`
	Time          string          `json:"time"`
	Type          InterviewType   `json:"type"`
	Status        InterviewStatus `json:"status"`
	Interviewer   string          `json:"interviewer"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CreateInterviewInput represents input for scheduling an interview
type CreateInterviewInput struct {
	CandidateID string          `json:"candidateId" binding:"required,uuid"`
	CompanyID   string          `json:"companyId" binding:"required,uuid"`
	Position    string          `json:"position" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Time        string          `json:"time" binding:"required"`
	Type        InterviewType   `json:"type" binding:"required"`
	Interviewer string          `json:"interviewer" binding:"required"`
	Status      InterviewStatus `json:"status"`
}

// UpdateInterviewInput represents input for a full interview update
type UpdateInterviewInput struct {
	Position    string          `json:"position" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Time        string          `json:"time" binding:"required"`
	Type        InterviewType   `json:"type" binding:"required"`
	Interviewer string          `json:"interviewer" binding:"required"`
	Status      InterviewStatus `json:"status"`
}

// InterviewFilter narrows interview listings
type InterviewFilter struct {
	Status InterviewStatus
	Date   string
}
