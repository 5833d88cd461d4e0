package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind identifies the email being sent
type NotificationKind string

const (
	NotificationKindOnboarding       NotificationKind = "candidate_onboarding"
	NotificationKindAssignment       NotificationKind = "candidate_assignment"
	NotificationKindInterviewInvite  NotificationKind = "interview_invite"
	NotificationKindPasswordResetOTP NotificationKind = "password_reset_otp"
)

// NotificationStatus represents outbox delivery state
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// CalendarEvent is the payload rendered into an ICS attachment at send time
type CalendarEvent struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Start          time.Time `json:"start"`
	DurationHours  int       `json:"durationHours"`
	OrganizerName  string    `json:"organizerName"`
	OrganizerEmail string    `json:"organizerEmail"`
	AttendeeName   string    `json:"attendeeName"`
	AttendeeEmail  string    `json:"attendeeEmail"`
}

// Notification is an outbox row: an email intent persisted
// transactionally with the write that caused it, delivered
// asynchronously with bounded retry (at-least-once).
type Notification struct {
	ID        uuid.UUID          `json:"id"`
	Kind      NotificationKind   `json:"kind"`
	To        []string           `json:"to"`
	Subject   string             `json:"subject"`
	Body      string             `json:"body"`
	Calendar  *CalendarEvent     `json:"calendar,omitempty"`
	Status    NotificationStatus `json:"status"`
	Attempts  int                `json:"attempts"`
	LastError string             `json:"lastError,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	SentAt    *time.Time         `json:"sentAt,omitempty"`
}
