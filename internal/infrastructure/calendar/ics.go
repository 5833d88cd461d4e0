package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
)

// ICSMIMEType is the content type for calendar attachments
const ICSMIMEType = "text/calendar; method=REQUEST"

// BuildInvite renders a calendar event into an ICS REQUEST payload
func BuildInvite(event *entities.CalendarEvent) ([]byte, error) {
	duration := time.Duration(event.DurationHours) * time.Hour
	if duration <= 0 {
		duration = time.Hour
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)

	e := cal.AddEvent(uuid.New().String())
	e.SetDtStampTime(time.Now().UTC())
	e.SetStartAt(event.Start.UTC())
	e.SetEndAt(event.Start.Add(duration).UTC())
	e.SetSummary(event.Title)
	e.SetDescription(event.Description)
	e.SetLocation(event.Location)
	e.SetStatus(ics.ObjectStatusConfirmed)
	e.SetOrganizer("mailto:"+event.OrganizerEmail, ics.WithCN(event.OrganizerName))
	e.AddAttendee(event.AttendeeEmail,
		ics.CalendarUserTypeIndividual,
		ics.ParticipationStatusNeedsAction,
		ics.ParticipationRoleReqParticipant,
		ics.WithCN(event.AttendeeName),
	)

	return []byte(cal.Serialize()), nil
}
