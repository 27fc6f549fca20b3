package hotel

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names a successful state change in the chain.
type EventKind string

const (
	EventReservationCreated   EventKind = "reservation_created"
	EventReservationCancelled EventKind = "reservation_cancelled"
	EventGuestCheckedIn       EventKind = "guest_checked_in"
	EventGuestCheckedOut      EventKind = "guest_checked_out"
)

// Event describes one completed operation. Events are emitted after the
// engine state has changed and never influence it.
type Event struct {
	ID                uuid.UUID
	Kind              EventKind
	Hotel             string
	RoomNumber        int
	ReservationNumber int
	PayerID           string
	GuestName         string
	StartDate         time.Time
	EndDate           time.Time
	OccurredAt        time.Time
}

// EventSink receives events from a Chain.
type EventSink interface {
	Dispatch(e Event)
}

type discardSink struct{}

func (discardSink) Dispatch(Event) {}
