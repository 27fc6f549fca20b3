package store

import (
	"time"

	"hotel-reservation-backend/internal/hotel"
	"hotel-reservation-backend/internal/model"
)

// NewRoomEvent converts an engine event into its ledger row.
func NewRoomEvent(e hotel.Event) model.RoomEvent {
	row := model.RoomEvent{
		ID:                e.ID.String(),
		Kind:              string(e.Kind),
		Hotel:             e.Hotel,
		RoomNumber:        e.RoomNumber,
		ReservationNumber: e.ReservationNumber,
		PayerID:           e.PayerID,
		GuestName:         e.GuestName,
		OccurredAt:        e.OccurredAt,
	}
	row.StartDate = optionalTime(e.StartDate)
	row.EndDate = optionalTime(e.EndDate)
	return row
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
