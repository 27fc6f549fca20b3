package domain

import (
	"fmt"
	"time"
)

// Reservation is an immutable booking of one room for a half-open date range
// [Start, End). It refers to its room by number; the hotel owns the room.
type Reservation struct {
	number     int
	start      time.Time
	end        time.Time
	payer      *ReserverPayer
	roomNumber int
}

// NewReservation validates the dates and references. Dates are normalised to
// calendar days.
func NewReservation(number int, start, end time.Time, payer *ReserverPayer, roomNumber int) (Reservation, error) {
	if number <= 0 {
		return Reservation{}, fmt.Errorf("%w: reservation number must be positive", ErrInvalidArgument)
	}
	if err := ValidateRange(start, end); err != nil {
		return Reservation{}, err
	}
	start, end = Day(start), Day(end)
	if !end.After(start) {
		return Reservation{}, fmt.Errorf("%w: end date must be after start date", ErrInvalidArgument)
	}
	if payer == nil {
		return Reservation{}, fmt.Errorf("%w: payer cannot be empty", ErrInvalidArgument)
	}
	if roomNumber <= 0 {
		return Reservation{}, fmt.Errorf("%w: room cannot be empty", ErrInvalidArgument)
	}
	return Reservation{
		number:     number,
		start:      start,
		end:        end,
		payer:      payer,
		roomNumber: roomNumber,
	}, nil
}

func (r Reservation) Number() int           { return r.number }
func (r Reservation) Start() time.Time      { return r.start }
func (r Reservation) End() time.Time        { return r.end }
func (r Reservation) Payer() *ReserverPayer { return r.payer }
func (r Reservation) RoomNumber() int       { return r.roomNumber }

// Nights is the length of the stay in days.
func (r Reservation) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// OverlapsRange reports whether the reservation collides with [start, end).
func (r Reservation) OverlapsRange(start, end time.Time) bool {
	return Overlaps(start, end, r.start, r.end)
}
