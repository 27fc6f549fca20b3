package domain

import (
	"fmt"
)

// RoomState is the lifecycle state of a room.
type RoomState string

const (
	StateFree     RoomState = "FREE"
	StateReserved RoomState = "RESERVED"
	StateOccupied RoomState = "OCCUPIED"
)

// Room is a unit of static hotel inventory. It starts FREE and only changes
// through MakeReservation, CancelReservation, CheckIn and CheckOut. A failed
// transition leaves the room untouched.
//
// Room has no locking of its own; the owning Hotel serialises access.
type Room struct {
	number   int
	roomType RoomType
	state    RoomState
	occupant *Guest
}

// NewRoom creates a FREE room with no occupant.
func NewRoom(number int, roomType RoomType) (*Room, error) {
	if number <= 0 {
		return nil, fmt.Errorf("%w: room number must be positive", ErrInvalidArgument)
	}
	if !roomType.Kind.Valid() {
		return nil, fmt.Errorf("%w: room type cannot be empty", ErrInvalidArgument)
	}
	return &Room{number: number, roomType: roomType, state: StateFree}, nil
}

func (r *Room) Number() int      { return r.number }
func (r *Room) Type() RoomType   { return r.roomType }
func (r *Room) State() RoomState { return r.state }
func (r *Room) Occupant() *Guest { return r.occupant }
func (r *Room) IsFree() bool     { return r.state == StateFree }

// MakeReservation moves the room from FREE to RESERVED.
func (r *Room) MakeReservation() error {
	if r.state != StateFree {
		return r.transitionError("is not free", "make reservation")
	}
	r.state = StateReserved
	return nil
}

// CancelReservation moves the room from RESERVED back to FREE.
func (r *Room) CancelReservation() error {
	if r.state != StateReserved {
		return r.transitionError("is not reserved", "cancel reservation")
	}
	r.state = StateFree
	return nil
}

// CheckIn moves the room from RESERVED to OCCUPIED and records the guest.
func (r *Room) CheckIn(guest *Guest) error {
	if r.state != StateReserved {
		return r.transitionError("must be reserved", "check in")
	}
	if guest == nil {
		return fmt.Errorf("%w: guest cannot be empty", ErrInvalidArgument)
	}
	r.state = StateOccupied
	r.occupant = guest
	return nil
}

// CheckOut moves the room from OCCUPIED to FREE and clears the occupant.
func (r *Room) CheckOut() error {
	if r.state != StateOccupied {
		return r.transitionError("is not occupied", "check out")
	}
	r.state = StateFree
	r.occupant = nil
	return nil
}

func (r *Room) transitionError(reason, op string) error {
	return fmt.Errorf("%w: room %d %s (current state: %s), cannot %s",
		ErrInvalidStateTransition, r.number, reason, r.state, op)
}

// RoomView is a read-only copy of a room's current state.
type RoomView struct {
	Number   int       `json:"number"`
	Type     RoomType  `json:"type"`
	State    RoomState `json:"state"`
	Occupant *Guest    `json:"occupant,omitempty"`
}

// View snapshots the room. The occupant is copied so callers cannot reach
// the room's own guest record.
func (r *Room) View() RoomView {
	v := RoomView{Number: r.number, Type: r.roomType, State: r.state}
	if r.occupant != nil {
		g := *r.occupant
		v.Occupant = &g
	}
	return v
}
