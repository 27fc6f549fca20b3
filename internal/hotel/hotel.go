package hotel

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"hotel-reservation-backend/internal/domain"
)

// Hotel owns a set of rooms and the reservations made against them. All
// methods take the hotel's lock, so an availability check and the booking
// that follows it inside CreateReservation are atomic.
type Hotel struct {
	name string

	mu           sync.Mutex
	rooms        []*domain.Room
	reservations []domain.Reservation
	lastNumber   int
	// holder maps a room number to the reservation that moved it out of
	// FREE. The entry is dropped when the room is freed again.
	holder map[int]int
}

// New creates an empty hotel.
func New(name string) (*Hotel, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: hotel name cannot be empty", domain.ErrInvalidArgument)
	}
	return &Hotel{name: name, holder: make(map[int]int)}, nil
}

func (h *Hotel) Name() string {
	return h.name
}

// AddRoom appends a room to the inventory. Room numbers are unique per hotel.
func (h *Hotel) AddRoom(room *domain.Room) error {
	if room == nil {
		return fmt.Errorf("%w: room cannot be empty", domain.ErrInvalidArgument)
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.findRoom(room.Number()) != nil {
		return fmt.Errorf("%w: room %d already exists in %s", domain.ErrInvalidArgument, room.Number(), h.name)
	}
	h.rooms = append(h.rooms, room)
	return nil
}

// HasRoom reports whether a room with the given number exists.
func (h *Hotel) HasRoom(number int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.findRoom(number) != nil
}

// Rooms returns snapshots of all rooms in insertion order.
func (h *Hotel) Rooms() []domain.RoomView {
	h.mu.Lock()
	defer h.mu.Unlock()

	views := make([]domain.RoomView, 0, len(h.rooms))
	for _, r := range h.rooms {
		views = append(views, r.View())
	}
	return views
}

// Room returns a snapshot of one room.
func (h *Hotel) Room(number int) (domain.RoomView, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.findRoom(number)
	if room == nil {
		return domain.RoomView{}, h.roomNotFound(number)
	}
	return room.View(), nil
}

// Reservations returns a copy of the live reservations in creation order.
func (h *Hotel) Reservations() []domain.Reservation {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.Reservation, len(h.reservations))
	copy(out, h.reservations)
	return out
}

// Reservation looks up a live reservation by number.
func (h *Hotel) Reservation(number int) (domain.Reservation, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if i := h.reservationIndex(number); i >= 0 {
		return h.reservations[i], nil
	}
	return domain.Reservation{}, h.reservationNotFound(number)
}

// Available reports whether at least one room of exactly roomType can be
// reserved for [start, end).
func (h *Hotel) Available(start, end time.Time, roomType domain.RoomType) (bool, error) {
	if err := domain.ValidateRange(start, end); err != nil {
		return false, err
	}
	start, end = domain.Day(start), domain.Day(end)

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.firstEligible(start, end, roomType) != nil, nil
}

// CreateReservation books the first eligible room of roomType, in insertion
// order, for [start, end). The room is moved to RESERVED before the
// reservation is recorded, so a failed transition leaves nothing behind.
func (h *Hotel) CreateReservation(start, end time.Time, roomType domain.RoomType, payer *domain.ReserverPayer) (domain.Reservation, error) {
	if err := domain.ValidateRange(start, end); err != nil {
		return domain.Reservation{}, err
	}
	if payer == nil {
		return domain.Reservation{}, fmt.Errorf("%w: payer cannot be empty", domain.ErrInvalidArgument)
	}
	start, end = domain.Day(start), domain.Day(end)

	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.firstEligible(start, end, roomType)
	if room == nil {
		return domain.Reservation{}, fmt.Errorf("%w: no %s room in %s for %s to %s",
			domain.ErrNoAvailability, roomType.Kind, h.name, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	res, err := domain.NewReservation(h.lastNumber+1, start, end, payer, room.Number())
	if err != nil {
		return domain.Reservation{}, err
	}
	if err := room.MakeReservation(); err != nil {
		return domain.Reservation{}, err
	}
	h.lastNumber = res.Number()
	h.reservations = append(h.reservations, res)
	h.holder[room.Number()] = res.Number()
	return res, nil
}

// CancelReservation drops a live reservation and frees its room. It returns
// the cancelled reservation. Only the reservation currently holding its room
// can be cancelled; a finished stay fails with ErrInvalidStateTransition.
func (h *Hotel) CancelReservation(number int) (domain.Reservation, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.reservationIndex(number)
	if i < 0 {
		return domain.Reservation{}, h.reservationNotFound(number)
	}
	res := h.reservations[i]
	room := h.findRoom(res.RoomNumber())
	if room == nil {
		return domain.Reservation{}, h.roomNotFound(res.RoomNumber())
	}
	if holder, ok := h.holder[room.Number()]; !ok || holder != number {
		return domain.Reservation{}, fmt.Errorf("%w: reservation #%d no longer holds room %d (current state: %s)",
			domain.ErrInvalidStateTransition, number, room.Number(), room.State())
	}
	if err := room.CancelReservation(); err != nil {
		return domain.Reservation{}, err
	}
	delete(h.holder, room.Number())
	h.reservations = append(h.reservations[:i], h.reservations[i+1:]...)
	return res, nil
}

// CheckIn puts guest into a RESERVED room.
func (h *Hotel) CheckIn(roomNumber int, guest *domain.Guest) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.findRoom(roomNumber)
	if room == nil {
		return h.roomNotFound(roomNumber)
	}
	return room.CheckIn(guest)
}

// CheckOut frees an OCCUPIED room and returns the guest who left.
func (h *Hotel) CheckOut(roomNumber int) (*domain.Guest, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.findRoom(roomNumber)
	if room == nil {
		return nil, h.roomNotFound(roomNumber)
	}
	guest := room.Occupant()
	if err := room.CheckOut(); err != nil {
		return nil, err
	}
	delete(h.holder, roomNumber)
	return guest, nil
}

// firstEligible must be called with h.mu held.
func (h *Hotel) firstEligible(start, end time.Time, roomType domain.RoomType) *domain.Room {
	for _, room := range h.rooms {
		if room.Type() != roomType {
			continue
		}
		if h.eligible(room, start, end) {
			return room
		}
	}
	return nil
}

// eligible requires no overlapping reservation on the room and a FREE room.
// A room with no date conflict is still ineligible while it is RESERVED or
// OCCUPIED: each room carries at most one live transaction.
func (h *Hotel) eligible(room *domain.Room, start, end time.Time) bool {
	for _, res := range h.reservations {
		if res.RoomNumber() == room.Number() && res.OverlapsRange(start, end) {
			return false
		}
	}
	return room.IsFree()
}

func (h *Hotel) findRoom(number int) *domain.Room {
	for _, r := range h.rooms {
		if r.Number() == number {
			return r
		}
	}
	return nil
}

func (h *Hotel) reservationIndex(number int) int {
	for i, r := range h.reservations {
		if r.Number() == number {
			return i
		}
	}
	return -1
}

func (h *Hotel) roomNotFound(number int) error {
	return fmt.Errorf("%w: room %d in %s", domain.ErrNotFound, number, h.name)
}

func (h *Hotel) reservationNotFound(number int) error {
	return fmt.Errorf("%w: reservation #%d in %s", domain.ErrNotFound, number, h.name)
}
