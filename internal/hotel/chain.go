package hotel

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotel-reservation-backend/internal/domain"
)

// Chain is a directory of hotels addressed by case-insensitive name. It
// forwards operations to the owning Hotel and reports each success to its
// EventSink.
type Chain struct {
	name string
	sink EventSink
	now  func() time.Time

	mu     sync.RWMutex
	hotels []*Hotel
	payers []*domain.ReserverPayer
}

// Option configures a Chain.
type Option func(*Chain)

// WithEventSink routes events to sink instead of discarding them.
func WithEventSink(sink EventSink) Option {
	return func(c *Chain) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Chain) {
		c.now = now
	}
}

// NewChain creates an empty chain.
func NewChain(name string, opts ...Option) (*Chain, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: chain name cannot be empty", domain.ErrInvalidArgument)
	}
	c := &Chain{
		name: name,
		sink: discardSink{},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Chain) Name() string {
	return c.name
}

// AddHotel registers a hotel. Names must be unique ignoring case.
func (c *Chain) AddHotel(h *Hotel) error {
	if h == nil {
		return fmt.Errorf("%w: hotel cannot be empty", domain.ErrInvalidArgument)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.hotels {
		if strings.EqualFold(existing.Name(), h.Name()) {
			return fmt.Errorf("%w: hotel %q already exists", domain.ErrInvalidArgument, h.Name())
		}
	}
	c.hotels = append(c.hotels, h)
	return nil
}

// Hotels returns the registered hotels in insertion order.
func (c *Chain) Hotels() []*Hotel {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Hotel, len(c.hotels))
	copy(out, c.hotels)
	return out
}

// Hotel resolves a hotel by case-insensitive name.
func (c *Chain) Hotel(name string) (*Hotel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, h := range c.hotels {
		if strings.EqualFold(h.Name(), name) {
			return h, nil
		}
	}
	return nil, fmt.Errorf("%w: hotel %q", domain.ErrNotFound, name)
}

// CreateReserverPayer builds a payer and registers it with the chain.
func (c *Chain) CreateReserverPayer(identity domain.Identity, card domain.CreditCard) (*domain.ReserverPayer, error) {
	payer, err := domain.NewReserverPayer(identity, card)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.payers = append(c.payers, payer)
	c.mu.Unlock()
	return payer, nil
}

// ReserverPayer returns the registered payer with the same identity and card,
// registering a new one when there is none.
func (c *Chain) ReserverPayer(identity domain.Identity, card domain.CreditCard) (*domain.ReserverPayer, error) {
	payer, err := domain.NewReserverPayer(identity, card)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.payers {
		if existing.ID() == payer.ID() && existing.Card.Equal(card) {
			return existing, nil
		}
	}
	c.payers = append(c.payers, payer)
	return payer, nil
}

// Payers returns the registered payers.
func (c *Chain) Payers() []*domain.ReserverPayer {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.ReserverPayer, len(c.payers))
	copy(out, c.payers)
	return out
}

// Available forwards to the named hotel.
func (c *Chain) Available(hotelName string, start, end time.Time, roomType domain.RoomType) (bool, error) {
	h, err := c.Hotel(hotelName)
	if err != nil {
		return false, err
	}
	return h.Available(start, end, roomType)
}

// MakeReservation books a room of roomType in the named hotel.
func (c *Chain) MakeReservation(hotelName string, start, end time.Time, roomType domain.RoomType, payer *domain.ReserverPayer) (domain.Reservation, error) {
	h, err := c.Hotel(hotelName)
	if err != nil {
		return domain.Reservation{}, err
	}
	res, err := h.CreateReservation(start, end, roomType, payer)
	if err != nil {
		return domain.Reservation{}, err
	}
	c.emit(Event{
		Kind:              EventReservationCreated,
		Hotel:             h.Name(),
		RoomNumber:        res.RoomNumber(),
		ReservationNumber: res.Number(),
		PayerID:           payer.ID(),
		StartDate:         res.Start(),
		EndDate:           res.End(),
	})
	return res, nil
}

// CancelReservation cancels a reservation in the named hotel.
func (c *Chain) CancelReservation(hotelName string, reservationNumber int) error {
	h, err := c.Hotel(hotelName)
	if err != nil {
		return err
	}
	res, err := h.CancelReservation(reservationNumber)
	if err != nil {
		return err
	}
	c.emit(Event{
		Kind:              EventReservationCancelled,
		Hotel:             h.Name(),
		RoomNumber:        res.RoomNumber(),
		ReservationNumber: res.Number(),
		PayerID:           res.Payer().ID(),
		StartDate:         res.Start(),
		EndDate:           res.End(),
	})
	return nil
}

// CheckInGuest checks guest into a room of the named hotel.
func (c *Chain) CheckInGuest(hotelName string, roomNumber int, guest *domain.Guest) error {
	h, err := c.Hotel(hotelName)
	if err != nil {
		return err
	}
	if err := h.CheckIn(roomNumber, guest); err != nil {
		return err
	}
	c.emit(Event{
		Kind:       EventGuestCheckedIn,
		Hotel:      h.Name(),
		RoomNumber: roomNumber,
		GuestName:  guest.Name,
	})
	return nil
}

// CheckOutGuest checks the occupant out of a room of the named hotel.
func (c *Chain) CheckOutGuest(hotelName string, roomNumber int) error {
	h, err := c.Hotel(hotelName)
	if err != nil {
		return err
	}
	guest, err := h.CheckOut(roomNumber)
	if err != nil {
		return err
	}
	c.emit(Event{
		Kind:       EventGuestCheckedOut,
		Hotel:      h.Name(),
		RoomNumber: roomNumber,
		GuestName:  guest.Name,
	})
	return nil
}

func (c *Chain) emit(e Event) {
	e.ID = uuid.New()
	e.OccurredAt = c.now().UTC()
	c.sink.Dispatch(e)
}
