package hotel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation-backend/internal/domain"
)

var base = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return base.AddDate(0, 0, n)
}

type fixture struct {
	hotel  *Hotel
	double domain.RoomType
	family domain.RoomType
	payer  *domain.ReserverPayer
	guest  *domain.Guest
}

// newFixture builds a hotel with rooms 101 and 102 (DOUBLE) and 201 (FAMILY).
func newFixture(t *testing.T) fixture {
	t.Helper()
	usd := func(amount int64) domain.Money {
		m, err := domain.NewMoney(amount, "USD")
		require.NoError(t, err)
		return m
	}
	double, err := domain.NewRoomType(domain.KindDouble, usd(15000))
	require.NoError(t, err)
	family, err := domain.NewRoomType(domain.KindFamily, usd(25000))
	require.NoError(t, err)

	h, err := New("The Grand Budapest")
	require.NoError(t, err)
	for _, r := range []struct {
		number int
		rt     domain.RoomType
	}{{101, double}, {102, double}, {201, family}} {
		room, err := domain.NewRoom(r.number, r.rt)
		require.NoError(t, err)
		require.NoError(t, h.AddRoom(room))
	}

	id, err := domain.NewIdentity("Passport", "UK-123456789")
	require.NoError(t, err)
	card, err := domain.NewCreditCard("4444-5555-6666-7777", "12/28", "123")
	require.NoError(t, err)
	payer, err := domain.NewReserverPayer(id, card)
	require.NoError(t, err)
	addr, err := domain.NewAddress("123 Baker St", "London", "NW1 6XE")
	require.NoError(t, err)
	guest, err := domain.NewGuest("John Doe", addr, id)
	require.NoError(t, err)

	return fixture{hotel: h, double: double, family: family, payer: payer, guest: guest}
}

func (f fixture) roomState(t *testing.T, number int) domain.RoomView {
	t.Helper()
	v, err := f.hotel.Room(number)
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	_, err := New("  ")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestHotel_AddRoom(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.hotel.AddRoom(nil), domain.ErrInvalidArgument)

	dup, err := domain.NewRoom(101, f.family)
	require.NoError(t, err)
	assert.ErrorIs(t, f.hotel.AddRoom(dup), domain.ErrInvalidArgument)

	assert.Len(t, f.hotel.Rooms(), 3)
	assert.True(t, f.hotel.HasRoom(201))
	assert.False(t, f.hotel.HasRoom(999))
}

// Scenario A: two DOUBLE rooms are handed out in insertion order, then the
// category is exhausted.
func TestHotel_ScenarioA_FirstEligibleRoomInOrder(t *testing.T) {
	f := newFixture(t)

	res1, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)
	res2, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)

	assert.Equal(t, 101, res1.RoomNumber())
	assert.Equal(t, 1, res1.Number())
	assert.Equal(t, 102, res2.RoomNumber())
	assert.Equal(t, 2, res2.Number())
	assert.Equal(t, domain.StateReserved, f.roomState(t, 101).State)
	assert.Equal(t, domain.StateReserved, f.roomState(t, 102).State)

	_, err = f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	assert.ErrorIs(t, err, domain.ErrNoAvailability)
	assert.Len(t, f.hotel.Reservations(), 2, "failed request must not add a reservation")

	ok, err := f.hotel.Available(day(5), day(10), f.family)
	require.NoError(t, err)
	assert.True(t, ok)
}

// Scenario B: check-in requires a reserved room.
func TestHotel_ScenarioB_CheckIn(t *testing.T) {
	f := newFixture(t)

	_, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)

	require.NoError(t, f.hotel.CheckIn(101, f.guest))
	view := f.roomState(t, 101)
	assert.Equal(t, domain.StateOccupied, view.State)
	require.NotNil(t, view.Occupant)
	assert.Equal(t, "John Doe", view.Occupant.Name)

	err = f.hotel.CheckIn(201, f.guest)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Equal(t, domain.StateFree, f.roomState(t, 201).State)

	assert.ErrorIs(t, f.hotel.CheckIn(999, f.guest), domain.ErrNotFound)
}

// Scenario C: reserve, check in, check out returns the room to FREE.
func TestHotel_ScenarioC_CheckOut(t *testing.T) {
	f := newFixture(t)

	_, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)
	require.NoError(t, f.hotel.CheckIn(101, f.guest))

	guest, err := f.hotel.CheckOut(101)
	require.NoError(t, err)
	assert.Same(t, f.guest, guest)

	view := f.roomState(t, 101)
	assert.Equal(t, domain.StateFree, view.State)
	assert.Nil(t, view.Occupant)

	_, err = f.hotel.CheckOut(101)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	_, err = f.hotel.CheckOut(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Scenario D: cancelling frees the room, a second cancel is NotFound.
func TestHotel_ScenarioD_Cancel(t *testing.T) {
	f := newFixture(t)

	_, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)
	res2, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)
	require.Equal(t, 102, res2.RoomNumber())
	require.Equal(t, 2, res2.Number())

	cancelled, err := f.hotel.CancelReservation(2)
	require.NoError(t, err)
	assert.Equal(t, res2, cancelled)
	assert.Equal(t, domain.StateFree, f.roomState(t, 102).State)
	assert.Len(t, f.hotel.Reservations(), 1)

	_, err = f.hotel.CancelReservation(2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHotel_NumbersAreNeverReused(t *testing.T) {
	f := newFixture(t)

	res1, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)
	_, err = f.hotel.CancelReservation(res1.Number())
	require.NoError(t, err)
	require.Empty(t, f.hotel.Reservations())

	res2, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)
	assert.Equal(t, 2, res2.Number())

	_, err = f.hotel.Reservation(1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	got, err := f.hotel.Reservation(2)
	require.NoError(t, err)
	assert.Equal(t, res2, got)
}

// A checked-out room is FREE again but its reservation is still tracked, so
// only the date-overlap rule decides.
func TestHotel_OverlapBoundary(t *testing.T) {
	f := newFixture(t)
	hotel, err := New("Solo")
	require.NoError(t, err)
	room, err := domain.NewRoom(1, f.double)
	require.NoError(t, err)
	require.NoError(t, hotel.AddRoom(room))

	_, err = hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)
	require.NoError(t, hotel.CheckIn(1, f.guest))
	_, err = hotel.CheckOut(1)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		start, end int
		expected   bool
	}{
		{name: "starts on previous end", start: 10, end: 12, expected: true},
		{name: "ends on previous start", start: 2, end: 5, expected: true},
		{name: "straddles previous end", start: 9, end: 11, expected: false},
		{name: "inside previous stay", start: 6, end: 8, expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := hotel.Available(day(tc.start), day(tc.end), f.double)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}

	_, err = hotel.CreateReservation(day(9), day(11), f.double, f.payer)
	assert.ErrorIs(t, err, domain.ErrNoAvailability)

	res, err := hotel.CreateReservation(day(10), day(12), f.double, f.payer)
	require.NoError(t, err)
	assert.Equal(t, 1, res.RoomNumber())
}

func TestHotel_ReservedRoomIsIneligibleWithoutOverlap(t *testing.T) {
	f := newFixture(t)

	_, err := f.hotel.CreateReservation(day(5), day(10), f.family, f.payer)
	require.NoError(t, err)

	ok, err := f.hotel.Available(day(20), day(25), f.family)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHotel_MatchesCategoryByFullEquality(t *testing.T) {
	f := newFixture(t)
	cheaper := f.double
	cheaper.Cost.Amount = 9900

	ok, err := f.hotel.Available(day(5), day(10), cheaper)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.hotel.CreateReservation(day(5), day(10), cheaper, f.payer)
	assert.ErrorIs(t, err, domain.ErrNoAvailability)
}

func TestHotel_InvalidArguments(t *testing.T) {
	f := newFixture(t)

	_, err := f.hotel.Available(day(5), day(5), f.double)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.hotel.CreateReservation(day(10), day(5), f.double, f.payer)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.hotel.CreateReservation(day(5), day(10), f.double, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	assert.Equal(t, domain.StateFree, f.roomState(t, 101).State)
	assert.Empty(t, f.hotel.Reservations())
}

func TestHotel_CancelAfterCheckInKeepsReservation(t *testing.T) {
	f := newFixture(t)

	res, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)
	require.NoError(t, f.hotel.CheckIn(101, f.guest))

	_, err = f.hotel.CancelReservation(res.Number())
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Len(t, f.hotel.Reservations(), 1)
	assert.Equal(t, domain.StateOccupied, f.roomState(t, 101).State)
}

func TestHotel_CancelFinishedStayKeepsNextReservation(t *testing.T) {
	f := newFixture(t)
	hotel, err := New("Solo")
	require.NoError(t, err)
	room, err := domain.NewRoom(1, f.double)
	require.NoError(t, err)
	require.NoError(t, hotel.AddRoom(room))

	first, err := hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)
	require.NoError(t, hotel.CheckIn(1, f.guest))
	_, err = hotel.CheckOut(1)
	require.NoError(t, err)
	second, err := hotel.CreateReservation(day(10), day(12), f.double, f.payer)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		number int
	}{
		{name: "checked out stay", number: first.Number()},
		{name: "checked out stay again", number: first.Number()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hotel.CancelReservation(tc.number)
			assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
			v, err := hotel.Room(1)
			require.NoError(t, err)
			assert.Equal(t, domain.StateReserved, v.State)
			assert.Len(t, hotel.Reservations(), 2)
		})
	}

	// The live reservation is unaffected and can still be cancelled.
	cancelled, err := hotel.CancelReservation(second.Number())
	require.NoError(t, err)
	assert.Equal(t, second.Number(), cancelled.Number())
	v, err := hotel.Room(1)
	require.NoError(t, err)
	assert.Equal(t, domain.StateFree, v.State)
}

func TestHotel_CheckInAfterFinishedStay(t *testing.T) {
	f := newFixture(t)

	_, err := f.hotel.CreateReservation(day(5), day(10), f.family, f.payer)
	require.NoError(t, err)
	require.NoError(t, f.hotel.CheckIn(201, f.guest))
	_, err = f.hotel.CheckOut(201)
	require.NoError(t, err)
	_, err = f.hotel.CreateReservation(day(10), day(12), f.family, f.payer)
	require.NoError(t, err)

	_, err = f.hotel.CancelReservation(1)
	require.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	require.NoError(t, f.hotel.CheckIn(201, f.guest))
	assert.Equal(t, domain.StateOccupied, f.roomState(t, 201).State)
}

func TestHotel_SnapshotsAreDetached(t *testing.T) {
	f := newFixture(t)
	_, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer)
	require.NoError(t, err)

	rooms := f.hotel.Rooms()
	rooms[0].State = domain.StateOccupied
	reservations := f.hotel.Reservations()
	reservations[0] = domain.Reservation{}

	assert.Equal(t, domain.StateReserved, f.roomState(t, 101).State)
	got, err := f.hotel.Reservation(1)
	require.NoError(t, err)
	assert.Equal(t, 101, got.RoomNumber())
}

func TestHotel_ConcurrentBookingsNeverDoubleBook(t *testing.T) {
	f := newFixture(t)

	var wg sync.WaitGroup
	results := make(chan domain.Reservation, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res, err := f.hotel.CreateReservation(day(5), day(10), f.double, f.payer); err == nil {
				results <- res
			}
		}()
	}
	wg.Wait()
	close(results)

	rooms := map[int]bool{}
	numbers := map[int]bool{}
	for res := range results {
		assert.False(t, rooms[res.RoomNumber()], "room %d booked twice", res.RoomNumber())
		assert.False(t, numbers[res.Number()], "number %d issued twice", res.Number())
		rooms[res.RoomNumber()] = true
		numbers[res.Number()] = true
	}
	assert.Len(t, rooms, 2)
}
