package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestNewReservation(t *testing.T) {
	payer := mustPayer(t)

	testCases := []struct {
		name    string
		number  int
		start   time.Time
		end     time.Time
		payer   *ReserverPayer
		room    int
		wantErr error
	}{
		{name: "valid", number: 1, start: day(5), end: day(10), payer: payer, room: 101},
		{name: "one night", number: 2, start: day(5), end: day(6), payer: payer, room: 101},
		{name: "end equals start", number: 1, start: day(5), end: day(5), payer: payer, room: 101, wantErr: ErrInvalidArgument},
		{name: "end before start", number: 1, start: day(5), end: day(4), payer: payer, room: 101, wantErr: ErrInvalidArgument},
		{name: "zero start", number: 1, end: day(4), payer: payer, room: 101, wantErr: ErrInvalidArgument},
		{name: "missing payer", number: 1, start: day(5), end: day(10), room: 101, wantErr: ErrInvalidArgument},
		{name: "missing room", number: 1, start: day(5), end: day(10), payer: payer, wantErr: ErrInvalidArgument},
		{name: "non-positive number", number: 0, start: day(5), end: day(10), payer: payer, room: 101, wantErr: ErrInvalidArgument},
		{name: "same calendar day", number: 1, start: day(5), end: day(5).Add(3 * time.Hour), payer: payer, room: 101, wantErr: ErrInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := NewReservation(tc.number, tc.start, tc.end, tc.payer, tc.room)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.number, res.Number())
			assert.True(t, res.End().After(res.Start()))
			assert.Equal(t, tc.room, res.RoomNumber())
			assert.Same(t, tc.payer, res.Payer())
		})
	}
}

func TestReservation_NormalisesDates(t *testing.T) {
	start := time.Date(2026, time.March, 6, 15, 30, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 9, 11, 0, 0, 0, time.UTC)

	res, err := NewReservation(1, start, end, mustPayer(t), 101)
	require.NoError(t, err)

	assert.Equal(t, day(5), res.Start())
	assert.Equal(t, day(8), res.End())
	assert.Equal(t, 3, res.Nights())
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name       string
		start, end time.Time
		expected   bool
	}{
		{name: "touching after", start: day(10), end: day(12), expected: false},
		{name: "touching before", start: day(3), end: day(5), expected: false},
		{name: "straddles end", start: day(9), end: day(11), expected: true},
		{name: "straddles start", start: day(4), end: day(6), expected: true},
		{name: "inside", start: day(6), end: day(7), expected: true},
		{name: "covers", start: day(1), end: day(20), expected: true},
		{name: "identical", start: day(5), end: day(10), expected: true},
		{name: "disjoint", start: day(15), end: day(16), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Overlaps(tc.start, tc.end, day(5), day(10)))
		})
	}
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	in := time.Date(2026, time.March, 6, 1, 0, 0, 0, loc)

	assert.Equal(t, day(5), Day(in))
}
