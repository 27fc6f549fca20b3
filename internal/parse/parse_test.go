package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation-backend/internal/domain"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  int64
		expectErr bool
	}{
		{name: "Whole units", raw: "150", expected: 15000},
		{name: "Two decimals", raw: "150.00", expected: 15000},
		{name: "One decimal", raw: "150.5", expected: 15050},
		{name: "Cents only", raw: "0.07", expected: 7},
		{name: "Zero", raw: "0", expected: 0},
		{name: "Surrounding spaces", raw: " 99.99 ", expected: 9999},
		{name: "Negative", raw: "-1", expectErr: true},
		{name: "Three decimals", raw: "1.005", expectErr: true},
		{name: "Empty", raw: "", expectErr: true},
		{name: "Letters", raw: "12a", expectErr: true},
		{name: "Dangling point", raw: "12.", expectErr: true},
		{name: "Too large", raw: "99999999999999999999", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.raw)
			if tc.expectErr {
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("06/03/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = ParseDate("2026-02-30")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange("2026-03-06", "2026-03-11")
	require.NoError(t, err)
	assert.Equal(t, 5*24*time.Hour, end.Sub(start))

	_, _, err = ParseDateRange("2026-03-06", "2026-03-06")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, _, err = ParseDateRange("bad", "2026-03-06")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, _, err = ParseDateRange("2026-03-06", "bad")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestParseRoomType(t *testing.T) {
	rt, err := ParseRoomType("double", "150.00", "usd")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomType{Kind: domain.KindDouble, Cost: domain.Money{Amount: 15000, Currency: "USD"}}, rt)

	testCases := []struct {
		name                   string
		kind, amount, currency string
	}{
		{name: "Unknown kind", kind: "SUITE", amount: "1", currency: "USD"},
		{name: "Bad amount", kind: "SINGLE", amount: "x", currency: "USD"},
		{name: "Bad currency", kind: "SINGLE", amount: "1", currency: "US"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRoomType(tc.kind, tc.amount, tc.currency)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}
