package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRoomType(t *testing.T, kind RoomKind, amount int64) RoomType {
	t.Helper()
	cost, err := NewMoney(amount, "USD")
	require.NoError(t, err)
	rt, err := NewRoomType(kind, cost)
	require.NoError(t, err)
	return rt
}

func mustGuest(t *testing.T) *Guest {
	t.Helper()
	addr, err := NewAddress("123 Baker St", "London", "NW1 6XE")
	require.NoError(t, err)
	id, err := NewIdentity("Passport", "UK-123456789")
	require.NoError(t, err)
	g, err := NewGuest("John Doe", addr, id)
	require.NoError(t, err)
	return g
}

func mustPayer(t *testing.T) *ReserverPayer {
	t.Helper()
	id, err := NewIdentity("Passport", "UK-123456789")
	require.NoError(t, err)
	card, err := NewCreditCard("4444-5555-6666-7777", "12/28", "123")
	require.NoError(t, err)
	p, err := NewReserverPayer(id, card)
	require.NoError(t, err)
	return p
}
