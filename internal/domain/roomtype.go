package domain

import (
	"fmt"
	"strings"
)

// RoomKind is the kind tag of a room category.
type RoomKind string

const (
	KindSingle RoomKind = "SINGLE"
	KindDouble RoomKind = "DOUBLE"
	KindFamily RoomKind = "FAMILY"
)

// Valid reports whether k is one of the known kinds.
func (k RoomKind) Valid() bool {
	switch k {
	case KindSingle, KindDouble, KindFamily:
		return true
	}
	return false
}

// ParseRoomKind is case-insensitive.
func ParseRoomKind(s string) (RoomKind, error) {
	k := RoomKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown room kind %q", ErrInvalidArgument, s)
	}
	return k, nil
}

// RoomType is a room category. Hotels match rooms against requests by full
// equality of kind and cost, so two DOUBLE rooms at different prices are
// different categories.
type RoomType struct {
	Kind RoomKind `json:"kind"`
	Cost Money    `json:"cost"`
}

func NewRoomType(kind RoomKind, cost Money) (RoomType, error) {
	if !kind.Valid() {
		return RoomType{}, fmt.Errorf("%w: unknown room kind %q", ErrInvalidArgument, kind)
	}
	if cost.Currency == "" {
		return RoomType{}, fmt.Errorf("%w: cost must have a currency", ErrInvalidArgument)
	}
	return RoomType{Kind: kind, Cost: cost}, nil
}

func (t RoomType) String() string {
	return fmt.Sprintf("RoomType{kind=%s, cost=%s}", t.Kind, t.Cost)
}
