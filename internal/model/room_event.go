package model

import "time"

// RoomEvent is one row of the room event ledger. Rows are append-only and are
// never read back into the reservation engine.
type RoomEvent struct {
	ID                string     `gorm:"primaryKey;size:36" json:"id"`
	Kind              string     `gorm:"size:32;not null" json:"kind"`
	Hotel             string     `gorm:"size:128;not null;index:idx_room_events_hotel_room" json:"hotel"`
	RoomNumber        int        `gorm:"not null;index:idx_room_events_hotel_room" json:"roomNumber"`
	ReservationNumber int        `json:"reservationNumber,omitempty"`
	PayerID           string     `gorm:"size:64;index" json:"payerId,omitempty"`
	GuestName         string     `gorm:"size:256" json:"guestName,omitempty"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	OccurredAt        time.Time  `gorm:"not null;index" json:"occurredAt"`
}
