package inventory

import (
	"errors"
	"fmt"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/internal/domain"
	"hotel-reservation-backend/internal/hotel"
	"hotel-reservation-backend/internal/parse"
)

// Seed adds the hotels and rooms listed in the configuration to chain. Any
// invalid entry aborts seeding, since the service should not start with a
// partial directory.
func Seed(chain *hotel.Chain, cfg config.ChainConfig) error {
	for _, hc := range cfg.Hotels {
		if _, _, err := ensureHotel(chain, hc.Name); err != nil {
			return fmt.Errorf("failed to seed hotel %q: %w", hc.Name, err)
		}
		for _, rc := range hc.Rooms {
			item := FeedItem{Hotel: hc.Name, Room: rc.Number, Kind: rc.Kind, Amount: rc.Amount, Currency: rc.Currency}
			if _, err := addRoom(chain, item); err != nil {
				return fmt.Errorf("failed to seed room %d of %q: %w", rc.Number, hc.Name, err)
			}
		}
	}
	return nil
}

// ensureHotel returns the named hotel, creating it when the chain does not
// know it yet.
func ensureHotel(chain *hotel.Chain, name string) (*hotel.Hotel, bool, error) {
	h, err := chain.Hotel(name)
	if err == nil {
		return h, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	h, err = hotel.New(name)
	if err != nil {
		return nil, false, err
	}
	if err := chain.AddHotel(h); err != nil {
		// Lost a race with another writer; use theirs.
		if existing, lookupErr := chain.Hotel(name); lookupErr == nil {
			return existing, false, nil
		}
		return nil, false, err
	}
	return h, true, nil
}

// addRoom adds the room described by item unless its hotel already has a
// room with that number. Existing rooms are never modified.
func addRoom(chain *hotel.Chain, item FeedItem) (bool, error) {
	h, _, err := ensureHotel(chain, item.Hotel)
	if err != nil {
		return false, err
	}
	if h.HasRoom(item.Room) {
		return false, nil
	}

	roomType, err := parse.ParseRoomType(item.Kind, item.Amount, item.Currency)
	if err != nil {
		return false, err
	}
	room, err := domain.NewRoom(item.Room, roomType)
	if err != nil {
		return false, err
	}
	if err := h.AddRoom(room); err != nil {
		return false, err
	}
	return true, nil
}
