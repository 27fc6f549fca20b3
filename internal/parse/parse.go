package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hotel-reservation-backend/internal/domain"
)

// DateLayout is the calendar date format accepted by the API and config.
const DateLayout = time.DateOnly

var amountRe = regexp.MustCompile(`^(\d+)(?:\.(\d{1,2}))?$`)

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, use %s", domain.ErrInvalidArgument, raw, DateLayout)
	}
	return t, nil
}

// ParseAmount converts a decimal string such as "150.5" into minor units
// (15050). At most two fraction digits are allowed and the sign is rejected.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	m := amountRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: invalid amount %q", domain.ErrInvalidArgument, raw)
	}

	units, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || units > (1<<62)/100 {
		return 0, fmt.Errorf("%w: amount %q out of range", domain.ErrInvalidArgument, raw)
	}

	// "150.5" means 50 cents, not 5
	frac := m[2]
	if len(frac) == 1 {
		frac += "0"
	}
	var cents int64
	if frac != "" {
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}
	return units*100 + cents, nil
}

// ParseRoomType builds a room category from its textual parts.
func ParseRoomType(kind, amount, currency string) (domain.RoomType, error) {
	k, err := domain.ParseRoomKind(kind)
	if err != nil {
		return domain.RoomType{}, err
	}
	minor, err := ParseAmount(amount)
	if err != nil {
		return domain.RoomType{}, err
	}
	cost, err := domain.NewMoney(minor, currency)
	if err != nil {
		return domain.RoomType{}, err
	}
	return domain.NewRoomType(k, cost)
}

// ParseDateRange parses both ends of a stay and checks end is after start.
func ParseDateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := ParseDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if err := domain.ValidateRange(start, end); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
