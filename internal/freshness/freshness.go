// Package freshness classifies pantry items by how close they are to their expiry date.
package freshness

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Label is the freshness of an item relative to a given day.
type Label string

const (
	Fresh         Label = "Fresh"
	ExpiringSoon  Label = "Expiring Soon"
	Urgent        Label = "Urgent"
	ExpiringToday Label = "Expiring Today"
	Expired       Label = "Expired"
	// Unknown means the expiry date could not be parsed; it is not a freshness state.
	Unknown Label = "Unknown"
)

// Accepted expiry encodings. Day and month may be written without a leading zero.
const (
	DayMonthYearLayout = "02/01/2006"
	ISODateLayout      = "2006-01-02"
)

// layouts is the parse order: day-first before ISO, padded before unpadded.
var layouts = []string{
	DayMonthYearLayout,
	"2/1/2006",
	ISODateLayout,
	"2006-1-2",
}

// ErrInvalidExpiry is returned by ParseExpiry when no accepted layout matches.
var ErrInvalidExpiry = errors.New("invalid expiry date")

var rank = map[Label]int{
	Fresh:         0,
	ExpiringSoon:  1,
	Urgent:        2,
	ExpiringToday: 3,
	Expired:       4,
}

// Rank orders labels by urgency, Fresh lowest. Unknown and unrecognized labels rank -1.
func (l Label) Rank() int {
	if r, ok := rank[l]; ok {
		return r
	}
	return -1
}

// Valid reports whether l is one of the defined labels.
func (l Label) Valid() bool {
	return l == Unknown || l.Rank() >= 0
}

// ParseExpiry parses a DD/MM/YYYY or YYYY-MM-DD date.
func ParseExpiry(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidExpiry, raw)
}

// Classify labels an expiry date relative to today. Only the calendar date of today
// is used, in today's own location. Unparseable input yields Unknown.
func Classify(expiryRaw string, today time.Time) Label {
	expiry, err := ParseExpiry(expiryRaw)
	if err != nil {
		return Unknown
	}
	return ForDaysLeft(DaysBetween(today, expiry))
}

// DaysBetween counts calendar days from today to expiry; negative once expiry has passed.
func DaysBetween(today, expiry time.Time) int {
	y, m, d := today.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = expiry.Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// ForDaysLeft maps a day count to its label.
func ForDaysLeft(daysLeft int) Label {
	switch {
	case daysLeft > 15:
		return Fresh
	case daysLeft >= 8:
		return ExpiringSoon
	case daysLeft >= 1:
		return Urgent
	case daysLeft == 0:
		return ExpiringToday
	default:
		return Expired
	}
}
