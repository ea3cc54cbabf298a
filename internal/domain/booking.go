package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Booking represents one occupied interval in a day's ledger.
type Booking struct {
	Stylist  string
	StartMin types.MinuteOfDay
	EndMin   types.MinuteOfDay
	Seed     bool // synthetic demo booking; informational only
}

// Overlaps reports whether the half-open interval [start, end) collides
// with the booking's [StartMin, EndMin). Touching boundaries do not count
// as an overlap.
func (b *Booking) Overlaps(start, end types.MinuteOfDay) bool {
	return !(end <= b.StartMin || start >= b.EndMin)
}

// BlocksStylist reports whether the booking blocks the given stylist
// selection over [start, end). The comparison is an exact string match:
// StylistAny is not a wildcard in either direction.
func (b *Booking) BlocksStylist(stylist string, start, end types.MinuteOfDay) bool {
	return b.Stylist == stylist && b.Overlaps(start, end)
}

// DayLedger is the unordered collection of bookings for one calendar date.
type DayLedger []Booking

// HasCollision reports whether any booking in the ledger blocks the given
// stylist over [start, end).
func (l DayLedger) HasCollision(stylist string, start, end types.MinuteOfDay) bool {
	for i := range l {
		if l[i].BlocksStylist(stylist, start, end) {
			return true
		}
	}
	return false
}

// WaitlistEntry is one customer waiting for a slot on a given day.
// Entries are append-only; the core never reads them back.
type WaitlistEntry struct {
	ID          string
	CreatedAt   time.Time
	Name        string
	Email       string
	ServiceID   string
	ServiceName string // snapshot of the effective name at join time
	Stylist     string
}
