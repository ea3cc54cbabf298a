package domain

import "time"

// Business hours. These are salon-wide constants, not per-service:
// the first bookable start is 09:00 and every booking must end at or
// before 18:00, on a 30-minute grid.
const (
	OpenMinute      = 9 * 60  // 09:00
	CloseMinute     = 18 * 60 // 18:00
	SlotStepMinutes = 30
)

// StylistAny is the sentinel stylist value meaning "no preference".
// It is stored verbatim in bookings and compared with plain string
// equality everywhere.
const StylistAny = "ANY"

// DefaultClosedWeekdays are the days the salon is closed unless
// configured otherwise.
var DefaultClosedWeekdays = []time.Weekday{time.Sunday, time.Monday}

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxCustomerNameLength     = 200
	MaxCustomerEmailLength    = 254
)

// DateFormat is the wire and storage-key date layout (YYYY-MM-DD).
const DateFormat = "2006-01-02"
