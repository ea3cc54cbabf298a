package domain

import "time"

// CalendarPolicy decides whether a calendar date is open for business.
// The zero value is not usable; construct with NewCalendarPolicy.
type CalendarPolicy struct {
	closed map[time.Weekday]bool
}

// NewCalendarPolicy builds a policy from a set of closed weekdays.
// An empty set falls back to DefaultClosedWeekdays.
func NewCalendarPolicy(closedWeekdays []time.Weekday) *CalendarPolicy {
	if len(closedWeekdays) == 0 {
		closedWeekdays = DefaultClosedWeekdays
	}
	closed := make(map[time.Weekday]bool, len(closedWeekdays))
	for _, d := range closedWeekdays {
		closed[d] = true
	}
	return &CalendarPolicy{closed: closed}
}

// IsClosed reports whether the salon is closed on the given date.
// Pure function of the date's weekday.
func (p *CalendarPolicy) IsClosed(date time.Time) bool {
	return p.closed[date.Weekday()]
}

// NextOpenDate returns the first open date at or after from, advancing
// one calendar day at a time.
func (p *CalendarPolicy) NextOpenDate(from time.Time) time.Time {
	cur := from
	for p.IsClosed(cur) {
		cur = cur.AddDate(0, 0, 1)
	}
	return cur
}
