package domain

import (
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

// Day is a calendar date. It is stored at UTC midnight so that day
// arithmetic never crosses a DST boundary.
type Day struct {
	t time.Time
}

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	return Day{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return Day{t: t}, nil
}

func (d Day) String() string    { return d.t.Format(DayLayout) }
func (d Day) IsZero() bool      { return d.t.IsZero() }
func (d Day) AddDays(n int) Day { return Day{t: d.t.AddDate(0, 0, n)} }
func (d Day) Equal(o Day) bool  { return d.t.Equal(o.t) }
func (d Day) Time() time.Time   { return d.t }

// DaysSince counts whole days from o to d; negative when o is after d.
func (d Day) DaysSince(o Day) int {
	return int(d.t.Sub(o.t).Hours() / 24)
}

// Record is the persisted streak. A zero LastDate means no completion yet.
type Record struct {
	Count    int
	LastDate Day
}

func (r Record) HasLast() bool { return !r.LastDate.IsZero() }

// Outcome names which branch of the policy a completion took.
type Outcome string

const (
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeExtended  Outcome = "extended"
	OutcomeReset     Outcome = "reset"
)

// Apply returns the record after a completion on today. A completion on the
// same day changes nothing; one the day after extends the streak; anything
// else, including a last date in the future, restarts it at 1.
func Apply(r Record, today Day) (Record, Outcome) {
	if r.HasLast() && r.LastDate.Equal(today) {
		return r, OutcomeUnchanged
	}
	if r.HasLast() && r.LastDate.Equal(today.AddDays(-1)) {
		return Record{Count: r.Count + 1, LastDate: today}, OutcomeExtended
	}
	return Record{Count: 1, LastDate: today}, OutcomeReset
}

type Status struct {
	Record    Record
	DoneToday bool
	// Alive is true while a completion today still extends the streak.
	Alive     bool
	DaysSince int
}

func StatusOf(r Record, today Day) Status {
	s := Status{Record: r}
	if !r.HasLast() {
		return s
	}
	s.DaysSince = today.DaysSince(r.LastDate)
	s.DoneToday = s.DaysSince == 0
	s.Alive = s.DaysSince == 0 || s.DaysSince == 1
	return s
}
