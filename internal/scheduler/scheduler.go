// Package scheduler lays tasks out on consecutive calendar days.
//
// The scheduler is a linear greedy sequencer: tasks keep their input order,
// each occupies max(1, duration) whole days, and the next task starts the
// day after the previous one ends. There is no dependency graph and no
// weekend or holiday awareness.
package scheduler

import (
	"time"
)

// Input is a task to place on the calendar.
type Input struct {
	Title    string
	Duration int
}

// Slot is the inclusive day range assigned to a task.
type Slot struct {
	Title string
	Start Date
	End   Date
}

// Schedule assigns each task a contiguous [Start, End] range starting at
// start. A duration of zero or less still occupies a single day.
func Schedule(tasks []Input, start Date) []Slot {
	slots := make([]Slot, 0, len(tasks))
	current := start
	for _, t := range tasks {
		days := t.Duration - 1
		if days < 0 {
			days = 0
		}
		end := current.AddDays(days)
		slots = append(slots, Slot{Title: t.Title, Start: current, End: end})
		current = end.AddDays(1)
	}
	return slots
}

// Date is a calendar date without time of day or zone. It marshals to and
// from JSON as "YYYY-MM-DD".
type Date struct {
	t time.Time
}

// NewDate returns the date of t in t's location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(time.DateOnly)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. A full RFC 3339
// timestamp is also accepted and truncated to its date.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err == nil {
		*d = parsed
		return nil
	}
	ts, tsErr := time.Parse(time.RFC3339, string(text))
	if tsErr != nil {
		return err
	}
	*d = NewDate(ts)
	return nil
}
