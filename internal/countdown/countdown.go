// Package countdown holds the deal countdown: a days/hours/minutes/seconds value
// decremented by a one-second borrow cascade, and the Timer that schedules it.
package countdown

import (
	"fmt"
	"time"
)

const (
	maxSeconds = 59
	maxMinutes = 59
	maxHours   = 23

	secondsPerDay = 24 * 60 * 60
)

// Countdown is a non-negative duration split into bounded fields.
type Countdown struct {
	Days    int `json:"days" yaml:"days" validate:"gte=0"`
	Hours   int `json:"hours" yaml:"hours" validate:"hours"`
	Minutes int `json:"minutes" yaml:"minutes" validate:"sixty"`
	Seconds int `json:"seconds" yaml:"seconds" validate:"sixty"`
}

// Initial is the value a Timer starts from when mounted with no override.
//
//nolint:gochecknoglobals // immutable default.
var Initial = Countdown{Days: 1, Hours: 12, Minutes: 20, Seconds: 30}

// Tick applies one step of the borrow cascade. Only one field is decremented per
// step; lower fields it borrows through are refilled to their maximum. At all-zero
// the value is returned unchanged with ok=false, meaning the schedule should stop.
func Tick(c Countdown) (next Countdown, ok bool) {
	switch {
	case c.Seconds > 0:
		c.Seconds--
	case c.Minutes > 0:
		c.Minutes--
		c.Seconds = maxSeconds
	case c.Hours > 0:
		c.Hours--
		c.Minutes = maxMinutes
		c.Seconds = maxSeconds
	case c.Days > 0:
		c.Days--
		c.Hours = maxHours
		c.Minutes = maxMinutes
		c.Seconds = maxSeconds
	default:
		return c, false
	}
	return c, true
}

// IsZero reports whether the countdown has run out.
func (c Countdown) IsZero() bool {
	return c.Days == 0 && c.Hours == 0 && c.Minutes == 0 && c.Seconds == 0
}

// Valid reports whether every field is inside its bounds.
func (c Countdown) Valid() bool {
	return c.Days >= 0 &&
		c.Hours >= 0 && c.Hours <= maxHours &&
		c.Minutes >= 0 && c.Minutes <= maxMinutes &&
		c.Seconds >= 0 && c.Seconds <= maxSeconds
}

// Duration converts the countdown to a time.Duration.
func (c Countdown) Duration() time.Duration {
	total := c.Days*secondsPerDay + c.Hours*3600 + c.Minutes*60 + c.Seconds
	return time.Duration(total) * time.Second
}

// FromDuration splits d into a Countdown, truncating to whole seconds.
// Negative durations yield the zero countdown.
func FromDuration(d time.Duration) Countdown {
	if d <= 0 {
		return Countdown{}
	}
	total := int(d / time.Second)
	return Countdown{
		Days:    total / secondsPerDay,
		Hours:   total % secondsPerDay / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

func (c Countdown) String() string {
	return fmt.Sprintf("%dd %02d:%02d:%02d", c.Days, c.Hours, c.Minutes, c.Seconds)
}

// Box is one labeled cell of the countdown display.
type Box struct {
	ID    int
	Label string
	Value int
}

// Boxes returns the display cells in their fixed order: days, hours, minutes, seconds.
func (c Countdown) Boxes() []Box {
	return []Box{
		{ID: 1, Label: "Days", Value: c.Days},
		{ID: 2, Label: "Hr", Value: c.Hours},
		{ID: 3, Label: "Mins", Value: c.Minutes},
		{ID: 4, Label: "Sec", Value: c.Seconds},
	}
}
