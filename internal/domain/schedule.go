package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// Weekday represents a day of the week for recurring schedule slots
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists all days in calendar order
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayFromTime converts a time.Weekday into a domain Weekday
func WeekdayFromTime(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ParseWeekday parses a weekday name, case-insensitive
func ParseWeekday(s string) (Weekday, error) {
	day := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Weekdays {
		if day == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// ScheduleSlot represents a recurring weekly busy interval of a room.
// Invariant: Start < End. Slots of the same room are not required to be
// disjoint; availability math only depends on interval membership and the
// earliest future start
type ScheduleSlot struct {
	RoomID string
	Day    Weekday
	Start  types.TimeString
	End    types.TimeString
}

// Contains returns true if t lies within [Start, End)
func (s *ScheduleSlot) Contains(t types.TimeString) bool {
	return !t.IsBefore(s.Start) && t.IsBefore(s.End)
}
