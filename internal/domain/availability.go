package domain

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// TimeMode defines how the reference time of an availability query is chosen
type TimeMode string

const (
	// ModeNow checks availability at the current time
	ModeNow TimeMode = "now"
	// ModeNextHour checks availability at the current time and requires the
	// room to stay free for at least one hour
	ModeNextHour TimeMode = "next_hour"
	// ModeCustom checks availability at a user-provided time of day
	ModeCustom TimeMode = "custom"
)

// ParseTimeMode parses a time mode, case-insensitive
func ParseTimeMode(s string) (TimeMode, error) {
	switch TimeMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeNow:
		return ModeNow, nil
	case ModeNextHour:
		return ModeNextHour, nil
	case ModeCustom:
		return ModeCustom, nil
	default:
		return "", fmt.Errorf("unknown time mode %q", s)
	}
}

// FilterCriteria describes the current availability query selections
type FilterCriteria struct {
	BuildingID *string // nil = all buildings
	Mode       TimeMode
	CustomTime *types.TimeString // required when Mode == ModeCustom
}

// IsComplete returns true if the criteria can be submitted as a query.
// Custom mode without a custom time is not submittable
func (c *FilterCriteria) IsComplete() bool {
	if c.Mode == ModeCustom {
		return c.CustomTime != nil && !c.CustomTime.IsZero()
	}
	return true
}

// RoomAvailability is the derived result of an availability query: a free
// room together with the time it stays free until
type RoomAvailability struct {
	Room           Room
	AvailableUntil types.TimeString
}
