package domain

import "github.com/m04kA/SMC-RoomFinderService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04" // HH:MM
)

// EndOfDay is the "available until" sentinel used when a room has no further
// busy interval that day. Kept at 23:59 rather than midnight so the value
// stays a valid time of the same day
var EndOfDay = types.TimeString("23:59")

// NextHourMinutes is the guaranteed free window required by ModeNextHour
const NextHourMinutes = 60
