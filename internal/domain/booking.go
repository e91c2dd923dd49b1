package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// Booking represents a transient, session-local room reservation layered
// on top of the recurring schedule. Bookings live only for the process
// lifetime and are never persisted
type Booking struct {
	ID        string
	RoomID    string
	Day       Weekday
	Start     types.TimeString
	End       types.TimeString
	CreatedAt time.Time
}

// AsScheduleSlot projects the booking into schedule-slot form so it can be
// merged into the effective schedule for availability computation
func (b *Booking) AsScheduleSlot() ScheduleSlot {
	return ScheduleSlot{
		RoomID: b.RoomID,
		Day:    b.Day,
		Start:  b.Start,
		End:    b.End,
	}
}
