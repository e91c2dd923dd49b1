package cancel_room_bookings

import (
	"context"

	"github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
)

// FinderService интерфейс оркестратора поисковых сессий
type FinderService interface {
	CancelBookings(ctx context.Context, userID int64, roomID string) (finder.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
