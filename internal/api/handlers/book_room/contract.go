package book_room

import (
	"context"

	"github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// FinderService интерфейс оркестратора поисковых сессий
type FinderService interface {
	Book(ctx context.Context, userID int64, roomID string, start, end types.TimeString) (finder.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
