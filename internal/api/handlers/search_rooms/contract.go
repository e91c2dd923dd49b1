package search_rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
)

// FinderService интерфейс оркестратора поисковых сессий
type FinderService interface {
	Search(ctx context.Context, userID int64) (finder.State, error)
	State(ctx context.Context, userID int64) (finder.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
