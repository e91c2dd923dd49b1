package update_criteria

import (
	"context"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// FinderService интерфейс оркестратора поисковых сессий
type FinderService interface {
	SelectBuilding(ctx context.Context, userID int64, buildingID *string) (finder.State, error)
	SelectTimeMode(ctx context.Context, userID int64, mode domain.TimeMode) (finder.State, error)
	SelectCustomTime(ctx context.Context, userID int64, t types.TimeString) (finder.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
