package find_available_rooms

import (
	"context"

	findRooms "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_available_rooms"
)

type FindAvailableRoomsUseCase interface {
	Execute(ctx context.Context, req *findRooms.Request) (*findRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
