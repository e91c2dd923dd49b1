package finder

import (
	"context"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	bookRoom "github.com/m04kA/SMC-RoomFinderService/internal/usecase/book_room"
	findRooms "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_available_rooms"
)

// SearchUseCase интерфейс use case поиска свободных помещений
type SearchUseCase interface {
	Execute(ctx context.Context, req *findRooms.Request) (*findRooms.Response, error)
}

// BookUseCase интерфейс use case бронирования помещения
type BookUseCase interface {
	Execute(ctx context.Context, req *bookRoom.Request) (*bookRoom.Response, error)
}

// BookingLedger интерфейс журнала бронирований для отмены и просмотра
type BookingLedger interface {
	Cancel(roomID string) int
	List() []domain.Booking
}

// CatalogProvider интерфейс каталога для загрузки списка зданий
type CatalogProvider interface {
	GetBuildings(ctx context.Context) ([]domain.Building, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
