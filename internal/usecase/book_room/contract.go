package book_room

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// CatalogProvider интерфейс источника каталога помещений
type CatalogProvider interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
}

// BookingLedger интерфейс журнала локальных бронирований
type BookingLedger interface {
	Add(roomID string, day domain.Weekday, start, end types.TimeString) (*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
