package find_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
)

// CatalogProvider интерфейс источника каталога: здания, помещения,
// повторяющееся расписание занятости. Результаты стабильны в пределах
// одного вызова Execute
type CatalogProvider interface {
	GetBuildings(ctx context.Context) ([]domain.Building, error)
	GetRooms(ctx context.Context) ([]domain.Room, error)
	GetScheduleSlots(ctx context.Context) ([]domain.ScheduleSlot, error)
}

// BookingLedger интерфейс журнала локальных бронирований
type BookingLedger interface {
	// EffectiveSlotsFor проецирует брони указанного дня в слоты расписания
	EffectiveSlotsFor(day domain.Weekday) []domain.ScheduleSlot
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
