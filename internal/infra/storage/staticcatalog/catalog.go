package staticcatalog

import (
	"context"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
)

// Provider каталог на встроенном наборе данных. Используется как источник
// по умолчанию (catalog.source = "static") и как детерминированный каталог
// в тестах. Данные неизменяемы после конструирования, методы возвращают
// копии срезов
type Provider struct {
	buildings []domain.Building
	rooms     []domain.Room
	slots     []domain.ScheduleSlot
}

// New создает провайдер с переданным набором данных
func New(buildings []domain.Building, rooms []domain.Room, slots []domain.ScheduleSlot) *Provider {
	return &Provider{
		buildings: buildings,
		rooms:     rooms,
		slots:     slots,
	}
}

// NewCampus создает провайдер со встроенным набором данных кампуса
func NewCampus() *Provider {
	return New(campusBuildings(), campusRooms(), campusSchedule())
}

// GetBuildings возвращает список всех зданий
func (p *Provider) GetBuildings(_ context.Context) ([]domain.Building, error) {
	out := make([]domain.Building, len(p.buildings))
	copy(out, p.buildings)
	return out, nil
}

// GetRooms возвращает список всех помещений
func (p *Provider) GetRooms(_ context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, len(p.rooms))
	copy(out, p.rooms)
	return out, nil
}

// GetScheduleSlots возвращает все повторяющиеся слоты занятости
func (p *Provider) GetScheduleSlots(_ context.Context) ([]domain.ScheduleSlot, error) {
	out := make([]domain.ScheduleSlot, len(p.slots))
	copy(out, p.slots)
	return out, nil
}
