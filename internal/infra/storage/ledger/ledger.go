package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// Ledger журнал локальных бронирований. Хранит брони только на время жизни
// процесса - это единственный изменяемый разделяемый ресурс сервиса,
// поэтому все операции сериализуются через RWMutex.
//
// Конфликты с расписанием и другими бронями намеренно не проверяются:
// брони образуют дополнительный слой занятости поверх расписания
type Ledger struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

// New создает пустой журнал бронирований
func New() *Ledger {
	return &Ledger{
		bookings: make([]domain.Booking, 0),
	}
}

// Add добавляет бронирование помещения на указанный день.
// Возвращает ErrInvalidInterval, если end <= start
func (l *Ledger) Add(roomID string, day domain.Weekday, start, end types.TimeString) (*domain.Booking, error) {
	if !end.IsAfter(start) {
		return nil, ErrInvalidInterval
	}

	booking := domain.Booking{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		Day:       day,
		Start:     start,
		End:       end,
		CreatedAt: time.Now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.bookings = append(l.bookings, booking)
	return &booking, nil
}

// Cancel удаляет все бронирования помещения независимо от дня.
// Возвращает количество удаленных броней
func (l *Ledger) Cancel(roomID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.bookings[:0]
	removed := 0
	for _, b := range l.bookings {
		if b.RoomID == roomID {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	l.bookings = kept

	return removed
}

// EffectiveSlotsFor проецирует брони указанного дня в форму слотов
// расписания для слияния с повторяющимся расписанием
func (l *Ledger) EffectiveSlotsFor(day domain.Weekday) []domain.ScheduleSlot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	slots := make([]domain.ScheduleSlot, 0)
	for i := range l.bookings {
		if l.bookings[i].Day != day {
			continue
		}
		slots = append(slots, l.bookings[i].AsScheduleSlot())
	}

	return slots
}

// List возвращает снимок всех бронирований
func (l *Ledger) List() []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}
