package book_room

import (
	"time"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// Request модель запроса на бронирование помещения.
// Бронь всегда создается на текущий день
type Request struct {
	RoomID string           // ID помещения
	Start  types.TimeString // Время начала
	End    types.TimeString // Время конца
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string           // ID созданной брони
	RoomID    string           // ID помещения
	Day       domain.Weekday   // День недели брони (сегодня)
	Start     types.TimeString // Время начала
	End       types.TimeString // Время конца
	CreatedAt time.Time        // Время создания
}
