package find_available_rooms

import (
	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// Request модель запроса на поиск свободных помещений
type Request struct {
	BuildingID *string           // Фильтр по зданию (nil - все здания)
	Mode       domain.TimeMode   // Режим выбора времени запроса
	CustomTime *types.TimeString // Время запроса для режима custom
	Day        *domain.Weekday   // День недели (nil - текущий день)
}

// Response модель ответа со списком свободных помещений
type Response struct {
	Day       domain.Weekday            // День, на который выполнялся запрос
	QueryTime types.TimeString          // Фактическое время запроса
	Rooms     []domain.RoomAvailability // Свободные помещения, отсортированы по availableUntil
}
