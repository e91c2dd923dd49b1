package find_available_rooms

import (
	"sort"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// resolveQueryTime вычисляет фактическое время запроса.
// Для режима custom без указанного времени используется текущее время
func resolveQueryTime(mode domain.TimeMode, customTime *types.TimeString, now types.TimeString) types.TimeString {
	if mode == domain.ModeCustom && customTime != nil && !customTime.IsZero() {
		return *customTime
	}
	return now
}

// availableRooms вычисляет список свободных помещений на указанный день
// и время. Чистая функция: не читает часы, не мутирует входные данные.
//
// Помещение исключается, если queryTime попадает в любой его слот [start, end).
// Иначе availableUntil - начало ближайшего слота строго после queryTime,
// либо конец дня (23:59), если таких слотов нет. В режиме next_hour
// дополнительно исключаются помещения, свободные меньше часа.
// Результат отсортирован по availableUntil по возрастанию, при равенстве
// сохраняется исходный порядок помещений
func availableRooms(
	rooms []domain.Room,
	schedule []domain.ScheduleSlot,
	buildingID *string,
	mode domain.TimeMode,
	customTime *types.TimeString,
	now types.TimeString,
	day domain.Weekday,
) []domain.RoomAvailability {
	queryTime := resolveQueryTime(mode, customTime, now)
	requireOneHour := mode == domain.ModeNextHour

	// Порог для режима next_hour. Если queryTime + 1 час выходит за пределы
	// суток, ограничение не применяется (окно упирается в конец дня)
	var oneHourLater types.TimeString
	hasOneHourThreshold := false
	if requireOneHour {
		if t, err := queryTime.AddMinutes(domain.NextHourMinutes); err == nil {
			oneHourLater = t
			hasOneHourThreshold = true
		}
	}

	daySlots := make([]domain.ScheduleSlot, 0, len(schedule))
	for _, slot := range schedule {
		if slot.Day == day {
			daySlots = append(daySlots, slot)
		}
	}

	result := make([]domain.RoomAvailability, 0, len(rooms))

	for _, room := range rooms {
		if buildingID != nil && !room.InBuilding(*buildingID) {
			continue
		}

		slots := make([]domain.ScheduleSlot, 0)
		for _, slot := range daySlots {
			if slot.RoomID == room.ID {
				slots = append(slots, slot)
			}
		}
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].Start.IsBefore(slots[j].Start)
		})

		// Занято прямо сейчас - помещение исключается
		busy := false
		for i := range slots {
			if slots[i].Contains(queryTime) {
				busy = true
				break
			}
		}
		if busy {
			continue
		}

		// Ближайший слот строго после queryTime определяет availableUntil
		availableUntil := domain.EndOfDay
		for i := range slots {
			if slots[i].Start.IsAfter(queryTime) {
				availableUntil = slots[i].Start
				break
			}
		}

		if requireOneHour && hasOneHourThreshold && availableUntil.IsBefore(oneHourLater) {
			continue
		}

		result = append(result, domain.RoomAvailability{
			Room:           room,
			AvailableUntil: availableUntil,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AvailableUntil.IsBefore(result[j].AvailableUntil)
	})

	return result
}
