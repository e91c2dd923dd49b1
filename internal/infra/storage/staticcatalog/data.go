package staticcatalog

import (
	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/ptr"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// campusBuildings здания кампуса
func campusBuildings() []domain.Building {
	return []domain.Building{
		{ID: "samsung", Name: "Samsung Building"},
		{ID: "nb", Name: "NB Building"},
		{ID: "main", Name: "Main Building"},
	}
}

// campusRooms помещения кампуса
func campusRooms() []domain.Room {
	return []domain.Room{
		// Samsung Building
		{ID: "samsung-101", BuildingID: "samsung", Name: "Samsung 101", Floor: ptr.Ptr(1)},
		{ID: "samsung-102", BuildingID: "samsung", Name: "Samsung 102", Floor: ptr.Ptr(1)},
		{ID: "samsung-201", BuildingID: "samsung", Name: "Samsung 201", Floor: ptr.Ptr(2)},
		// NB Building
		{ID: "nb-201", BuildingID: "nb", Name: "NB 201", Floor: ptr.Ptr(2)},
		{ID: "nb-202", BuildingID: "nb", Name: "NB 202", Floor: ptr.Ptr(2)},
		// Main Building
		{ID: "main-301", BuildingID: "main", Name: "Main 301", Floor: ptr.Ptr(3)},
		{ID: "main-302", BuildingID: "main", Name: "Main 302", Floor: ptr.Ptr(3)},
	}
}

// campusSchedule еженедельное расписание занятости по будним дням.
// main-302 расписания не имеет и почти всегда свободна
func campusSchedule() []domain.ScheduleSlot {
	weekdays := []domain.Weekday{
		domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday,
	}

	slot := func(roomID string, day domain.Weekday, start, end string) domain.ScheduleSlot {
		return domain.ScheduleSlot{
			RoomID: roomID,
			Day:    day,
			Start:  types.TimeString(start),
			End:    types.TimeString(end),
		}
	}

	slots := make([]domain.ScheduleSlot, 0, len(weekdays)*5)
	for _, day := range weekdays {
		slots = append(slots,
			slot("samsung-101", day, "10:00", "12:00"),
			slot("samsung-102", day, "09:00", "10:30"),
			slot("nb-201", day, "14:00", "15:00"),
			slot("nb-202", day, "16:00", "18:00"),
			slot("main-301", day, "13:00", "17:00"),
		)
	}

	return slots
}
