package find_available_rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/ptr"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

func room(id, buildingID string) domain.Room {
	return domain.Room{
		ID:         id,
		BuildingID: buildingID,
		Name:       "Room " + id,
	}
}

func slot(roomID string, day domain.Weekday, start, end string) domain.ScheduleSlot {
	return domain.ScheduleSlot{
		RoomID: roomID,
		Day:    day,
		Start:  types.TimeString(start),
		End:    types.TimeString(end),
	}
}

func roomIDs(result []domain.RoomAvailability) []string {
	ids := make([]string, len(result))
	for i, r := range result {
		ids[i] = r.Room.ID
	}
	return ids
}

func TestAvailableRooms_NoSchedule(t *testing.T) {
	rooms := []domain.Room{room("r1", "b1")}

	result := availableRooms(rooms, nil, nil, domain.ModeNow, nil, "10:00", domain.Monday)

	require.Len(t, result, 1)
	assert.Equal(t, "r1", result[0].Room.ID)
	assert.Equal(t, domain.EndOfDay, result[0].AvailableUntil)
}

func TestAvailableRooms_BusyRoomExcluded(t *testing.T) {
	rooms := []domain.Room{room("r1", "b1"), room("r2", "b1")}
	schedule := []domain.ScheduleSlot{
		slot("r1", domain.Monday, "10:00", "12:00"),
	}

	t.Run("inside slot", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "11:00", domain.Monday)
		assert.Equal(t, []string{"r2"}, roomIDs(result))
	})

	t.Run("slot start is inclusive", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "10:00", domain.Monday)
		assert.Equal(t, []string{"r2"}, roomIDs(result))
	})

	t.Run("slot end is exclusive", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "12:00", domain.Monday)
		assert.Equal(t, []string{"r1", "r2"}, roomIDs(result))
	})

	t.Run("before slot room is free until slot start", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "09:00", domain.Monday)
		require.Len(t, result, 2)
		assert.Equal(t, "r1", result[0].Room.ID)
		assert.Equal(t, types.TimeString("10:00"), result[0].AvailableUntil)
	})
}

func TestAvailableRooms_AvailableUntil(t *testing.T) {
	rooms := []domain.Room{room("r1", "b1")}
	schedule := []domain.ScheduleSlot{
		// Слоты заданы не по порядку: вычисление должно их сортировать
		slot("r1", domain.Monday, "16:00", "18:00"),
		slot("r1", domain.Monday, "10:00", "12:00"),
	}

	t.Run("earliest future slot start wins", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "09:00", domain.Monday)
		require.Len(t, result, 1)
		assert.Equal(t, types.TimeString("10:00"), result[0].AvailableUntil)
	})

	t.Run("gap between slots", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "13:00", domain.Monday)
		require.Len(t, result, 1)
		assert.Equal(t, types.TimeString("16:00"), result[0].AvailableUntil)
	})

	t.Run("after last slot free until end of day", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "18:30", domain.Monday)
		require.Len(t, result, 1)
		assert.Equal(t, domain.EndOfDay, result[0].AvailableUntil)
	})
}

func TestAvailableRooms_NextHourMode(t *testing.T) {
	rooms := []domain.Room{
		room("short", "b1"),
		room("long", "b1"),
		room("free", "b1"),
	}
	schedule := []domain.ScheduleSlot{
		slot("short", domain.Monday, "09:30", "10:00"), // свободно 30 минут
		slot("long", domain.Monday, "11:00", "12:00"),  // свободно 2 часа
	}

	t.Run("rooms free less than an hour are excluded", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNextHour, nil, "09:00", domain.Monday)
		assert.Equal(t, []string{"long", "free"}, roomIDs(result))
	})

	t.Run("exactly one hour is enough", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNextHour, nil, "10:00", domain.Monday)
		// short освободилось, до 11:00 ровно час у long
		assert.Equal(t, []string{"long", "short", "free"}, roomIDs(result))
	})

	t.Run("next_hour is subset of now", func(t *testing.T) {
		now := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "09:00", domain.Monday)
		nextHour := availableRooms(rooms, schedule, nil, domain.ModeNextHour, nil, "09:00", domain.Monday)

		nowIDs := roomIDs(now)
		for _, id := range roomIDs(nextHour) {
			assert.Contains(t, nowIDs, id)
		}
		assert.Less(t, len(nextHour), len(now))
	})

	t.Run("window clipped at end of day", func(t *testing.T) {
		// 23:30 + час выходит за пределы суток: ограничение не применяется
		lateSchedule := []domain.ScheduleSlot{
			slot("short", domain.Monday, "23:45", "23:59"),
		}
		result := availableRooms(rooms, lateSchedule, nil, domain.ModeNextHour, nil, "23:30", domain.Monday)
		assert.Equal(t, []string{"short", "long", "free"}, roomIDs(result))
	})
}

func TestAvailableRooms_CustomMode(t *testing.T) {
	rooms := []domain.Room{room("r1", "b1")}
	schedule := []domain.ScheduleSlot{
		slot("r1", domain.Monday, "14:00", "15:00"),
	}

	t.Run("uses custom time instead of now", func(t *testing.T) {
		customTime := ptr.Ptr(types.TimeString("14:30"))
		result := availableRooms(rooms, schedule, nil, domain.ModeCustom, customTime, "09:00", domain.Monday)
		assert.Empty(t, result)
	})

	t.Run("falls back to now when custom time missing", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeCustom, nil, "14:30", domain.Monday)
		assert.Empty(t, result)
	})
}

func TestAvailableRooms_BuildingFilter(t *testing.T) {
	rooms := []domain.Room{
		room("a1", "b1"),
		room("a2", "b2"),
		room("a3", "b1"),
	}

	t.Run("nil filter returns all buildings", func(t *testing.T) {
		result := availableRooms(rooms, nil, nil, domain.ModeNow, nil, "10:00", domain.Monday)
		assert.Len(t, result, 3)
	})

	t.Run("filter keeps only matching building", func(t *testing.T) {
		result := availableRooms(rooms, nil, ptr.Ptr("b1"), domain.ModeNow, nil, "10:00", domain.Monday)
		assert.Equal(t, []string{"a1", "a3"}, roomIDs(result))
	})
}

func TestAvailableRooms_DayFilter(t *testing.T) {
	rooms := []domain.Room{room("r1", "b1")}
	schedule := []domain.ScheduleSlot{
		slot("r1", domain.Monday, "10:00", "12:00"),
		slot("r1", domain.Tuesday, "09:00", "18:00"),
	}

	t.Run("only slots of the query day count", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "11:00", domain.Wednesday)
		require.Len(t, result, 1)
		assert.Equal(t, domain.EndOfDay, result[0].AvailableUntil)
	})

	t.Run("busy on the query day", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "11:00", domain.Tuesday)
		assert.Empty(t, result)
	})
}

func TestAvailableRooms_Ordering(t *testing.T) {
	rooms := []domain.Room{
		room("late", "b1"),
		room("early", "b1"),
		room("allday", "b1"),
	}
	schedule := []domain.ScheduleSlot{
		slot("late", domain.Monday, "16:00", "17:00"),
		slot("early", domain.Monday, "10:00", "11:00"),
	}

	result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "09:00", domain.Monday)

	// Сортировка по availableUntil по возрастанию
	assert.Equal(t, []string{"early", "late", "allday"}, roomIDs(result))
}

func TestAvailableRooms_StableTieBreak(t *testing.T) {
	rooms := []domain.Room{
		room("first", "b1"),
		room("second", "b1"),
		room("third", "b1"),
	}
	schedule := []domain.ScheduleSlot{
		slot("first", domain.Monday, "12:00", "13:00"),
		slot("second", domain.Monday, "12:00", "14:00"),
		slot("third", domain.Monday, "12:00", "15:00"),
	}

	// Все три свободны до 12:00: исходный порядок помещений сохраняется
	result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "09:00", domain.Monday)
	assert.Equal(t, []string{"first", "second", "third"}, roomIDs(result))
}

func TestAvailableRooms_OverlappingSlots(t *testing.T) {
	rooms := []domain.Room{room("r1", "b1")}
	schedule := []domain.ScheduleSlot{
		slot("r1", domain.Monday, "10:00", "14:00"),
		slot("r1", domain.Monday, "12:00", "16:00"),
	}

	t.Run("busy inside either overlapping slot", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "15:00", domain.Monday)
		assert.Empty(t, result)
	})

	t.Run("free before overlap", func(t *testing.T) {
		result := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "09:00", domain.Monday)
		require.Len(t, result, 1)
		assert.Equal(t, types.TimeString("10:00"), result[0].AvailableUntil)
	})
}

func TestAvailableRooms_Idempotent(t *testing.T) {
	rooms := []domain.Room{
		room("r1", "b1"),
		room("r2", "b2"),
	}
	schedule := []domain.ScheduleSlot{
		slot("r1", domain.Monday, "10:00", "12:00"),
	}

	first := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "09:00", domain.Monday)
	second := availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "09:00", domain.Monday)

	assert.Equal(t, first, second)
}

func TestAvailableRooms_DoesNotMutateInput(t *testing.T) {
	rooms := []domain.Room{room("r1", "b1")}
	schedule := []domain.ScheduleSlot{
		slot("r1", domain.Monday, "16:00", "18:00"),
		slot("r1", domain.Monday, "10:00", "12:00"),
	}

	_ = availableRooms(rooms, schedule, nil, domain.ModeNow, nil, "09:00", domain.Monday)

	// Входное расписание не переупорядочивается
	assert.Equal(t, types.TimeString("16:00"), schedule[0].Start)
	assert.Equal(t, types.TimeString("10:00"), schedule[1].Start)
}

func TestResolveQueryTime(t *testing.T) {
	now := types.TimeString("09:00")

	t.Run("now mode uses clock", func(t *testing.T) {
		assert.Equal(t, now, resolveQueryTime(domain.ModeNow, nil, now))
	})

	t.Run("next_hour mode uses clock", func(t *testing.T) {
		custom := ptr.Ptr(types.TimeString("15:00"))
		assert.Equal(t, now, resolveQueryTime(domain.ModeNextHour, custom, now))
	})

	t.Run("custom mode uses custom time", func(t *testing.T) {
		custom := ptr.Ptr(types.TimeString("15:00"))
		assert.Equal(t, *custom, resolveQueryTime(domain.ModeCustom, custom, now))
	})

	t.Run("custom mode without time falls back to clock", func(t *testing.T) {
		assert.Equal(t, now, resolveQueryTime(domain.ModeCustom, nil, now))
	})
}
