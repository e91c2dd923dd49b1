package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomFinderService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// Repository репозиторий каталога: здания, помещения, расписание занятости.
// Данные справочные, репозиторий их только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBuildings возвращает список всех зданий
func (r *Repository) GetBuildings(ctx context.Context) ([]domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("buildings").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBuildings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBuildings - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	buildings := make([]domain.Building, 0)
	for rows.Next() {
		var b domain.Building
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("%w: GetBuildings - scan building: %v", ErrScanRow, err)
		}
		buildings = append(buildings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBuildings - iterate rows: %v", ErrScanRow, err)
	}

	return buildings, nil
}

// GetRooms возвращает список всех помещений
func (r *Repository) GetRooms(ctx context.Context) ([]domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "building_id", "name", "capacity", "floor").
		From("rooms").
		OrderBy("building_id", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRooms - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var (
			room     domain.Room
			capacity sql.NullInt64
			floor    sql.NullInt64
		)

		if err := rows.Scan(&room.ID, &room.BuildingID, &room.Name, &capacity, &floor); err != nil {
			return nil, fmt.Errorf("%w: GetRooms - scan room: %v", ErrScanRow, err)
		}

		if capacity.Valid {
			v := int(capacity.Int64)
			room.Capacity = &v
		}
		if floor.Valid {
			v := int(floor.Int64)
			room.Floor = &v
		}

		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRooms - iterate rows: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetScheduleSlots возвращает все повторяющиеся слоты занятости
func (r *Repository) GetScheduleSlots(ctx context.Context) ([]domain.ScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("room_id", "day_of_week", "start_time", "end_time").
		From("schedule_slots").
		OrderBy("room_id", "day_of_week", "start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleSlots - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.ScheduleSlot, 0)
	for rows.Next() {
		var (
			slot     domain.ScheduleSlot
			dayRaw   string
			startRaw string
			endRaw   string
		)

		if err := rows.Scan(&slot.RoomID, &dayRaw, &startRaw, &endRaw); err != nil {
			return nil, fmt.Errorf("%w: GetScheduleSlots - scan slot: %v", ErrScanRow, err)
		}

		day, err := domain.ParseWeekday(dayRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: GetScheduleSlots - invalid day_of_week: %v", ErrScanRow, err)
		}
		slot.Day = day

		slot.Start, err = types.NewTimeStringFromString(startRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: GetScheduleSlots - invalid start_time: %v", ErrScanRow, err)
		}

		slot.End, err = types.NewTimeStringFromString(endRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: GetScheduleSlots - invalid end_time: %v", ErrScanRow, err)
		}

		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetScheduleSlots - iterate rows: %v", ErrScanRow, err)
	}

	return slots, nil
}
