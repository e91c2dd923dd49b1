package find_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// UseCase use case поиска свободных помещений
type UseCase struct {
	catalog      CatalogProvider
	ledger       BookingLedger
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogProvider, ledger BookingLedger, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		ledger:       ledger,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет поиск свободных помещений.
// Каталог и журнал бронирований читаются целиком до вычисления;
// при любой ошибке каталога частичный результат не возвращается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем текущее время и день запроса
	nowClock := uc.timeProvider.Now()
	now := types.NewTimeString(nowClock)

	day := domain.WeekdayFromTime(nowClock.Weekday())
	if req.Day != nil {
		day = *req.Day
	}

	// 3. Получаем каталог: здания, помещения, расписание
	buildings, err := uc.catalog.GetBuildings(ctx)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to get buildings: %v", err)
		return nil, fmt.Errorf("%w: failed to get buildings: %v", ErrInternal, err)
	}

	// 4. Проверяем существование здания из фильтра
	if req.BuildingID != nil {
		if err := validateBuildingExists(buildings, *req.BuildingID); err != nil {
			uc.logger.Warn("FindAvailableRooms: building id=%s not found", *req.BuildingID)
			return nil, err
		}
	}

	rooms, err := uc.catalog.GetRooms(ctx)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	schedule, err := uc.catalog.GetScheduleSlots(ctx)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 5. Формируем эффективное расписание: повторяющиеся слоты
	// плюс брони журнала на день запроса
	effective := append(schedule, uc.ledger.EffectiveSlotsFor(day)...)

	// 6. Вычисляем доступность
	results := availableRooms(rooms, effective, req.BuildingID, req.Mode, req.CustomTime, now, day)

	queryTime := resolveQueryTime(req.Mode, req.CustomTime, now)

	uc.logger.Info("FindAvailableRooms: mode=%s, day=%s, time=%s, building=%v, found=%d",
		req.Mode, day, queryTime, req.BuildingID, len(results))

	return &Response{
		Day:       day,
		QueryTime: queryTime,
		Rooms:     results,
	}, nil
}
