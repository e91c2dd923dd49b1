package book_room

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/internal/infra/storage/ledger"
)

// UseCase use case бронирования помещения на текущий день
type UseCase struct {
	catalog      CatalogProvider
	ledger       BookingLedger
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogProvider, bookingLedger BookingLedger, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		ledger:       bookingLedger,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование помещения.
// Конфликты с расписанием и другими бронями не проверяются: бронь
// образует дополнительный слой занятости поверх расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookRoom: room=%s, start=%s, end=%s", req.RoomID, req.Start, req.End)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookRoom: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование помещения
	rooms, err := uc.catalog.GetRooms(ctx)
	if err != nil {
		uc.logger.Error("BookRoom: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	if err := validateRoomExists(rooms, req.RoomID); err != nil {
		uc.logger.Warn("BookRoom: room id=%s not found", req.RoomID)
		return nil, err
	}

	// 3. Бронь создается на текущий день; часы читаются только здесь,
	// на границе, а не внутри журнала
	day := domain.WeekdayFromTime(uc.timeProvider.Now().Weekday())

	// 4. Добавляем бронь в журнал
	booking, err := uc.ledger.Add(req.RoomID, day, req.Start, req.End)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidInterval) {
			uc.logger.Warn("BookRoom: invalid interval %s-%s for room=%s", req.Start, req.End, req.RoomID)
			return nil, ErrInvalidInterval
		}
		uc.logger.Error("BookRoom: failed to add booking: %v", err)
		return nil, fmt.Errorf("%w: failed to add booking: %v", ErrInternal, err)
	}

	uc.logger.Info("BookRoom: successfully created booking id=%s for room=%s on %s",
		booking.ID, booking.RoomID, booking.Day)

	return &Response{
		ID:        booking.ID,
		RoomID:    booking.RoomID,
		Day:       booking.Day,
		Start:     booking.Start,
		End:       booking.End,
		CreatedAt: booking.CreatedAt,
	}, nil
}
