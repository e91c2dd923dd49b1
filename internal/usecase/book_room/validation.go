package book_room

import (
	"fmt"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}
	if err := req.Start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start: %v", ErrInvalidInput, err)
	}

	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}
	if err := req.End.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end: %v", ErrInvalidInput, err)
	}

	if !req.End.IsAfter(req.Start) {
		return ErrInvalidInterval
	}

	return nil
}

// validateRoomExists проверяет, что помещение присутствует в каталоге
func validateRoomExists(rooms []domain.Room, roomID string) error {
	for i := range rooms {
		if rooms[i].ID == roomID {
			return nil
		}
	}
	return ErrRoomNotFound
}
