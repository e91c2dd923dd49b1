package find_available_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	switch req.Mode {
	case domain.ModeNow, domain.ModeNextHour:
		// Время запроса берется из часов
	case domain.ModeCustom:
		if req.CustomTime == nil || req.CustomTime.IsZero() {
			return ErrCustomTimeRequired
		}
		if err := req.CustomTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid custom time: %v", ErrInvalidInput, err)
		}
	default:
		return fmt.Errorf("%w: unknown time mode %q", ErrInvalidInput, req.Mode)
	}

	if req.BuildingID != nil && *req.BuildingID == "" {
		return fmt.Errorf("%w: buildingID must not be empty", ErrInvalidInput)
	}

	return nil
}

// validateBuildingExists проверяет, что здание присутствует в каталоге
func validateBuildingExists(buildings []domain.Building, buildingID string) error {
	for _, b := range buildings {
		if b.ID == buildingID {
			return nil
		}
	}
	return ErrBuildingNotFound
}
