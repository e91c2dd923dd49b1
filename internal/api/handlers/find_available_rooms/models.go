package find_available_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-RoomFinderService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	findRooms "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_available_rooms"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	Day       string                              `json:"day"`
	QueryTime string                              `json:"queryTime"`
	Rooms     []handlers.RoomAvailabilityResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findRooms.Response) *AvailableRoomsResponse {
	return &AvailableRoomsResponse{
		Day:       string(resp.Day),
		QueryTime: resp.QueryTime.String(),
		Rooms:     handlers.FromAvailabilityList(resp.Rooms),
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(buildingID, modeStr, timeStr, dayStr string) (*findRooms.Request, error) {
	req := &findRooms.Request{Mode: domain.ModeNow}

	if buildingID != "" {
		req.BuildingID = &buildingID
	}

	if modeStr != "" {
		mode, err := domain.ParseTimeMode(modeStr)
		if err != nil {
			return nil, err
		}
		req.Mode = mode
	}

	if timeStr != "" {
		t, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid time parameter: %v", err)
		}
		req.CustomTime = &t
	}

	if dayStr != "" {
		day, err := domain.ParseWeekday(dayStr)
		if err != nil {
			return nil, err
		}
		req.Day = &day
	}

	return req, nil
}
