package book_room

import (
	"fmt"

	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// BookRoomRequest тело запроса на бронирование
type BookRoomRequest struct {
	RoomID string `json:"roomId"`
	Start  string `json:"start"` // HH:MM
	End    string `json:"end"`   // HH:MM
}

// ParseTimes разбирает интервал бронирования из тела запроса
func (r *BookRoomRequest) ParseTimes() (start, end types.TimeString, err error) {
	start, err = types.NewTimeStringFromString(r.Start)
	if err != nil {
		return "", "", fmt.Errorf("invalid start: %v", err)
	}

	end, err = types.NewTimeStringFromString(r.End)
	if err != nil {
		return "", "", fmt.Errorf("invalid end: %v", err)
	}

	return start, end, nil
}
