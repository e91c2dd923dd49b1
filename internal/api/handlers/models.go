package handlers

import (
	"time"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
)

// BuildingResponse модель здания в HTTP-ответах
type BuildingResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoomResponse модель помещения в HTTP-ответах
type RoomResponse struct {
	ID         string `json:"id"`
	BuildingID string `json:"buildingId"`
	Name       string `json:"name"`
	Capacity   *int   `json:"capacity,omitempty"`
	Floor      *int   `json:"floor,omitempty"`
}

// RoomAvailabilityResponse свободное помещение с временем доступности
type RoomAvailabilityResponse struct {
	Room           RoomResponse `json:"room"`
	AvailableUntil string       `json:"availableUntil"`
}

// BookingResponse модель локальной брони в HTTP-ответах
type BookingResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	Day       string    `json:"day"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	CreatedAt time.Time `json:"createdAt"`
}

// CriteriaResponse текущие выборы фильтра сессии
type CriteriaResponse struct {
	BuildingID *string `json:"buildingId,omitempty"`
	Mode       string  `json:"mode"`
	CustomTime *string `json:"customTime,omitempty"`
}

// FinderStateResponse снимок состояния поисковой сессии
type FinderStateResponse struct {
	Buildings  []BuildingResponse         `json:"buildings"`
	Criteria   CriteriaResponse           `json:"criteria"`
	Day        string                     `json:"day,omitempty"`
	QueryTime  string                     `json:"queryTime,omitempty"`
	Results    []RoomAvailabilityResponse `json:"results"`
	Bookings   []BookingResponse          `json:"bookings"`
	IsSearched bool                       `json:"isSearched"`
	LastError  string                     `json:"lastError,omitempty"`
}

// FromBuilding конвертирует здание в HTTP-модель
func FromBuilding(b domain.Building) BuildingResponse {
	return BuildingResponse{ID: b.ID, Name: b.Name}
}

// FromRoom конвертирует помещение в HTTP-модель
func FromRoom(r domain.Room) RoomResponse {
	return RoomResponse{
		ID:         r.ID,
		BuildingID: r.BuildingID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		Floor:      r.Floor,
	}
}

// FromAvailabilityList конвертирует результаты поиска в HTTP-модель
func FromAvailabilityList(rooms []domain.RoomAvailability) []RoomAvailabilityResponse {
	out := make([]RoomAvailabilityResponse, len(rooms))
	for i, ra := range rooms {
		out[i] = RoomAvailabilityResponse{
			Room:           FromRoom(ra.Room),
			AvailableUntil: ra.AvailableUntil.String(),
		}
	}
	return out
}

// FromBookingList конвертирует брони в HTTP-модель
func FromBookingList(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingResponse{
			ID:        b.ID,
			RoomID:    b.RoomID,
			Day:       string(b.Day),
			Start:     b.Start.String(),
			End:       b.End.String(),
			CreatedAt: b.CreatedAt,
		}
	}
	return out
}

// FromFinderState конвертирует состояние сессии в HTTP-модель
func FromFinderState(state finder.State) *FinderStateResponse {
	buildings := make([]BuildingResponse, len(state.Buildings))
	for i, b := range state.Buildings {
		buildings[i] = FromBuilding(b)
	}

	criteria := CriteriaResponse{
		BuildingID: state.Criteria.BuildingID,
		Mode:       string(state.Criteria.Mode),
	}
	if state.Criteria.CustomTime != nil {
		t := state.Criteria.CustomTime.String()
		criteria.CustomTime = &t
	}

	return &FinderStateResponse{
		Buildings:  buildings,
		Criteria:   criteria,
		Day:        string(state.Day),
		QueryTime:  state.QueryTime.String(),
		Results:    FromAvailabilityList(state.Results),
		Bookings:   FromBookingList(state.Bookings),
		IsSearched: state.IsSearched,
		LastError:  state.LastError,
	}
}
