package update_criteria

// UpdateCriteriaRequest тело запроса на изменение критериев поиска.
// Передаются только изменяемые поля; пустой buildingId сбрасывает
// фильтр по зданию (все здания)
type UpdateCriteriaRequest struct {
	BuildingID *string `json:"buildingId,omitempty"`
	Mode       *string `json:"mode,omitempty"`       // now | next_hour | custom
	CustomTime *string `json:"customTime,omitempty"` // HH:MM
}
