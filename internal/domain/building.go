package domain

// Building represents a campus building that contains bookable rooms
type Building struct {
	ID   string
	Name string
}

// Room represents a single bookable room inside a building
type Room struct {
	ID         string
	BuildingID string
	Name       string
	Capacity   *int // optional, nil = unknown
	Floor      *int // optional, nil = unknown
}

// InBuilding returns true if the room belongs to the given building
func (r *Room) InBuilding(buildingID string) bool {
	return r.BuildingID == buildingID
}
