package station

// StationPayload creates or updates a police station.
type StationPayload struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Address   string  `json:"address" validate:"required,max=500"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}
