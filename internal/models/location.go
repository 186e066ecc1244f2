package models

// Location represents a single resolved address, flattened from an upstream
// geocoding result to its human-readable address and precise coordinates.
type Location struct {
	FormattedAddress string   `json:"formatted_address"`
	PlaceID          string   `json:"place_id"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Types            []string `json:"types,omitempty"`
}
