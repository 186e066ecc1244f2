package googlegeo

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidCoordinates reports a latitude or longitude outside the valid
// degree ranges, or a non-finite value.
var ErrInvalidCoordinates = errors.New("coordinates outside valid range")

// Coordinates is a validated latitude/longitude pair in decimal degrees.
// Values are immutable once constructed; comparison with == is structural.
type Coordinates struct {
	lat float64
	lng float64
}

// NewCoordinates validates lat and lng and returns the pair. Latitude must be
// within [-90, 90] and longitude within [-180, 180]; values are never clamped.
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if !finite(lat) || !finite(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, fmt.Errorf("googlegeo: (%v,%v): %w", lat, lng, ErrInvalidCoordinates)
	}
	return Coordinates{lat: lat, lng: lng}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinates) Latitude() float64 { return c.lat }

// Longitude returns the longitude in decimal degrees.
func (c Coordinates) Longitude() float64 { return c.lng }

// String renders the pair as "<lat>,<lng>" at the full precision supplied at
// construction, the form the API expects for the latlng parameter.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.lng, 'f', -1, 64)
}

// UnmarshalJSON decodes the wire form {"lat": ..., "lng": ...} and applies
// the same validation as NewCoordinates.
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var wire struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	parsed, err := NewCoordinates(wire.Lat, wire.Lng)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON encodes the pair back to the wire form {"lat": ..., "lng": ...}.
func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}{Lat: c.lat, Lng: c.lng})
}

// Viewport is a bounding box defined by its northeast and southwest corners.
type Viewport struct {
	Northeast Coordinates `json:"northeast"`
	Southwest Coordinates `json:"southwest"`
}

// query renders the viewport in the API's bounds parameter form:
// two coordinate pairs, southwest first.
func (v Viewport) query() string {
	return v.Southwest.String() + "|" + v.Northeast.String()
}
