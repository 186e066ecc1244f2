package googlegeo

// LocationType describes the precision of a geocoded location. Values appear
// in reply geometry and in the location_type reverse-geocode filter.
type LocationType string

const (
	// Rooftop is a precise geocode, accurate down to street address.
	Rooftop LocationType = "ROOFTOP"
	// RangeInterpolated is an approximation interpolated between two precise
	// points, usually along a road.
	RangeInterpolated LocationType = "RANGE_INTERPOLATED"
	// GeometricCenter is the geometric center of a polyline or polygon result.
	GeometricCenter LocationType = "GEOMETRIC_CENTER"
	// Approximate is an approximate location.
	Approximate LocationType = "APPROXIMATE"
)

func (t LocationType) tag() string { return string(t) }
