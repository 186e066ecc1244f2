package googlegeo

// AddressComponent is one token of a decomposed address, such as a street
// number or a country.
type AddressComponent struct {
	// LongName is the full description of the component.
	LongName string `json:"long_name"`
	// ShortName is an abbreviated name where one exists, e.g. "AK" for the
	// state of Alaska.
	ShortName string           `json:"short_name"`
	Types     Set[AddressType] `json:"types"`
}

// Geometry carries the positional detail of a result.
type Geometry struct {
	Location     Coordinates  `json:"location"`
	LocationType LocationType `json:"location_type"`
	// Viewport is the recommended viewport for displaying the result.
	Viewport Viewport `json:"viewport"`
	// Bounds can fully contain the result and may differ from the
	// recommended viewport. Absent for most results.
	Bounds *Viewport `json:"bounds,omitempty"`
}

// Reply is one candidate result for a query.
type Reply struct {
	AddressComponents []AddressComponent `json:"address_components"`
	// FormattedAddress is the human-readable address. It should not be
	// parsed; use AddressComponents instead.
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	// PlaceID is an opaque identifier usable with other Google APIs. It is
	// never validated locally.
	PlaceID string `json:"place_id"`
	// PostcodeLocalities lists the localities in a postal code result that
	// spans more than one.
	PostcodeLocalities []string         `json:"postcode_localities,omitempty"`
	Types              Set[AddressType] `json:"types"`
}

// envelope is the raw decoded wire body. Results are meaningful only when
// the status is a success.
type envelope struct {
	Status       Status  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Results      []Reply `json:"results"`
}
