package googlegeo

// ComponentKind names the address component a filter rule matches against.
type ComponentKind string

const (
	// ComponentPostalCode matches postal_code and postal_code_prefix.
	ComponentPostalCode ComponentKind = "postal_code"
	// ComponentCountry matches a country name or two-letter ISO 3166-1 code.
	ComponentCountry ComponentKind = "country"
	// ComponentRoute matches the long or short name of a route.
	ComponentRoute ComponentKind = "route"
	// ComponentLocality matches locality and sublocality types.
	ComponentLocality ComponentKind = "locality"
	// ComponentAdministrativeArea matches all administrative_area levels.
	ComponentAdministrativeArea ComponentKind = "administrative_area"
)

// ComponentFilterRule restricts a forward geocode to addresses whose named
// component equals the given value. Rules are only ever encoded into
// requests; they never appear in replies.
type ComponentFilterRule struct {
	Kind  ComponentKind
	Value string
}

func (r ComponentFilterRule) tag() string { return string(r.Kind) }

// String renders the rule in the API's "component:value" form. The value is
// carried verbatim; escaping is left to the URL layer.
func (r ComponentFilterRule) String() string {
	return r.tag() + ":" + r.Value
}
