package googlegeo

import (
	"errors"
	"net/url"
	"sort"
	"strings"
)

// ErrEmptyPlace reports a forward geocode whose locator carries neither an
// address nor component filters.
var ErrEmptyPlace = errors.New("place must contain an address or component filters")

// Place is the forward-geocode locator: either a free-text address or a set
// of component filter rules. The constructors guarantee that exactly one
// variant is populated, so encoding never has to arbitrate between the two.
type Place struct {
	address    string
	components []ComponentFilterRule
}

// Address builds a Place from a free-text street address in the format used
// by the national postal service of the country concerned.
func Address(address string) Place {
	return Place{address: address}
}

// Components builds a Place from component filter rules. Duplicate rules are
// collapsed and the encoding order is fixed lexicographically.
func Components(rules ...ComponentFilterRule) Place {
	seen := make(map[ComponentFilterRule]struct{}, len(rules))
	kept := make([]ComponentFilterRule, 0, len(rules))
	for _, r := range rules {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		kept = append(kept, r)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].String() < kept[j].String() })
	return Place{components: kept}
}

// apply writes the locator under exactly one of the address or components
// keys.
func (p Place) apply(v url.Values) error {
	switch {
	case p.address != "":
		v.Set("address", p.address)
	case len(p.components) > 0:
		tokens := make([]string, len(p.components))
		for i, r := range p.components {
			tokens[i] = r.String()
		}
		v.Set("components", strings.Join(tokens, "|"))
	default:
		return ErrEmptyPlace
	}
	return nil
}

// GeocodeQuery is a forward-geocode request: a mandatory locator plus
// optional viewport bias, language and region. Queries are immutable values;
// every chaining call returns an updated copy and the last write to a field
// wins. Unset optionals are omitted from the encoded request entirely.
type GeocodeQuery struct {
	place    Place
	bounds   *Viewport
	language Language
	region   Region
}

// NewGeocodeQuery builds a query for the given locator.
func NewGeocodeQuery(place Place) GeocodeQuery {
	return GeocodeQuery{place: place}
}

// Bounds sets the viewport within which to bias results more prominently.
// The bias only influences results, it does not restrict them.
func (q GeocodeQuery) Bounds(v Viewport) GeocodeQuery {
	q.bounds = &v
	return q
}

// Language sets the language in which to return results.
func (q GeocodeQuery) Language(l Language) GeocodeQuery {
	q.language = l
	return q
}

// Region sets the region bias. Like Bounds, it influences rather than
// restricts results.
func (q GeocodeQuery) Region(r Region) GeocodeQuery {
	q.region = r
	return q
}

func (q GeocodeQuery) values() (url.Values, error) {
	v := url.Values{}
	if err := q.place.apply(v); err != nil {
		return nil, err
	}
	if q.bounds != nil {
		v.Set("bounds", q.bounds.query())
	}
	if q.language != "" {
		v.Set("language", q.language.tag())
	}
	if q.region != "" {
		v.Set("region", q.region.tag())
	}
	return v, nil
}

// DegeocodeQuery is a reverse-geocode request: mandatory coordinates plus
// optional language and result filters. Same value semantics as
// GeocodeQuery.
type DegeocodeQuery struct {
	coords       Coordinates
	language     Language
	resultType   Set[AddressType]
	locationType Set[LocationType]
}

// NewDegeocodeQuery builds a query for the given coordinates.
func NewDegeocodeQuery(coords Coordinates) DegeocodeQuery {
	return DegeocodeQuery{coords: coords}
}

// Language sets the language in which to return results.
func (q DegeocodeQuery) Language(l Language) DegeocodeQuery {
	q.language = l
	return q
}

// ResultType filters replies to the given address types. The filter is
// applied by the service after the search, not during it.
func (q DegeocodeQuery) ResultType(types ...AddressType) DegeocodeQuery {
	q.resultType = NewSet(types...)
	return q
}

// LocationType filters replies to the given location types.
func (q DegeocodeQuery) LocationType(types ...LocationType) DegeocodeQuery {
	q.locationType = NewSet(types...)
	return q
}

func (q DegeocodeQuery) values() (url.Values, error) {
	v := url.Values{}
	v.Set("latlng", q.coords.String())
	if q.language != "" {
		v.Set("language", q.language.tag())
	}
	if q.resultType.Len() > 0 {
		v.Set("result_type", q.resultType.String())
	}
	if q.locationType.Len() > 0 {
		v.Set("location_type", q.locationType.String())
	}
	return v, nil
}
