package googlegeo

// AddressType tags the kind of feature an address or address component
// describes. The catalog is fixed by the API; values appear in reply type
// arrays and in the result_type reverse-geocode filter.
type AddressType string

// The address type catalog, with the API's lower-snake-case wire labels.
const (
	TypeStreetAddress            AddressType = "street_address"
	TypeRoute                    AddressType = "route"
	TypeIntersection             AddressType = "intersection"
	TypePolitical                AddressType = "political"
	TypeCountry                  AddressType = "country"
	TypeAdministrativeAreaLevel1 AddressType = "administrative_area_level_1"
	TypeAdministrativeAreaLevel2 AddressType = "administrative_area_level_2"
	TypeAdministrativeAreaLevel3 AddressType = "administrative_area_level_3"
	TypeAdministrativeAreaLevel4 AddressType = "administrative_area_level_4"
	TypeAdministrativeAreaLevel5 AddressType = "administrative_area_level_5"
	TypeColloquialArea           AddressType = "colloquial_area"
	TypeLocality                 AddressType = "locality"
	TypeWard                     AddressType = "ward"
	TypeSublocality              AddressType = "sublocality"
	TypeNeighborhood             AddressType = "neighborhood"
	TypePremise                  AddressType = "premise"
	TypeSubpremise               AddressType = "subpremise"
	TypePostalCode               AddressType = "postal_code"
	TypeNaturalFeature           AddressType = "natural_feature"
	TypeAirport                  AddressType = "airport"
	TypePark                     AddressType = "park"
	TypePointOfInterest          AddressType = "point_of_interest"
	TypeFloor                    AddressType = "floor"
	TypeEstablishment            AddressType = "establishment"
	TypeParking                  AddressType = "parking"
	TypePostBox                  AddressType = "post_box"
	TypePostalTown               AddressType = "postal_town"
	TypeRoom                     AddressType = "room"
	TypeStreetNumber             AddressType = "street_number"
	TypeBusStation               AddressType = "bus_station"
	TypeTrainStation             AddressType = "train_station"
	TypeTransitStation           AddressType = "transit_station"
)

func (t AddressType) tag() string { return string(t) }
