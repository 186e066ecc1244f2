// Package googlegeo is a typed client for the Google geocoding web API.
//
// The package offers two tiers. The Connection tier builds one request per
// call, decodes the reply into typed results and classifies non-success
// statuses; a single Connection may serve any number of concurrent calls.
// The package-level Geocode and Degeocode functions are blocking wrappers
// that run one Connection call with a throwaway client and project the
// results to coordinates or formatted addresses.
package googlegeo

import "context"

// Geocode resolves a free-text address to the coordinates of every candidate
// match, in the order the service ranked them. The first element is the best
// match. A lookup that matches nothing returns an empty slice, not an error.
func Geocode(address string) ([]Coordinates, error) {
	return geocodeWith(NewConnection(ConnectionConfig{}), address)
}

// Degeocode resolves coordinates to the formatted address of every candidate
// match, in the order the service ranked them.
func Degeocode(coords Coordinates) ([]string, error) {
	return degeocodeWith(NewConnection(ConnectionConfig{}), coords)
}

func geocodeWith(conn *Connection, address string) ([]Coordinates, error) {
	replies, err := conn.Geocode(context.Background(), NewGeocodeQuery(Address(address)))
	if err != nil {
		return nil, err
	}
	coords := make([]Coordinates, 0, len(replies))
	for _, r := range replies {
		coords = append(coords, r.Geometry.Location)
	}
	return coords, nil
}

func degeocodeWith(conn *Connection, coords Coordinates) ([]string, error) {
	replies, err := conn.Degeocode(context.Background(), NewDegeocodeQuery(coords))
	if err != nil {
		return nil, err
	}
	addresses := make([]string, 0, len(replies))
	for _, r := range replies {
		addresses = append(addresses, r.FormattedAddress)
	}
	return addresses, nil
}
