package service

import (
	"context"
	"fmt"

	"geocoding-client/googlegeo"
	"geocoding-client/internal/models"
)

// QueryDefaults are applied to every upstream query the services build.
// Zero values leave the corresponding parameter unset.
type QueryDefaults struct {
	Language googlegeo.Language
	Region   googlegeo.Region
}

// GeoCodeService contains the core business logic for geocoding operations
type GeoCodeService struct {
	client   GeoCodeClient
	defaults QueryDefaults
}

// Client interface for dependency injection, satisfied by *googlegeo.Connection
type GeoCodeClient interface {
	Geocode(ctx context.Context, q googlegeo.GeocodeQuery) ([]googlegeo.Reply, error)
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(client GeoCodeClient, defaults QueryDefaults) *GeoCodeService {
	return &GeoCodeService{client: client, defaults: defaults}
}

// Geocode resolves an address through the upstream geocoding API
func (s *GeoCodeService) Geocode(ctx context.Context, address string) ([]models.Location, error) {
	if address == "" {
		return nil, fmt.Errorf("service: address cannot be empty")
	}

	query := googlegeo.NewGeocodeQuery(googlegeo.Address(address))
	if s.defaults.Language != "" {
		query = query.Language(s.defaults.Language)
	}
	if s.defaults.Region != "" {
		query = query.Region(s.defaults.Region)
	}

	replies, err := s.client.Geocode(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to geocode address: %w", err)
	}

	return toLocations(replies), nil
}

func toLocations(replies []googlegeo.Reply) []models.Location {
	locations := make([]models.Location, 0, len(replies))
	for _, r := range replies {
		locations = append(locations, toLocation(r))
	}
	return locations
}

func toLocation(r googlegeo.Reply) models.Location {
	return models.Location{
		FormattedAddress: r.FormattedAddress,
		PlaceID:          r.PlaceID,
		Latitude:         r.Geometry.Location.Latitude(),
		Longitude:        r.Geometry.Location.Longitude(),
		Types:            r.Types.Labels(),
	}
}
