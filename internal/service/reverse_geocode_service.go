package service

import (
	"context"
	"fmt"

	"geocoding-client/googlegeo"
	"geocoding-client/internal/models"
)

// ReverseGeoCodeService contains the core business logic for reverse geocoding operations
type ReverseGeoCodeService struct {
	client   ReverseGeoCodeClient
	defaults QueryDefaults
}

// ReverseGeoCodeClient interface for dependency injection, satisfied by *googlegeo.Connection
type ReverseGeoCodeClient interface {
	Degeocode(ctx context.Context, q googlegeo.DegeocodeQuery) ([]googlegeo.Reply, error)
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(client ReverseGeoCodeClient, defaults QueryDefaults) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{client: client, defaults: defaults}
}

// ReverseGeocode finds the best-matching address for the given coordinates
// through the upstream geocoding API. A nil location means no match.
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Location, error) {
	coords, err := googlegeo.NewCoordinates(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	query := googlegeo.NewDegeocodeQuery(coords)
	if s.defaults.Language != "" {
		query = query.Language(s.defaults.Language)
	}

	replies, err := s.client.Degeocode(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to reverse geocode: %w", err)
	}

	if len(replies) == 0 {
		return nil, nil
	}

	location := toLocation(replies[0])
	return &location, nil
}
