package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"geocoding-client/googlegeo"
	"geocoding-client/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReverseGeocodeService is a mock implementation of the GeoCodingService interface
type MockReverseGeocodeService struct {
	mock.Mock
}

func (m *MockReverseGeocodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Location, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func TestReverseGeocodeHandler_ReverseGeocode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	location := &models.Location{
		FormattedAddress: "1600 Amphitheatre Pkwy, Mountain View, CA 94043, USA",
		PlaceID:          "ChIJ2eUgeAK6j4ARbn5u_wAGqWA",
		Latitude:         37.4224,
		Longitude:        -122.0856,
	}

	tests := []struct {
		name           string
		lat            string
		lon            string
		callService    bool
		mockLocation   *models.Location
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing parameters",
			lat:            "",
			lon:            "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameters 'lat' and 'lon'"},
		},
		{
			name:           "invalid latitude format",
			lat:            "abc",
			lon:            "-122.0856",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid latitude format"},
		},
		{
			name:           "invalid longitude format",
			lat:            "37.4224",
			lon:            "abc",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid longitude format"},
		},
		{
			name:           "successful reverse geocoding",
			lat:            "37.4224",
			lon:            "-122.0856",
			callService:    true,
			mockLocation:   location,
			expectedStatus: http.StatusOK,
			expectedBody:   location,
		},
		{
			name:           "no address found",
			lat:            "0",
			lon:            "0",
			callService:    true,
			mockLocation:   nil,
			expectedStatus: http.StatusNotFound,
			expectedBody:   gin.H{"error": "no address found near the specified coordinates"},
		},
		{
			name:           "coordinates out of range",
			lat:            "95",
			lon:            "-122.0856",
			callService:    true,
			mockError:      fmt.Errorf("service: %w", googlegeo.ErrInvalidCoordinates),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "coordinates out of range"},
		},
		{
			name:           "request denied upstream",
			lat:            "37.4224",
			lon:            "-122.0856",
			callService:    true,
			mockError:      &googlegeo.StatusError{Status: googlegeo.StatusRequestDenied},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   gin.H{"error": "geocoding request denied"},
		},
		{
			name:           "service error",
			lat:            "37.4224",
			lon:            "-122.0856",
			callService:    true,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockReverseGeocodeService)
			handler := NewReverseGeocodeHandler(mockSvc)

			if tt.callService {
				mockSvc.On("ReverseGeocode", mock.Anything, mock.Anything, mock.Anything).Return(tt.mockLocation, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/reverse-geocode", nil)
			q := req.URL.Query()
			if tt.lat != "" {
				q.Add("lat", tt.lat)
			}
			if tt.lon != "" {
				q.Add("lon", tt.lon)
			}
			req.URL.RawQuery = q.Encode()
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.ReverseGeocode(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			expectedJSON, err := json.Marshal(tt.expectedBody)
			assert.NoError(t, err)
			assert.JSONEq(t, string(expectedJSON), w.Body.String())

			if tt.callService {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}
