package googlegeo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// DefaultURL is the public geocoding endpoint.
const DefaultURL = "https://maps.google.com/maps/api/geocode/json"

// ConnectionConfig configures a Connection. The zero value targets the
// public endpoint with the default HTTP client and no logging.
type ConnectionConfig struct {
	// BaseURL overrides the endpoint, e.g. for a test server.
	BaseURL string
	// APIKey, when set, is sent as the key parameter on every request.
	APIKey string
	// Client is the shared HTTP transport. Defaults to http.DefaultClient.
	Client *http.Client
	// Logger receives debug-level request and reply logs.
	Logger *zerolog.Logger
}

// Connection issues single-shot requests against the geocoding API. All
// fields are read-only after construction, so one Connection may serve any
// number of concurrent calls; calls share no state with each other.
type Connection struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  zerolog.Logger
}

// NewConnection creates a connection for the geocoding API.
func NewConnection(cfg ConnectionConfig) *Connection {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultURL
	}
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Connection{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  cfg.Client,
		logger:  logger,
	}
}

// Geocode resolves a forward query to its candidate results.
func (c *Connection) Geocode(ctx context.Context, q GeocodeQuery) ([]Reply, error) {
	return c.run(ctx, q)
}

// Degeocode resolves a reverse query to its candidate results.
func (c *Connection) Degeocode(ctx context.Context, q DegeocodeQuery) ([]Reply, error) {
	return c.run(ctx, q)
}

// apiQuery is implemented by both query shapes.
type apiQuery interface {
	values() (url.Values, error)
}

// run drives one request through its full lifecycle: encode the query into a
// request URL, issue a single GET, aggregate and decode the body, classify
// the status. Statuses OK and ZERO_RESULTS resolve to the result list; every
// other status resolves to a *StatusError. Nothing is retried.
func (c *Connection) run(ctx context.Context, q apiQuery) ([]Reply, error) {
	params, err := q.values()
	if err != nil {
		return nil, fmt.Errorf("googlegeo: encode query: %w", err)
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("googlegeo: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("googlegeo: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("googlegeo: read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("googlegeo: decode response: %w", err)
	}

	c.logger.Debug().
		Str("status", string(env.Status)).
		Int("results", len(env.Results)).
		Msg("geocoding reply")

	if !env.Status.ok() {
		return nil, &StatusError{Status: env.Status, Message: env.ErrorMessage}
	}
	return env.Results, nil
}
