package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
	"github.com/cloudbread0714/tayo-taxi-user/internal/observability"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// forwardLimit caps forward candidates; only the first is used but the rest
// are worth logging when a query is ambiguous.
const forwardLimit = 5

// Options tunes provider requests.
type Options struct {
	Language          string // e.g. "ko"; empty leaves the provider default
	Country           string // ISO 3166-1 alpha-2 filter; empty searches worldwide
	RequestsPerSecond int    // client-side rate limit; <= 0 disables it
}

// Client implements domain.Geocoder using the Mapbox Geocoding API.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
	language   string
	country    string
	limiter    *rate.Limiter
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Mapbox geocoding client.
func NewClient(token string, timeout time.Duration, opts Options, metrics *observability.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:  defaultBaseURL,
		language: opts.Language,
		country:  opts.Country,
		metrics:  metrics,
		logger:   logger,
	}
	if opts.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return c
}

// Reverse converts a point to address candidates, most specific first.
func (c *Client) Reverse(ctx context.Context, point domain.GeoPoint) ([]domain.AddressCandidate, error) {
	// Mapbox uses lon,lat order.
	coord := fmt.Sprintf("%.6f,%.6f", point.Longitude, point.Latitude)
	u := fmt.Sprintf("%s/%s.json", c.baseURL, coord)
	params := c.params()

	resp, err := c.doRequest(ctx, u+"?"+params.Encode(), "reverse")
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.AddressCandidate, 0, len(resp.Features))
	for _, f := range resp.Features {
		candidates = append(candidates, f.candidate())
	}
	return candidates, nil
}

// Forward converts free text to candidate points in provider order.
func (c *Client) Forward(ctx context.Context, text string) ([]domain.GeoPoint, error) {
	u := fmt.Sprintf("%s/%s.json", c.baseURL, url.PathEscape(text))
	params := c.params()
	params.Set("limit", fmt.Sprint(forwardLimit))
	if c.country != "" {
		params.Set("country", c.country)
	}

	resp, err := c.doRequest(ctx, u+"?"+params.Encode(), "forward")
	if err != nil {
		return nil, err
	}

	points := make([]domain.GeoPoint, 0, len(resp.Features))
	for _, f := range resp.Features {
		if len(f.Center) != 2 {
			continue
		}
		points = append(points, domain.GeoPoint{Latitude: f.Center[1], Longitude: f.Center[0]})
	}
	if len(points) > 1 {
		c.logger.Debug("ambiguous destination, using first candidate", "query", text, "candidates", len(points))
	}
	return points, nil
}

func (c *Client) params() url.Values {
	params := url.Values{"access_token": {c.token}}
	if c.language != "" {
		params.Set("language", c.language)
	}
	return params
}

func (c *Client) doRequest(ctx context.Context, fullURL, method string) (response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return response{}, fmt.Errorf("%w: %s rate limit wait: %w", domain.ErrGeocodeFailed, method, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return response{}, fmt.Errorf("%w: create request: %w", domain.ErrGeocodeFailed, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.GeocodeAPIDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues(method, "error").Inc()
		return response{}, fmt.Errorf("%w: %s request: %w", domain.ErrGeocodeFailed, method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.metrics.GeocodeRequests.WithLabelValues(method, "error").Inc()
		c.logger.Warn("mapbox API error", "method", method, "status", resp.StatusCode)
		return response{}, fmt.Errorf("%w: mapbox API error: status %d: %s", domain.ErrGeocodeFailed, resp.StatusCode, body)
	}

	var mapboxResp response
	if err := json.NewDecoder(resp.Body).Decode(&mapboxResp); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues(method, "error").Inc()
		return response{}, fmt.Errorf("%w: decode response: %w", domain.ErrGeocodeFailed, err)
	}

	outcome := "success"
	if len(mapboxResp.Features) == 0 {
		outcome = "empty"
	}
	c.metrics.GeocodeRequests.WithLabelValues(method, outcome).Inc()
	return mapboxResp, nil
}

// Mapbox API response types.

type response struct {
	Features []feature `json:"features"`
}

type feature struct {
	ID         string            `json:"id"`
	PlaceType  []string          `json:"place_type"`
	Center     []float64         `json:"center"` // [lon, lat]
	PlaceName  string            `json:"place_name"`
	Text       string            `json:"text"`
	Address    string            `json:"address"` // house number on address features
	Relevance  float64           `json:"relevance"`
	Properties featureProperties `json:"properties"`
	Context    []contextEntry    `json:"context"`
}

type featureProperties struct {
	Address string `json:"address"` // street address on POI features
}

type contextEntry struct {
	ID   string `json:"id"` // "<type>.<id>", e.g. "region.123"
	Text string `json:"text"`
}

// candidate maps a feature onto the administrative area / locality / street triple.
// The feature's own text fills whichever level the feature itself is.
func (f feature) candidate() domain.AddressCandidate {
	levels := make(map[string]string, len(f.Context)+1)
	for _, c := range f.Context {
		typ, _, _ := strings.Cut(c.ID, ".")
		levels[typ] = c.Text
	}
	for _, typ := range f.PlaceType {
		levels[typ] = f.Text
	}

	var street string
	switch {
	case slices.Contains(f.PlaceType, "address"):
		street = strings.TrimSpace(f.Text + " " + f.Address)
	case slices.Contains(f.PlaceType, "poi"):
		street = f.Properties.Address
	}

	locality := levels["place"]
	if locality == "" {
		locality = levels["locality"]
	}
	if locality == "" {
		locality = levels["district"]
	}

	return domain.AddressCandidate{
		AdministrativeArea: levels["region"],
		Locality:           locality,
		Street:             street,
	}
}
