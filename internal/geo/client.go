package geo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoRoute is returned when the routing service finds no driving route
// between the two points.
var ErrNoRoute = errors.New("no route found")

// HTTPStatusError is returned when the remote server responds with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	Status     string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("http status response from %s: %s", e.URL, e.Status)
}

const DefaultUserAgent = "trip-cost-calculator/1.0 (+https://kalkulatorpaliwa.pl)"

// Options configures the HTTP collaborators.
type Options struct {
	NominatimBaseURL string
	ORSBaseURL       string
	ORSAPIKey        string
	OSRMBaseURL      string
	UserAgent        string
	Timeout          time.Duration
}

func DefaultOptions() Options {
	return Options{
		NominatimBaseURL: "https://nominatim.openstreetmap.org",
		ORSBaseURL:       "https://api.openrouteservice.org",
		OSRMBaseURL:      "https://router.project-osrm.org",
		UserAgent:        DefaultUserAgent,
		Timeout:          10 * time.Second,
	}
}

type httpClient struct {
	client    *http.Client
	userAgent string
	headers   map[string]string
}

func newHTTPClient(opts Options, headers map[string]string) *httpClient {
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &httpClient{
		client:    &http.Client{Timeout: opts.Timeout},
		userAgent: userAgent,
		headers:   headers,
	}
}

// getJSON issues a GET and decodes the JSON body into out. No retries.
func (c *httpClient) getJSON(ctx context.Context, url string, out any) error {
	log.Printf("GET %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from %s: %w", url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close body: %v", err)
		}
	}()

	if resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &HTTPStatusError{URL: url, Status: resp.Status, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
