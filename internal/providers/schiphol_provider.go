package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"schiphol-live/flightboard/internal/constants"
	"schiphol-live/flightboard/internal/models/dtos"

	"golang.org/x/time/rate"
)

// fromDateTime layout expected by the flights endpoint, in airport local time
const fromDateTimeLayout = "2006-01-02T15:04:05"

var lastPageLink = regexp.MustCompile(`<[^>]*[?&]page=(\d+)[^>]*>;\s*rel="last"`)

// SchipholProvider implements FlightSource and DestinationSource against the
// Schiphol public flight API
type SchipholProvider struct {
	BaseURL         string
	AppID           string
	AppKey          string
	ResourceVersion string
	Client          *http.Client
	Limiter         *rate.Limiter
}

// SchipholOptions configures NewSchipholProvider
type SchipholOptions struct {
	BaseURL            string
	AppID              string
	AppKey             string
	ResourceVersion    string
	Timeout            time.Duration
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// NewSchipholProvider creates a rate limited Schiphol API client
func NewSchipholProvider(opts SchipholOptions) *SchipholProvider {
	if opts.ResourceVersion == "" {
		opts.ResourceVersion = "v4"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RateLimitBurst <= 0 {
		opts.RateLimitBurst = 1
	}

	limit := rate.Inf
	if opts.RateLimitPerSecond > 0 {
		limit = rate.Limit(opts.RateLimitPerSecond)
	}

	return &SchipholProvider{
		BaseURL:         opts.BaseURL,
		AppID:           opts.AppID,
		AppKey:          opts.AppKey,
		ResourceVersion: opts.ResourceVersion,
		Client: &http.Client{
			Timeout: opts.Timeout,
		},
		Limiter: rate.NewLimiter(limit, opts.RateLimitBurst),
	}
}

// GetProviderType returns the provider type identifier
func (p *SchipholProvider) GetProviderType() string {
	return "schiphol_public_flights"
}

// FetchFlights fetches one page of flights for a direction
func (p *SchipholProvider) FetchFlights(ctx context.Context, query FlightQuery) (*dtos.FlightsPage, error) {
	if query.Page < 0 {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Page number must not be negative",
		}
	}

	params := url.Values{}
	params.Set("flightDirection", string(query.Direction))
	params.Set("fromDateTime", query.Since.Format(fromDateTimeLayout))
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("includedelays", strconv.FormatBool(query.IncludeDelays))
	if query.Sort != "" {
		params.Set("sort", query.Sort)
	}

	var body dtos.FlightsResponse
	header, status, err := p.doGET(ctx, "/flights?"+params.Encode(), &body)
	if err != nil {
		return nil, err
	}

	page := &dtos.FlightsPage{
		Page:     query.Page,
		LastPage: parseLastPage(header.Get("Link")),
	}
	// 204 means no flights matched
	if status == http.StatusNoContent {
		return page, nil
	}
	page.Flights = body.Flights
	return page, nil
}

// FetchDestination looks up one destination by IATA code
func (p *SchipholProvider) FetchDestination(ctx context.Context, iata string) (*dtos.Destination, error) {
	if iata == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Destination code cannot be empty",
		}
	}

	var dest dtos.Destination
	if _, _, err := p.doGET(ctx, "/destinations/"+url.PathEscape(iata), &dest); err != nil {
		return nil, err
	}
	return &dest, nil
}

// doGET performs a rate limited GET with app credentials
func (p *SchipholProvider) doGET(ctx context.Context, endpoint string, result interface{}) (http.Header, int, error) {
	if p.AppID == "" || p.AppKey == "" {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeMissingCredentials,
			Message: constants.GetErrorMessage(constants.ErrCodeMissingCredentials),
		}
	}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return nil, 0, &ProviderError{
				Code:    constants.ErrCodeRateLimited,
				Message: "Gave up waiting for rate limiter",
				Err:     err,
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+endpoint, nil)
	if err != nil {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("app_id", p.AppID)
	req.Header.Set("app_key", p.AppKey)
	req.Header.Set("ResourceVersion", p.ResourceVersion)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return resp.Header, resp.StatusCode, p.buildHTTPError(resp.StatusCode, endpoint, string(bodyBytes))
	}
	if resp.StatusCode == http.StatusNoContent {
		return resp.Header, resp.StatusCode, nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.Header, resp.StatusCode, &ProviderError{
			Code:       constants.ErrCodeNetworkError,
			Message:    "Failed to read response body",
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}
	if err := json.Unmarshal(bodyBytes, result); err != nil {
		return resp.Header, resp.StatusCode, &ProviderError{
			Code:       constants.ErrCodeDecodeFailed,
			Message:    "Failed to decode response",
			Details:    string(bodyBytes),
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	return resp.Header, resp.StatusCode, nil
}

// buildHTTPError creates appropriate error based on status code
func (p *SchipholProvider) buildHTTPError(statusCode int, endpoint string, body string) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ProviderError{
			Code:       constants.ErrCodeInvalidAPIKey,
			Message:    fmt.Sprintf("Authentication failed for endpoint %s", endpoint),
			Details:    body,
			StatusCode: statusCode,
		}
	case http.StatusNotFound:
		return &ProviderError{
			Code:       constants.ErrCodeResourceNotFound,
			Message:    fmt.Sprintf("Resource not found: %s", endpoint),
			Details:    body,
			StatusCode: statusCode,
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:       constants.ErrCodeRateLimited,
			Message:    constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details:    body,
			StatusCode: statusCode,
		}
	case http.StatusBadRequest:
		return &ProviderError{
			Code:       constants.ErrCodeInvalidDataFormat,
			Message:    fmt.Sprintf("Bad request to %s", endpoint),
			Details:    body,
			StatusCode: statusCode,
		}
	default:
		return &ProviderError{
			Code:       constants.ErrCodeNetworkError,
			Message:    fmt.Sprintf("HTTP %d from %s", statusCode, endpoint),
			Details:    body,
			StatusCode: statusCode,
		}
	}
}

// parseLastPage reads the page number of rel="last" from a Link header
func parseLastPage(link string) int {
	m := lastPageLink.FindStringSubmatch(link)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}
