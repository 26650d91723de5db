package services

import (
	"context"
	"encoding/json"
	"strings"

	"schiphol-live/flightboard/internal/common"
	"schiphol-live/flightboard/internal/constants"
	"schiphol-live/flightboard/internal/logging"
	"schiphol-live/flightboard/internal/metrics"
	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/providers"

	"golang.org/x/sync/singleflight"
)

// DestinationService resolves airport codes to city and country. Airports
// don't move, so entries are cached for the life of the process.
type DestinationService struct {
	source  providers.DestinationSource
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
	group   singleflight.Group
}

func NewDestinationService(source providers.DestinationSource, cache common.CacheInterface, m *metrics.MetricsRegistry) *DestinationService {
	return &DestinationService{
		source:  source,
		cache:   cache,
		metrics: m,
	}
}

// Lookup returns the destination for an IATA code, cache-first
func (s *DestinationService) Lookup(ctx context.Context, iata string) (*dtos.Destination, error) {
	code := strings.ToUpper(strings.TrimSpace(iata))
	cacheKey := string(constants.CachePrefixDestination) + code

	if val, found := s.cache.Get(cacheKey); found {
		if dest, ok := asDestination(val); ok {
			s.count(true)
			return &dest, nil
		}
	}
	s.count(false)

	// concurrent misses for the same code share one API call
	val, err, _ := s.group.Do(code, func() (interface{}, error) {
		dest, err := s.source.FetchDestination(ctx, code)
		if err != nil {
			return nil, err
		}
		s.cache.Set(cacheKey, *dest, common.NoExpiration)
		return *dest, nil
	})
	if err != nil {
		logging.Debug("Destination lookup failed", "iata", code, "error", err.Error())
		return nil, err
	}

	dest := val.(dtos.Destination)
	return &dest, nil
}

// CityName returns "City" or the code itself when the lookup fails
func (s *DestinationService) CityName(ctx context.Context, iata string) string {
	dest, err := s.Lookup(ctx, iata)
	if err != nil || dest.City == "" {
		return iata
	}
	return dest.City
}

func (s *DestinationService) count(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixDestination)).Inc()
	} else {
		s.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixDestination)).Inc()
	}
}

// asDestination accepts the typed value from the in-memory cache and the
// decoded JSON map that comes back from Redis
func asDestination(val interface{}) (dtos.Destination, bool) {
	switch v := val.(type) {
	case dtos.Destination:
		return v, true
	case map[string]interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return dtos.Destination{}, false
		}
		var dest dtos.Destination
		if err := json.Unmarshal(raw, &dest); err != nil {
			return dtos.Destination{}, false
		}
		return dest, true
	default:
		return dtos.Destination{}, false
	}
}
