package api

import (
	"time"

	"schiphol-live/flightboard/internal/common"
	"schiphol-live/flightboard/internal/config"
	"schiphol-live/flightboard/internal/metrics"
	"schiphol-live/flightboard/internal/models/entities"
	"schiphol-live/flightboard/internal/providers"
	"schiphol-live/flightboard/internal/services"
	"schiphol-live/flightboard/internal/workers"
)

type Services struct {
	Provider     *providers.SchipholProvider
	Cache        common.CacheInterface
	Redis        *common.RedisCacheService // nil when REDIS_HOST is unset
	Destinations *services.DestinationService
	Boards       *services.FlightBoardService
	Views        map[entities.Direction]*services.BoardView
	RenderQueues []*workers.RenderQueue
}

type Dependencies struct {
	Config   *config.Config
	Metrics  *metrics.MetricsRegistry
	Services *Services
}

func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	provider := providers.NewSchipholProvider(providers.SchipholOptions{
		BaseURL:            cfg.APIBaseURL,
		AppID:              cfg.AppID,
		AppKey:             cfg.AppKey,
		ResourceVersion:    cfg.ResourceVersion,
		Timeout:            cfg.HTTPTimeout,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	var (
		cache      common.CacheInterface
		redisCache *common.RedisCacheService
	)
	if cfg.RedisHost != "" {
		redisCache = common.NewRedisCacheService(common.NewRedisClient(common.RedisOptions{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
		}))
		cache = redisCache
	} else {
		cache = common.NewCacheService(common.NoExpiration, 10*time.Minute)
	}

	deps, err := buildDependencies(cfg, metricsReg, provider, provider, cache)
	if err != nil {
		return nil, err
	}
	deps.Services.Provider = provider
	deps.Services.Redis = redisCache
	return deps, nil
}

// buildDependencies wires the boards on top of any flight and destination source
func buildDependencies(
	cfg *config.Config,
	metricsReg *metrics.MetricsRegistry,
	flights providers.FlightSource,
	destinations providers.DestinationSource,
	cache common.CacheInterface,
) (*Dependencies, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	destSvc := services.NewDestinationService(destinations, cache, metricsReg)

	svcs := &Services{
		Cache:        cache,
		Destinations: destSvc,
		Views:        make(map[entities.Direction]*services.BoardView),
	}

	var boards []services.BoardConfig
	for _, dir := range []entities.Direction{entities.Departing, entities.Arriving} {
		view := services.NewBoardView(dir, destSvc)
		queue := workers.NewRenderQueue(dir.String(), view)

		boards = append(boards, services.BoardConfig{
			Direction: dir,
			Fetcher: services.NewPagedFetcher(flights, dir, services.FetcherOptions{
				Lookback:     cfg.Lookback,
				WindowLength: cfg.WindowLength,
				MaxPages:     cfg.MaxPages,
				Location:     loc,
			}, metricsReg),
			Renderer: queue,
			View:     view,
		})
		svcs.Views[dir] = view
		svcs.RenderQueues = append(svcs.RenderQueues, queue)
	}
	svcs.Boards = services.NewFlightBoardService(boards...)

	return &Dependencies{
		Config:   cfg,
		Metrics:  metricsReg,
		Services: svcs,
	}, nil
}

// Close stops background refreshes and releases the cache
func (d *Dependencies) Close() error {
	d.Services.Boards.Close()
	return d.Services.Cache.Close()
}
