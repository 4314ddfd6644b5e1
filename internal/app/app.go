package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/MiroBartanus/business-days-sk/config"
	"github.com/MiroBartanus/business-days-sk/internal/api"
	"github.com/MiroBartanus/business-days-sk/internal/holiday"
	"github.com/MiroBartanus/business-days-sk/internal/logger"
	"github.com/MiroBartanus/business-days-sk/internal/metrics"
	"github.com/MiroBartanus/business-days-sk/internal/service"
	"github.com/MiroBartanus/business-days-sk/internal/storage"
)

// Container holds the dependencies shared by the HTTP server and the CLI modes.
type Container struct {
	Calendar *holiday.Calendar
	Metrics  *metrics.Metrics
	Repo     storage.CustomHolidayRepository
	Service  service.CalendarService

	close func()
}

// Close releases the storage connection. Safe to call more than once.
func (c *Container) Close() {
	if c.close != nil {
		c.close()
		c.close = nil
	}
}

// Build wires the calendar stack from cfg.
//
// Responsibilities:
//   - Creates the metrics registry and the Slovak calendar reporting into it.
//   - Opens the repository selected by cfg.Storage.Driver (postgres or memory).
//   - Replays stored custom holidays, then the ones from HOLIDAYS_CUSTOM.
//   - Precomputes the cacheable Easter range when HOLIDAYS_WARM_CACHE is set.
func Build(ctx context.Context, cfg config.Config) (*Container, error) {
	m := metrics.New()

	cal, err := holiday.NewSlovak(
		holiday.WithCacheRange(cfg.Holidays.CacheMinYear, cfg.Holidays.CacheMaxYear),
		holiday.WithObserver(m),
		holiday.WithLogger(logger.Component("holiday")),
	)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}

	c := &Container{Calendar: cal, Metrics: m}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		c.Repo = storage.NewMemoryRepository()
	case config.DriverPostgres, "":
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		c.Repo = storage.NewPostgresRepository(db)
		c.close = func() { _ = db.Close() }
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	c.Service = service.NewCalendarService(cal, c.Repo, m)

	if _, err := c.Service.LoadCustomHolidays(ctx); err != nil {
		c.Close()
		return nil, err
	}
	for _, spec := range cfg.Holidays.Custom {
		if err := cal.AddFixedHoliday(spec); err != nil {
			c.Close()
			return nil, fmt.Errorf("HOLIDAYS_CUSTOM: %w", err)
		}
	}

	if cfg.Holidays.WarmCache {
		if err := cal.Cache().Warm(ctx); err != nil {
			c.Close()
			return nil, fmt.Errorf("warm feast cache: %w", err)
		}
		lo, hi := cal.Cache().Range()
		logger.L().Info().Int("from", lo).Int("to", hi).Int("years", cal.Cache().Len()).Msg("feast cache warmed")
	}

	return c, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the Container (calendar, metrics, repository, service).
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes (readiness pings storage).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	c, err := Build(context.Background(), cfg)
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(c.Service)
	router := api.NewRouter(handler, api.RouterConfig{
		Metrics:            c.Metrics,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	})

	api.NewHealthHandler(map[string]api.Check{
		"storage": c.Repo.Ping,
	}).Register(router)

	return router, c.Close, nil
}
