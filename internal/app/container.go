package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"rider-dispatch/internal/config"
	"rider-dispatch/internal/geoindex"
	"rider-dispatch/internal/http/handlers"
	obs "rider-dispatch/internal/http/middleware"
	"rider-dispatch/internal/http/middleware/ratelimit"
	"rider-dispatch/internal/http/router"
	"rider-dispatch/internal/logx"
	"rider-dispatch/internal/metrics"
	"rider-dispatch/internal/notify"
	"rider-dispatch/internal/service/assignment"
	"rider-dispatch/internal/service/dispatch"
	"rider-dispatch/internal/service/location"
	"rider-dispatch/internal/service/matching"
	"rider-dispatch/internal/service/orders"
	"rider-dispatch/internal/service/pricing"
	"rider-dispatch/internal/service/registry"
	"rider-dispatch/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect  dbConnectFunc
	loadConfig func() (*config.Config, error)
	registry   *prometheus.Registry
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect:  connectDbWithRetry,
		loadConfig: config.Load,
		logFatalf:  log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithConfig replaces config.Load, e.g. to pin the storage driver in tests or CLIs.
func (b *ContainerBuilder) WithConfig(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithRegistry registers collectors in reg instead of the default registry.
func (b *ContainerBuilder) WithRegistry(reg *prometheus.Registry) *ContainerBuilder {
	b.registry = reg
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.Build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// Build builds and returns a new dig container. Providers run lazily on Invoke.
func (b *ContainerBuilder) Build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig, b.registry); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerInfra(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("infra: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(
	container *dig.Container,
	ctx context.Context,
	loadConfig func() (*config.Config, error),
	reg *prometheus.Registry,
) error {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if reg != nil {
		registerer, gatherer = reg, reg
	}
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		func() prometheus.Registerer { return registerer },
		func() prometheus.Gatherer { return gatherer },
		newCollectors,
	)
}

func registerInfra(container *dig.Container, dbConnect dbConnectFunc) error {
	return provideAll(container,
		func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*Stores, error) {
			return newStores(ctx, cfg, logger, dbConnect)
		},
		connectRedis,
		func(rdb *redis.Client) *geoindex.Index {
			if rdb == nil {
				return nil
			}
			return geoindex.New(rdb)
		},
		func(cfg *config.Config) (*kafka.Producer, error) {
			return kafka.NewProducer(cfg.Kafka.Brokers)
		},
		newNotifiers,
	)
}

// collectors are the service metrics, registered once per registry.
type collectors struct {
	Transitions *prometheus.CounterVec
	Outcomes    *prometheus.CounterVec
	Locations   prometheus.Counter
	OrderEvents *prometheus.CounterVec
	RateLimited prometheus.Counter
	HTTP        *obs.HTTPMetrics
}

func newCollectors(reg prometheus.Registerer) (*collectors, error) {
	var (
		c   collectors
		err error
	)
	if c.Transitions, err = metrics.Register(reg, metrics.NewAssignmentTransitionsTotal()); err != nil {
		return nil, err
	}
	if c.Outcomes, err = metrics.Register(reg, metrics.NewDispatchOutcomesTotal()); err != nil {
		return nil, err
	}
	if c.Locations, err = metrics.Register(reg, metrics.NewLocationUpdatesTotal()); err != nil {
		return nil, err
	}
	if c.OrderEvents, err = metrics.Register(reg, metrics.NewOrderEventsTotal()); err != nil {
		return nil, err
	}
	if c.RateLimited, err = metrics.Register(reg, metrics.NewRateLimitExceededTotal()); err != nil {
		return nil, err
	}
	if c.HTTP, err = metrics.Register(reg, obs.NewHTTPMetrics()); err != nil {
		return nil, err
	}
	return &c, nil
}

// notifiers route outbound messages to Kafka when a producer is configured, otherwise to the log.
type notifiers struct {
	Riders    dispatch.RiderNotifier
	Customers assignment.CustomerNotifier
	Events    assignment.EventSink
}

func newNotifiers(cfg *config.Config, producer *kafka.Producer, logger logx.Logger) *notifiers {
	if producer == nil {
		ln := notify.NewLogNotifier(logger)
		return &notifiers{Riders: ln, Customers: ln, Events: ln}
	}
	kn := notify.NewKafkaNotifier(producer, cfg.Kafka.NotificationsTopic)
	return &notifiers{
		Riders:    kn,
		Customers: kn,
		Events:    notify.NewEventSink(producer, cfg.Kafka.EventsTopic),
	}
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) pricing.Linear {
			return pricing.NewLinear(cfg.Pricing.BaseFee, cfg.Pricing.PerKm)
		},
		func(st *Stores, idx *geoindex.Index, col *collectors, logger logx.Logger) *location.Service {
			var pos location.PositionIndex
			if idx != nil {
				pos = idx
			}
			return location.NewService(st.Locations, pos, col.Locations, logger)
		},
		func(st *Stores, idx *geoindex.Index, logger logx.Logger) *registry.Service {
			var prox registry.ProximityIndex
			if idx != nil {
				prox = idx
			}
			return registry.NewService(st.Riders, st.Locations, prox, logger)
		},
		func(reg *registry.Service, cfg *config.Config) *matching.Engine {
			return matching.NewEngine(reg, cfg.Dispatch.SearchRadiusKm, cfg.Dispatch.DefaultParcelKg)
		},
		newDispatchCore,
		func(d *dispatch.Dispatcher, as *assignment.Service, col *collectors, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(d, as,
				orders.WithEventsCounter(col.OrderEvents),
				orders.WithLogger(logger),
			)
		},
	)
}

type dispatchCoreIn struct {
	dig.In
	Stores     *Stores
	Pricing    pricing.Linear
	Engine     *matching.Engine
	Locations  *location.Service
	Notifiers  *notifiers
	Collectors *collectors
	Config     *config.Config
	Logger     logx.Logger
}

// newDispatchCore builds the assignment service and the dispatcher together, so whoever
// resolves either one gets re-matching on rejection and expiry.
func newDispatchCore(in dispatchCoreIn) (*assignment.Service, *dispatch.Dispatcher) {
	cfg := in.Config.Dispatch
	as := assignment.NewService(in.Stores.Dispatch, in.Pricing, cfg.OperationTimeout, in.Logger,
		assignment.WithCustomerNotifier(in.Notifiers.Customers),
		assignment.WithEventSink(in.Notifiers.Events),
		assignment.WithTransitionsCounter(in.Collectors.Transitions),
	)
	d := dispatch.NewDispatcher(in.Stores.Dispatch, as, in.Engine,
		dispatch.Config{
			MaxRematchAttempts: cfg.MaxRematchAttempts,
			OperationTimeout:   cfg.OperationTimeout,
		},
		in.Logger,
		dispatch.WithRiderLocator(in.Locations),
		dispatch.WithRiderNotifier(in.Notifiers.Riders),
		dispatch.WithEventSink(in.Notifiers.Events),
		dispatch.WithOutcomesCounter(in.Collectors.Outcomes),
	)
	as.Subscribe(d)
	return as, d
}

func newBaseHandlers(logger logx.Logger, st *Stores, rdb *redis.Client) *handlers.Handlers {
	probes := map[string]handlers.Probe{"storage": st.Ping}
	if rdb != nil {
		probes["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return handlers.New(logger, probes)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		newBaseHandlers,
		func(logger logx.Logger, d *dispatch.Dispatcher) *handlers.DispatchHandler {
			return handlers.NewDispatchHandler(logger, d)
		},
		func(logger logx.Logger, as *assignment.Service) *handlers.AssignmentHandler {
			return handlers.NewAssignmentHandler(logger, as)
		},
		func(logger logx.Logger, loc *location.Service, reg *registry.Service) *handlers.RiderHandler {
			return handlers.NewRiderHandler(logger, loc, reg)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
	)
}

type routerIn struct {
	dig.In
	Base        *handlers.Handlers
	Dispatch    *handlers.DispatchHandler
	Assignments *handlers.AssignmentHandler
	Riders      *handlers.RiderHandler
	RateLimit   *ratelimit.Middleware
	Collectors  *collectors
	Gatherer    prometheus.Gatherer
	Logger      logx.Logger
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Base:        in.Base,
		Dispatch:    in.Dispatch,
		Assignments: in.Assignments,
		Riders:      in.Riders,
		Logger:      in.Logger,
		HTTPMetrics: in.Collectors.HTTP,
		RateLimit:   in.RateLimit,
		Metrics:     promhttp.HandlerFor(in.Gatherer, promhttp.HandlerOpts{}),
	})
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, p *orders.Processor, logger logx.Logger) (*kafka.Consumer, error) {
			k := cfg.Kafka
			return kafka.NewConsumer(logger, k.Brokers, k.GroupID, k.OrdersTopic, p.Handle)
		},
	)
}
