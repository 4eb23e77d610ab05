package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"rider-dispatch/internal/config"
	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
	"rider-dispatch/internal/ports/dispatchtx"
	"rider-dispatch/internal/repository"
	"rider-dispatch/internal/repository/memstore"
	"rider-dispatch/migrations"
)

type dispatchStore interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	GetAssignment(ctx context.Context, id int64) (*domain.Assignment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Assignment, error)
	ListStalePending(ctx context.Context, before time.Time, limit int) ([]domain.Assignment, error)
}

type riderStore interface {
	Get(ctx context.Context, id int64) (*domain.Rider, error)
	SetStatus(ctx context.Context, id int64, status domain.RiderStatus) (bool, error)
	ListCandidates(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error)
}

type locationStore interface {
	Record(ctx context.Context, u domain.LocationUpdate) (*domain.Location, error)
	Current(ctx context.Context, riderID int64) (*domain.Location, error)
	HistoryPage(ctx context.Context, riderID int64, after domain.LocationCursor, limit int) ([]domain.Location, error)
}

// Stores bundles the persistence backends picked by the storage driver.
type Stores struct {
	Dispatch  dispatchStore
	Riders    riderStore
	Locations locationStore

	// Memory is set for the memory driver only.
	Memory *memstore.Store

	pool *pgxpool.Pool
}

// Pool returns the Postgres pool, nil for the memory driver.
func (s *Stores) Pool() *pgxpool.Pool { return s.pool }

// Ping checks the Postgres pool. The memory driver is always reachable.
func (s *Stores) Ping(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return nil
	}
	return s.pool.Ping(ctx)
}

// Close releases the Postgres pool if there is one.
func (s *Stores) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

func newStores(ctx context.Context, cfg *config.Config, logger logx.Logger, connect dbConnectFunc) (*Stores, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		m := memstore.New()
		return &Stores{Dispatch: m, Riders: m, Locations: m, Memory: m}, nil
	case config.StoragePostgres:
		pool, err := connect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return &Stores{
			Dispatch:  repository.NewDispatchRepo(pool),
			Riders:    repository.NewRiderRepo(pool),
			Locations: repository.NewLocationRepo(pool),
			pool:      pool,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
