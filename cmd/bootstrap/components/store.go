package components

import (
	"fmt"
	"log/slog"

	"parcel-registry/internal/infra/directory"
	"parcel-registry/internal/infra/memstore"
	"parcel-registry/internal/infra/readstore"
	"parcel-registry/internal/infra/uow"
	"parcel-registry/internal/pkg/config"
	"parcel-registry/internal/pkg/metrics"
	"parcel-registry/internal/usecase/queries"
	"parcel-registry/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStores,
	),
)

type StoreParams struct {
	fx.In

	Config  config.Config
	Pool    *pgxpool.Pool
	Retry   shared.RetryPolicy
	Metrics *metrics.Metrics
}

// Stores is everything the use-cases and queries need from persistence. Both
// drivers fill every field.
type Stores struct {
	fx.Out

	UnitOfWork    shared.UnitOfWork
	Directory     shared.ActorDirectory
	Parcels       queries.ParcelReadStore
	Verifications queries.VerificationReadStore
	Mutations     queries.MutationReadStore
	History       queries.HistoryReadStore
	Alerts        queries.AlertReadStore
}

func NewStores(p StoreParams) (Stores, error) {
	switch p.Config.Store.Driver {
	case "postgres":
		return newPostgresStores(p)
	case "memory":
		return newMemoryStores(p)
	default:
		return Stores{}, fmt.Errorf("unknown store driver %q", p.Config.Store.Driver)
	}
}

func newPostgresStores(p StoreParams) (Stores, error) {
	if p.Pool == nil {
		return Stores{}, fmt.Errorf("postgres store requires a database pool")
	}
	return Stores{
		UnitOfWork:    uow.NewPostgresUoW(p.Pool, p.Config.Allocation.LockTimeout, p.Retry, p.Metrics),
		Directory:     directory.NewCachedDirectory(directory.NewPostgresDirectory(p.Pool), p.Config.Cache.ActorRoleTTL),
		Parcels:       readstore.NewParcelReadStore(p.Pool),
		Verifications: readstore.NewVerificationReadStore(p.Pool),
		Mutations:     readstore.NewMutationReadStore(p.Pool),
		History:       readstore.NewHistoryReadStore(p.Pool),
		Alerts:        readstore.NewAlertReadStore(p.Pool),
	}, nil
}

func newMemoryStores(p StoreParams) (Stores, error) {
	store := memstore.New(
		memstore.WithLockTimeout(p.Config.Allocation.LockTimeout),
		memstore.WithRetryPolicy(p.Retry),
		memstore.WithMetrics(p.Metrics),
	)
	if path := p.Config.Store.SeedFile; path != "" {
		if err := store.LoadSeedFile(path); err != nil {
			return Stores{}, err
		}
		slog.Info("memory store seeded", "file", path)
	} else {
		slog.Warn("memory store started empty; set STORE_SEED_FILE to load users and parcels")
	}

	return Stores{
		UnitOfWork:    store,
		Directory:     directory.NewCachedDirectory(store, p.Config.Cache.ActorRoleTTL),
		Parcels:       store,
		Verifications: store,
		Mutations:     store,
		History:       store,
		Alerts:        store,
	}, nil
}
