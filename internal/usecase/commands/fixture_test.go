//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/user"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/infra/memstore"
	"parcel-registry/internal/pkg/clock"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/usecase/commands"
	"parcel-registry/internal/usecase/queries"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type env struct {
	store *memstore.Store
	clock *clock.MockClock

	availability commands.AvailabilityCommands
	mutations    commands.MutationCommands
	ownership    commands.OwnershipCommands
	alerts       commands.AlertCommands

	admin, manager, citizen, officer uuid.UUID
}

type envOption func(*envConfig)

type envConfig struct {
	uow shared.UnitOfWork
}

// withUoW swaps the unit of work the commands use, keeping the store for
// assertions.
func withUoW(wrap func(shared.UnitOfWork) shared.UnitOfWork) envOption {
	return func(c *envConfig) { c.uow = wrap(c.uow) }
}

func newEnv(t *testing.T, opts ...envOption) *env {
	t.Helper()

	store := memstore.New(
		memstore.WithLockTimeout(2*time.Second),
		memstore.WithRetryPolicy(shared.RetryPolicy{MaxRetries: 3, Base: time.Millisecond}),
	)
	clk := clock.NewMockClock(testNow)

	cfg := &envConfig{uow: store}
	for _, opt := range opts {
		opt(cfg)
	}

	allocator := commands.NewAllocator(clk, nil, 2)
	e := &env{
		store:        store,
		clock:        clk,
		availability: commands.NewAvailabilityUseCase(cfg.uow, store, allocator, availability.DefaultTTLPolicy(), clk, nil),
		mutations:    commands.NewMutationUseCase(cfg.uow, store, allocator, clk, nil),
		ownership:    commands.NewOwnershipUseCase(cfg.uow, store, allocator, nil),
		alerts:       commands.NewAlertUseCase(cfg.uow, store, clk),
		admin:        uuid.New(),
		manager:      uuid.New(),
		citizen:      uuid.New(),
		officer:      uuid.New(),
	}
	store.SeedUser(e.admin, user.RoleAdministrator, true)
	store.SeedUser(e.manager, user.RoleManager, true)
	store.SeedUser(e.citizen, user.RoleCitizen, true)
	store.SeedUser(e.officer, user.RoleOfficer, true)
	return e
}

func (e *env) parcel(owner *uuid.UUID) uuid.UUID {
	id := uuid.New()
	e.store.SeedParcel(id, "ABJ-COC-"+id.String()[:4], owner)
	return id
}

func (e *env) verifications(t *testing.T, parcelID uuid.UUID) []*queries.VerificationLogView {
	t.Helper()
	rows, err := e.store.ListVerifications(context.Background(), &parcelID, 1000)
	require.NoError(t, err)
	return rows
}

func (e *env) alertsFor(t *testing.T, parcelID uuid.UUID) []*queries.AlertView {
	t.Helper()
	rows, err := e.store.ListAlerts(context.Background(), queries.AlertFilter{ParcelID: &parcelID}, nil, 1000)
	require.NoError(t, err)
	return rows
}

func (e *env) parcelView(t *testing.T, parcelID uuid.UUID) *queries.ParcelView {
	t.Helper()
	p, err := e.store.FindParcel(context.Background(), parcelID)
	require.NoError(t, err)
	return p
}

func requireKind(t *testing.T, err error, kind error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errs.Is(err, kind), "expected kind %q, got %v", kind, err)
}

func ttl(d time.Duration) *time.Duration { return &d }

// flakyUoW fails the first n alert inserts, wherever they happen.
type flakyUoW struct {
	next shared.UnitOfWork

	mu       sync.Mutex
	failures int
}

func failAlerts(n int) (envOption, *flakyUoW) {
	f := &flakyUoW{failures: n}
	return withUoW(func(next shared.UnitOfWork) shared.UnitOfWork {
		f.next = next
		return f
	}), f
}

func (f *flakyUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return f.next.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, &flakyTx{Tx: tx, uow: f})
	})
}

func (f *flakyUoW) takeFailure() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures == 0 {
		return false
	}
	f.failures--
	return true
}

type flakyTx struct {
	shared.Tx
	uow *flakyUoW
}

func (t *flakyTx) Alerts() shared.AlertRepository {
	return &flakyAlerts{AlertRepository: t.Tx.Alerts(), uow: t.uow}
}

func (t *flakyTx) Savepoint(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return t.Tx.Savepoint(ctx, func(ctx context.Context, sp shared.Tx) error {
		return fn(ctx, &flakyTx{Tx: sp, uow: t.uow})
	})
}

type flakyAlerts struct {
	shared.AlertRepository
	uow *flakyUoW
}

func (a *flakyAlerts) Create(ctx context.Context, al *alert.Alert) error {
	if a.uow.takeFailure() {
		return errs.New("alerts: connection reset")
	}
	return a.AlertRepository.Create(ctx, al)
}

// lostInsertRace makes every reservation insert fail on the active-hold
// index, as when a concurrent hold commits between the check and the write.
func lostInsertRace() envOption {
	return withUoW(func(next shared.UnitOfWork) shared.UnitOfWork {
		return racingUoW{next: next}
	})
}

type racingUoW struct{ next shared.UnitOfWork }

func (r racingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return r.next.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, racingTx{Tx: tx})
	})
}

type racingTx struct{ shared.Tx }

func (t racingTx) Reservations() shared.ReservationRepository {
	return racingReservations{ReservationRepository: t.Tx.Reservations()}
}

type racingReservations struct{ shared.ReservationRepository }

func (racingReservations) Create(context.Context, *availability.Reservation) error {
	return infra.WrapRepoErr(infra.KindDuplicateKey, "reservation already active", errs.New("unique violation"))
}
