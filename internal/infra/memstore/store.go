// Package memstore is an in-process implementation of the unit of work, the
// read stores and the actor directory. It mirrors the PostgreSQL store: row
// locks become per-key semaphores, partial unique indexes become explicit
// checks, and writes stay private to a transaction until it commits.
package memstore

import (
	"sync"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/history"
	"parcel-registry/internal/domain/mutation"
	"parcel-registry/internal/domain/user"
	"parcel-registry/internal/pkg/keylock"
	"parcel-registry/internal/pkg/metrics"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

type parcelRow struct {
	reference string
	ownerID   *uuid.UUID
	version   int64
}

type userRow struct {
	role   user.Role
	active bool
}

type Store struct {
	mu            sync.RWMutex
	parcels       map[uuid.UUID]parcelRow
	users         map[uuid.UUID]userRow
	reservations  map[uuid.UUID]*availability.Reservation
	alerts        map[uuid.UUID]*alert.Alert
	mutations     map[uuid.UUID]*mutation.Mutation
	verifications []*availability.VerificationLogEntry
	history       []*history.Entry

	locks       *keylock.Locker
	lockTimeout time.Duration
	retry       shared.RetryPolicy
	metrics     *metrics.Metrics
}

type Option func(*Store)

func WithLockTimeout(d time.Duration) Option {
	return func(s *Store) { s.lockTimeout = d }
}

func WithRetryPolicy(p shared.RetryPolicy) Option {
	return func(s *Store) { s.retry = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

func New(opts ...Option) *Store {
	s := &Store{
		parcels:      make(map[uuid.UUID]parcelRow),
		users:        make(map[uuid.UUID]userRow),
		reservations: make(map[uuid.UUID]*availability.Reservation),
		alerts:       make(map[uuid.UUID]*alert.Alert),
		mutations:    make(map[uuid.UUID]*mutation.Mutation),
		locks:        keylock.New(),
		lockTimeout:  3 * time.Second,
		retry:        shared.DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeedParcel inserts or replaces a parcel. Parcels are owned by the wider
// registry; the allocation core only reads and reassigns them.
func (s *Store) SeedParcel(id uuid.UUID, reference string, ownerID *uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parcels[id] = parcelRow{reference: reference, ownerID: ownerID, version: 1}
}

func (s *Store) SeedUser(id uuid.UUID, role user.Role, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = userRow{role: role, active: active}
}

func cloneReservation(r *availability.Reservation) *availability.Reservation {
	return availability.ReconstructReservation(r.ID(), r.ParcelID(), r.ReservedBy(), r.ReservedAt(), r.ExpiresAt(), r.Status(), r.Purpose(), r.UpdatedAt())
}

func cloneAlert(a *alert.Alert) *alert.Alert {
	return alert.Reconstruct(a.ID(), a.Type(), a.Severity(), a.ParcelID(), a.TriggeredBy(), a.Message(), a.CreatedAt(), a.Acknowledged(), a.AcknowledgedBy(), a.AcknowledgedAt())
}

func cloneMutation(m *mutation.Mutation) *mutation.Mutation {
	return mutation.Reconstruct(m.Snapshot())
}
