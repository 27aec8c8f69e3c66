package memstore

import (
	"context"
	"sync"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/history"
	"parcel-registry/internal/domain/mutation"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

// Within runs fn against a private overlay and publishes it on success. Locks
// taken through GetForUpdate are held until the attempt ends.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	start := time.Now()
	err := s.retry.Run(ctx, isRetryable, func() error {
		tx := newTx(s, nil, &heldLocks{releases: make(map[string]func())})
		defer tx.locks.releaseAll()

		if err := fn(ctx, tx); err != nil {
			return err
		}
		s.commit(tx)
		return nil
	})
	s.metrics.ObserveTx(shared.Outcome(err), time.Since(start))
	return err
}

func isRetryable(err error) bool {
	return errs.Is(err, shared.ErrVersionConflict)
}

func (s *Store) commit(tx *memTx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, row := range tx.parcels {
		s.parcels[id] = row
	}
	for id, r := range tx.reservations {
		s.reservations[id] = r
	}
	for id, a := range tx.alerts {
		s.alerts[id] = a
	}
	for id, m := range tx.mutations {
		s.mutations[id] = m
	}
	s.verifications = append(s.verifications, tx.verifications...)
	s.history = append(s.history, tx.history...)
}

type heldLocks struct {
	mu       sync.Mutex
	releases map[string]func()
}

func (h *heldLocks) releaseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key, release := range h.releases {
		release()
		delete(h.releases, key)
	}
}

// memTx is one transaction or savepoint. Reads fall through the parent chain
// to committed state; writes land in the innermost overlay.
type memTx struct {
	store  *Store
	parent *memTx
	locks  *heldLocks

	parcels       map[uuid.UUID]parcelRow
	reservations  map[uuid.UUID]*availability.Reservation
	alerts        map[uuid.UUID]*alert.Alert
	mutations     map[uuid.UUID]*mutation.Mutation
	verifications []*availability.VerificationLogEntry
	history       []*history.Entry
}

func newTx(s *Store, parent *memTx, locks *heldLocks) *memTx {
	return &memTx{
		store:        s,
		parent:       parent,
		locks:        locks,
		parcels:      make(map[uuid.UUID]parcelRow),
		reservations: make(map[uuid.UUID]*availability.Reservation),
		alerts:       make(map[uuid.UUID]*alert.Alert),
		mutations:    make(map[uuid.UUID]*mutation.Mutation),
	}
}

func (t *memTx) Parcels() shared.ParcelRepository                { return &parcelRepo{tx: t} }
func (t *memTx) Reservations() shared.ReservationRepository      { return &reservationRepo{tx: t} }
func (t *memTx) Verifications() shared.VerificationLogRepository { return &verificationRepo{tx: t} }
func (t *memTx) Alerts() shared.AlertRepository                  { return &alertRepo{tx: t} }
func (t *memTx) Mutations() shared.MutationRepository            { return &mutationRepo{tx: t} }
func (t *memTx) History() shared.HistoryRepository               { return &historyRepo{tx: t} }

// Savepoint merges the child overlay into this one only when fn succeeds.
// Locks taken inside stay with the enclosing transaction, as in PostgreSQL.
func (t *memTx) Savepoint(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	child := newTx(t.store, t, t.locks)
	if err := fn(ctx, child); err != nil {
		return err
	}

	for id, row := range child.parcels {
		t.parcels[id] = row
	}
	for id, r := range child.reservations {
		t.reservations[id] = r
	}
	for id, a := range child.alerts {
		t.alerts[id] = a
	}
	for id, m := range child.mutations {
		t.mutations[id] = m
	}
	t.verifications = append(t.verifications, child.verifications...)
	t.history = append(t.history, child.history...)
	return nil
}

// lock takes the key for the rest of the transaction. Re-locking a key this
// transaction already holds is a no-op.
func (t *memTx) lock(ctx context.Context, key string) error {
	t.locks.mu.Lock()
	_, held := t.locks.releases[key]
	t.locks.mu.Unlock()
	if held {
		return nil
	}

	lockCtx, cancel := context.WithTimeout(ctx, t.store.lockTimeout)
	defer cancel()

	release, err := t.store.locks.Acquire(lockCtx, key)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return shared.ErrLockTimeout
	}

	t.locks.mu.Lock()
	t.locks.releases[key] = release
	t.locks.mu.Unlock()
	return nil
}

// chain lists overlays from the outermost transaction down to t.
func (t *memTx) chain() []*memTx {
	var out []*memTx
	for cur := t; cur != nil; cur = cur.parent {
		out = append([]*memTx{cur}, out...)
	}
	return out
}

func (t *memTx) parcel(id uuid.UUID) (parcelRow, bool) {
	for cur := t; cur != nil; cur = cur.parent {
		if row, ok := cur.parcels[id]; ok {
			return row, true
		}
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	row, ok := t.store.parcels[id]
	return row, ok
}

func (t *memTx) reservation(id uuid.UUID) (*availability.Reservation, bool) {
	for cur := t; cur != nil; cur = cur.parent {
		if r, ok := cur.reservations[id]; ok {
			return cloneReservation(r), true
		}
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	r, ok := t.store.reservations[id]
	if !ok {
		return nil, false
	}
	return cloneReservation(r), true
}

// reservationsOf is the merged view of a parcel's reservations.
func (t *memTx) reservationsOf(parcelID uuid.UUID) []*availability.Reservation {
	merged := make(map[uuid.UUID]*availability.Reservation)

	t.store.mu.RLock()
	for id, r := range t.store.reservations {
		if r.ParcelID() == parcelID {
			merged[id] = r
		}
	}
	t.store.mu.RUnlock()

	for _, cur := range t.chain() {
		for id, r := range cur.reservations {
			if r.ParcelID() == parcelID {
				merged[id] = r
			}
		}
	}

	out := make([]*availability.Reservation, 0, len(merged))
	for _, r := range merged {
		out = append(out, cloneReservation(r))
	}
	return out
}

func (t *memTx) alert(id uuid.UUID) (*alert.Alert, bool) {
	for cur := t; cur != nil; cur = cur.parent {
		if a, ok := cur.alerts[id]; ok {
			return cloneAlert(a), true
		}
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	a, ok := t.store.alerts[id]
	if !ok {
		return nil, false
	}
	return cloneAlert(a), true
}

func (t *memTx) mutation(id uuid.UUID) (*mutation.Mutation, bool) {
	for cur := t; cur != nil; cur = cur.parent {
		if m, ok := cur.mutations[id]; ok {
			return cloneMutation(m), true
		}
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	m, ok := t.store.mutations[id]
	if !ok {
		return nil, false
	}
	return cloneMutation(m), true
}

func (t *memTx) mutationsOf(parcelID uuid.UUID) []*mutation.Mutation {
	merged := make(map[uuid.UUID]*mutation.Mutation)

	t.store.mu.RLock()
	for id, m := range t.store.mutations {
		if m.ParcelID() == parcelID {
			merged[id] = m
		}
	}
	t.store.mu.RUnlock()

	for _, cur := range t.chain() {
		for id, m := range cur.mutations {
			if m.ParcelID() == parcelID {
				merged[id] = m
			}
		}
	}

	out := make([]*mutation.Mutation, 0, len(merged))
	for _, m := range merged {
		out = append(out, m)
	}
	return out
}
