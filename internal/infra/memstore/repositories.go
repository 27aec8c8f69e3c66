package memstore

import (
	"context"
	"sort"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/history"
	"parcel-registry/internal/domain/mutation"
	"parcel-registry/internal/domain/parcel"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

func parcelKey(id uuid.UUID) string   { return "parcel:" + id.String() }
func mutationKey(id uuid.UUID) string { return "mutation:" + id.String() }
func alertKey(id uuid.UUID) string    { return "alert:" + id.String() }

type parcelRepo struct{ tx *memTx }

func (r *parcelRepo) Get(_ context.Context, id uuid.UUID) (*parcel.Parcel, error) {
	row, ok := r.tx.parcel(id)
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "parcel not found", nil)
	}
	return parcel.Reconstruct(id, row.reference, row.ownerID, row.version), nil
}

func (r *parcelRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*parcel.Parcel, error) {
	if _, ok := r.tx.parcel(id); !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "parcel not found", nil)
	}
	if err := r.tx.lock(ctx, parcelKey(id)); err != nil {
		return nil, err
	}
	// re-read: the row may have changed while we waited
	return r.Get(ctx, id)
}

func (r *parcelRepo) UpdateOwner(_ context.Context, id uuid.UUID, ownerID *uuid.UUID, expectedVersion int64) error {
	row, ok := r.tx.parcel(id)
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "parcel not found", nil)
	}
	if row.version != expectedVersion {
		return shared.ErrVersionConflict
	}
	row.ownerID = ownerID
	row.version++
	r.tx.parcels[id] = row
	return nil
}

type reservationRepo struct{ tx *memTx }

func (r *reservationRepo) Active(_ context.Context, parcelID uuid.UUID, now time.Time) (*availability.Reservation, error) {
	for _, res := range r.tx.reservationsOf(parcelID) {
		if res.IsActiveAt(now) {
			return res, nil
		}
	}
	return nil, nil
}

func (r *reservationRepo) GetByID(_ context.Context, id uuid.UUID) (*availability.Reservation, error) {
	res, ok := r.tx.reservation(id)
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return res, nil
}

// Create enforces the one-active-row-per-parcel index regardless of
// expires_at, like the partial unique index does.
func (r *reservationRepo) Create(_ context.Context, res *availability.Reservation) error {
	for _, existing := range r.tx.reservationsOf(res.ParcelID()) {
		if existing.Status() == availability.ReservationActive {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "active reservation already exists", nil)
		}
	}
	r.tx.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r *reservationRepo) UpdateStatus(_ context.Context, res *availability.Reservation) error {
	if _, ok := r.tx.reservation(res.ID()); !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	r.tx.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r *reservationRepo) ExpireStale(_ context.Context, parcelID uuid.UUID, now time.Time) ([]*availability.Reservation, error) {
	var expired []*availability.Reservation
	for _, res := range r.tx.reservationsOf(parcelID) {
		if !res.IsStaleAt(now) {
			continue
		}
		if err := res.Expire(now); err != nil {
			return nil, err
		}
		r.tx.reservations[res.ID()] = cloneReservation(res)
		expired = append(expired, res)
	}
	return expired, nil
}

func (r *reservationRepo) StaleParcelIDs(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()

	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, res := range r.tx.store.reservations {
		if !res.IsStaleAt(now) {
			continue
		}
		if _, dup := seen[res.ParcelID()]; dup {
			continue
		}
		seen[res.ParcelID()] = struct{}{}
		ids = append(ids, res.ParcelID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

type verificationRepo struct{ tx *memTx }

func (r *verificationRepo) Append(_ context.Context, e *availability.VerificationLogEntry) error {
	r.tx.verifications = append(r.tx.verifications, e)
	return nil
}

type alertRepo struct{ tx *memTx }

func (r *alertRepo) Create(_ context.Context, a *alert.Alert) error {
	if _, exists := r.tx.alert(a.ID()); exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "alert already exists", nil)
	}
	r.tx.alerts[a.ID()] = cloneAlert(a)
	return nil
}

func (r *alertRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*alert.Alert, error) {
	if _, ok := r.tx.alert(id); !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "alert not found", nil)
	}
	if err := r.tx.lock(ctx, alertKey(id)); err != nil {
		return nil, err
	}
	a, _ := r.tx.alert(id)
	return a, nil
}

func (r *alertRepo) Acknowledge(_ context.Context, a *alert.Alert) error {
	if _, ok := r.tx.alert(a.ID()); !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "alert not found", nil)
	}
	r.tx.alerts[a.ID()] = cloneAlert(a)
	return nil
}

type mutationRepo struct{ tx *memTx }

// Create enforces the open-mutation partial index.
func (r *mutationRepo) Create(_ context.Context, m *mutation.Mutation) error {
	for _, existing := range r.tx.mutationsOf(m.ParcelID()) {
		if existing.Status().IsOpen() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "open mutation already exists", nil)
		}
	}
	r.tx.mutations[m.ID()] = cloneMutation(m)
	return nil
}

func (r *mutationRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*mutation.Mutation, error) {
	if _, ok := r.tx.mutation(id); !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "mutation not found", nil)
	}
	if err := r.tx.lock(ctx, mutationKey(id)); err != nil {
		return nil, err
	}
	m, _ := r.tx.mutation(id)
	return m, nil
}

func (r *mutationRepo) Update(_ context.Context, m *mutation.Mutation) error {
	if _, ok := r.tx.mutation(m.ID()); !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "mutation not found", nil)
	}
	r.tx.mutations[m.ID()] = cloneMutation(m)
	return nil
}

func (r *mutationRepo) CountOpenByParcel(_ context.Context, parcelID uuid.UUID) (int, error) {
	n := 0
	for _, m := range r.tx.mutationsOf(parcelID) {
		if m.Status().IsOpen() {
			n++
		}
	}
	return n, nil
}

type historyRepo struct{ tx *memTx }

func (r *historyRepo) Append(_ context.Context, e *history.Entry) error {
	r.tx.history = append(r.tx.history, e)
	return nil
}
