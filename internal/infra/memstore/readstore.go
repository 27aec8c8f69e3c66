package memstore

import (
	"context"
	"sort"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/user"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/usecase/queries"

	"github.com/google/uuid"
)

// Read side: committed state only, never blocked by row locks.

func (s *Store) FindParcel(_ context.Context, id uuid.UUID) (*queries.ParcelView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.parcels[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "parcel not found", nil)
	}
	return &queries.ParcelView{
		ID:        id,
		Reference: row.reference,
		OwnerID:   row.ownerID,
		Version:   row.version,
	}, nil
}

func (s *Store) FindActiveReservation(_ context.Context, parcelID uuid.UUID, now time.Time) (*queries.ReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reservations {
		if r.ParcelID() == parcelID && r.IsActiveAt(now) {
			return queries.NewReservationView(r), nil
		}
	}
	return nil, nil
}

func (s *Store) ListVerifications(_ context.Context, parcelID *uuid.UUID, limit int) ([]*queries.VerificationLogView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*queries.VerificationLogView, 0)
	// appended in commit order, so walk backwards for newest first
	for i := len(s.verifications) - 1; i >= 0 && len(out) < limit; i-- {
		e := s.verifications[i]
		if parcelID != nil && e.ParcelID() != *parcelID {
			continue
		}
		out = append(out, queries.NewVerificationLogView(e))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CheckTimestamp.After(out[j].CheckTimestamp)
	})
	return out, nil
}

func (s *Store) FindMutation(_ context.Context, id uuid.UUID) (*queries.MutationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.mutations[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "mutation not found", nil)
	}
	return queries.NewMutationView(m.Snapshot()), nil
}

func (s *Store) ListMutationsByParcel(_ context.Context, parcelID uuid.UUID) ([]*queries.MutationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*queries.MutationView, 0)
	for _, m := range s.mutations {
		if m.ParcelID() == parcelID {
			out = append(out, queries.NewMutationView(m.Snapshot()))
		}
	}
	sortMutations(out)
	return out, nil
}

func (s *Store) ListMutations(_ context.Context, status *string, limit, offset int) ([]*queries.MutationView, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*queries.MutationView, 0)
	for _, m := range s.mutations {
		if status != nil && string(m.Status()) != *status {
			continue
		}
		all = append(all, queries.NewMutationView(m.Snapshot()))
	}
	sortMutations(all)

	total := len(all)
	if offset >= total {
		return []*queries.MutationView{}, total, nil
	}
	end := min(offset+limit, total)
	return all[offset:end], total, nil
}

func (s *Store) ListOwnershipHistory(_ context.Context, parcelID uuid.UUID) ([]*queries.OwnershipHistoryView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*queries.OwnershipHistoryView, 0)
	for i := len(s.history) - 1; i >= 0; i-- {
		e := s.history[i]
		if e.ParcelID() == parcelID {
			out = append(out, queries.NewOwnershipHistoryView(e))
		}
	}
	return out, nil
}

func (s *Store) ListAlerts(_ context.Context, filter queries.AlertFilter, after *queries.Position, limit int) ([]*queries.AlertView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*alert.Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if matchesAlert(a, filter) {
			all = append(all, a)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return newerThan(all[i].CreatedAt(), all[i].ID(), all[j].CreatedAt(), all[j].ID())
	})

	out := make([]*queries.AlertView, 0)
	for _, a := range all {
		if after != nil && !newerThan(after.CreatedAt, after.ID, a.CreatedAt(), a.ID()) {
			continue
		}
		out = append(out, queries.NewAlertView(a))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// Role implements the actor directory.
func (s *Store) Role(_ context.Context, actorID uuid.UUID) (user.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[actorID]
	if !ok || !u.active {
		return "", infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return u.role, nil
}

func matchesAlert(a *alert.Alert, f queries.AlertFilter) bool {
	if f.Acknowledged != nil && a.Acknowledged() != *f.Acknowledged {
		return false
	}
	if f.AlertType != nil && string(a.Type()) != *f.AlertType {
		return false
	}
	if f.Severity != nil && string(a.Severity()) != *f.Severity {
		return false
	}
	if f.ParcelID != nil && (a.ParcelID() == nil || *a.ParcelID() != *f.ParcelID) {
		return false
	}
	return true
}

// newerThan orders by (created_at, id) descending, the same keyset the
// PostgreSQL store uses.
func newerThan(at time.Time, id uuid.UUID, otherAt time.Time, otherID uuid.UUID) bool {
	if !at.Equal(otherAt) {
		return at.After(otherAt)
	}
	return id.String() > otherID.String()
}

func sortMutations(views []*queries.MutationView) {
	sort.Slice(views, func(i, j int) bool {
		return newerThan(views[i].CreatedAt, views[i].ID, views[j].CreatedAt, views[j].ID)
	})
}
