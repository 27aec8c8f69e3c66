//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/history"
	"parcel-registry/internal/domain/mutation"
	"parcel-registry/internal/infra/memstore"
	"parcel-registry/internal/pkg/clock"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/testutil/builder"
	"parcel-registry/internal/usecase/queries"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func seed(t *testing.T, store *memstore.Store, fn func(ctx context.Context, tx shared.Tx) error) {
	t.Helper()
	require.NoError(t, store.Within(context.Background(), fn))
}

func newParcel(store *memstore.Store, owner *uuid.UUID) uuid.UUID {
	id := uuid.New()
	store.SeedParcel(id, "ABJ-PLT-"+id.String()[:4], owner)
	return id
}

func TestGetVerificationHistory(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	clk := clock.NewMockClock(now)
	q := queries.NewAvailabilityQueries(store, store, queries.HistoryLimits{Default: 3, Max: 5}, clk)

	parcelID, other := newParcel(store, nil), newParcel(store, nil)
	checker := uuid.New()
	seed(t, store, func(ctx context.Context, tx shared.Tx) error {
		for i := range 8 {
			entry := availability.NewVerificationLogEntry(parcelID, checker, availability.Available(), now.Add(time.Duration(i)*time.Minute))
			if err := tx.Verifications().Append(ctx, entry); err != nil {
				return err
			}
		}
		return tx.Verifications().Append(ctx, availability.NewVerificationLogEntry(other, checker, availability.NotFound(), now.Add(time.Hour)))
	})

	cases := []struct {
		name     string
		parcelID *uuid.UUID
		limit    int
		want     int
	}{
		{"default limit", &parcelID, 0, 3},
		{"negative limit uses default", &parcelID, -4, 3},
		{"limit capped", &parcelID, 50, 5},
		{"explicit limit", &parcelID, 4, 4},
		{"all parcels", nil, 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := q.GetVerificationHistory(ctx, tc.parcelID, tc.limit)
			require.NoError(t, err)
			assert.Len(t, rows, tc.want)
		})
	}

	t.Run("newest first", func(t *testing.T) {
		rows, err := q.GetVerificationHistory(ctx, nil, 2)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, other, rows[0].ParcelID)
		assert.Equal(t, string(availability.ReasonNotFound), rows[0].Reason)
		assert.Equal(t, now.Add(7*time.Minute), rows[1].CheckTimestamp)
	})
}

func TestGetParcelStatus(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	clk := clock.NewMockClock(now)
	q := queries.NewAvailabilityQueries(store, store, queries.HistoryLimits{Default: 20, Max: 200}, clk)

	owner, holder := uuid.New(), uuid.New()
	free := newParcel(store, nil)
	owned := newParcel(store, &owner)
	held := newParcel(store, nil)
	seed(t, store, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, availability.NewReservation(held, holder, now, 10*time.Minute, nil))
	})

	status := func(id uuid.UUID) *queries.ParcelStatusView {
		t.Helper()
		v, err := q.GetParcelStatus(ctx, id)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "available", status(free).Status)
	assert.Nil(t, status(free).ActiveReservation)

	got := status(owned)
	assert.Equal(t, "assigned", got.Status)
	assert.Equal(t, owner, *got.OwnerID)

	got = status(held)
	assert.Equal(t, "reserved", got.Status)
	require.NotNil(t, got.ActiveReservation)
	assert.Equal(t, holder, got.ActiveReservation.ReservedBy)

	clk.Add(10 * time.Minute)
	assert.Equal(t, "available", status(held).Status)

	_, err := q.GetParcelStatus(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestMutationQueries(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	q := queries.NewMutationQueries(store)

	parcelID := newParcel(store, nil)
	var ids []uuid.UUID
	seed(t, store, func(ctx context.Context, tx shared.Tx) error {
		for i := range 5 {
			b := builder.NewMutationBuilder().With(func(b *builder.MutationBuilder) {
				b.Now = now.Add(time.Duration(i) * time.Minute)
				if i > 0 {
					b.ParcelID = uuid.New()
				} else {
					b.ParcelID = parcelID
				}
			})
			m, err := b.BuildDomain()
			if err != nil {
				return err
			}
			if i%2 == 1 {
				if err = m.Approve(uuid.New(), b.Now); err != nil {
					return err
				}
			}
			if err = tx.Mutations().Create(ctx, m); err != nil {
				return err
			}
			ids = append(ids, m.ID())
		}
		return nil
	})

	t.Run("get", func(t *testing.T) {
		v, err := q.Get(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, parcelID, v.ParcelID)
		assert.Equal(t, string(mutation.StatusPending), v.Status)

		_, err = q.Get(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("by parcel", func(t *testing.T) {
		rows, err := q.ListByParcel(ctx, parcelID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, ids[0], rows[0].ID)
	})

	t.Run("paging is newest first", func(t *testing.T) {
		page, err := q.List(ctx, nil, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, page.Total)
		assert.Equal(t, 2, page.Page)
		got := []uuid.UUID{page.Items[0].ID, page.Items[1].ID}
		if diff := cmp.Diff([]uuid.UUID{ids[2], ids[1]}, got); diff != "" {
			t.Errorf("page mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("page defaults", func(t *testing.T) {
		page, err := q.List(ctx, nil, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.PageSize)
		assert.Len(t, page.Items, 5)

		page, err = q.List(ctx, nil, 9, 1000)
		require.NoError(t, err)
		assert.Equal(t, 100, page.PageSize)
		assert.Empty(t, page.Items)
	})

	t.Run("status filter", func(t *testing.T) {
		approved := string(mutation.StatusApproved)
		page, err := q.List(ctx, &approved, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)

		bogus := "archived"
		_, err = q.List(ctx, &bogus, 1, 10)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})
}

func TestGetOwnershipHistory(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	q := queries.NewOwnershipQueries(store, store)

	parcelID := newParcel(store, nil)
	first, second, actor := uuid.New(), uuid.New(), uuid.New()
	seed(t, store, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.History().Append(ctx, history.NewOwnerChange(parcelID, nil, &first, actor, nil, "Attribution directe", now)); err != nil {
			return err
		}
		return tx.History().Append(ctx, history.NewOwnerChange(parcelID, &first, &second, actor, nil, "Attribution directe", now.Add(time.Hour)))
	})

	rows, err := q.GetOwnershipHistory(ctx, parcelID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.String(), *rows[0].NewValue)
	assert.Equal(t, first.String(), *rows[0].OldValue)
	assert.Nil(t, rows[1].OldValue)

	_, err = q.GetOwnershipHistory(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestAlertQueries(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	q := queries.NewAlertQueries(store)

	parcelID := newParcel(store, nil)
	seed(t, store, func(ctx context.Context, tx shared.Tx) error {
		for i := range 5 {
			sev := alert.SeverityLow
			if i%2 == 0 {
				sev = alert.SeverityHigh
			}
			a, err := alert.NewAlert(alert.TypeDoubleAttributionAttempt, sev, &parcelID, nil, "tentative", now.Add(time.Duration(i)*time.Second))
			if err != nil {
				return err
			}
			if err = tx.Alerts().Create(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})

	t.Run("cursor walks every alert once", func(t *testing.T) {
		seen := map[uuid.UUID]bool{}
		var cursor *queries.Cursor
		pages := 0
		for {
			rows, next, err := q.List(ctx, queries.AlertFilter{}, cursor, 2)
			require.NoError(t, err)
			pages++
			for _, r := range rows {
				assert.False(t, seen[r.ID], "alert returned twice")
				seen[r.ID] = true
			}
			if next == nil {
				break
			}
			cursor = next
		}
		assert.Len(t, seen, 5)
		assert.Equal(t, 3, pages)
	})

	t.Run("filters", func(t *testing.T) {
		high := string(alert.SeverityHigh)
		rows, next, err := q.List(ctx, queries.AlertFilter{Severity: &high}, nil, 10)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
		assert.Nil(t, next)

		unacked := false
		rows, _, err = q.List(ctx, queries.AlertFilter{Acknowledged: &unacked, ParcelID: &parcelID}, nil, 10)
		require.NoError(t, err)
		assert.Len(t, rows, 5)
	})

	t.Run("invalid input", func(t *testing.T) {
		bad := "catastrophic"
		_, _, err := q.List(ctx, queries.AlertFilter{Severity: &bad}, nil, 10)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput))

		_, _, err = q.List(ctx, queries.AlertFilter{AlertType: &bad}, nil, 10)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput))

		_, _, err = q.List(ctx, queries.AlertFilter{}, &queries.Cursor{After: "not-a-cursor"}, 10)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})
}

func TestCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 3, 2, 9, 0, 0, 123456789, time.UTC)

	pos, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.Equal(t, id, pos.ID)
	assert.Equal(t, at.Truncate(time.Microsecond), pos.CreatedAt)

	for _, bad := range []string{"", "!!!", "djI6MTIzX3g="} {
		_, err := queries.DecodeAfterCursor(bad)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput), bad)
	}
}
