//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parcel-registry/internal/domain/alert"
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/domain/history"
	"parcel-registry/internal/domain/mutation"
	"parcel-registry/internal/pkg/errs"
	"parcel-registry/internal/testutil/builder"
	"parcel-registry/internal/usecase/commands"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func (e *env) createMutation(t *testing.T, parcelID uuid.UUID, initiator uuid.UUID, mutate func(*builder.MutationBuilder)) *mutation.Snapshot {
	t.Helper()
	b := builder.NewMutationBuilder().With(func(b *builder.MutationBuilder) { b.ParcelID = parcelID })
	if mutate != nil {
		b.With(mutate)
	}
	snap, err := e.mutations.Create(context.Background(), b.Input(), initiator)
	require.NoError(t, err)
	return snap
}

// seedHold writes an active hold directly, bypassing the availability check.
func seedHold(parcelID, holder uuid.UUID, at time.Time) func(ctx context.Context, tx shared.Tx) error {
	return func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, availability.NewReservation(parcelID, holder, at, 2*time.Hour, nil))
	}
}

func TestMutationCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a pending proposal without checking availability", func(t *testing.T) {
		e := newEnv(t)
		owner := uuid.New()
		parcelID := e.parcel(&owner)

		snap := e.createMutation(t, parcelID, e.citizen, func(b *builder.MutationBuilder) {
			b.FromOwnerID = &owner
		})

		assert.Equal(t, mutation.StatusPending, snap.Status)
		assert.Equal(t, e.citizen, snap.InitiatedBy)
		assert.Equal(t, testNow, snap.CreatedAt)
		assert.Empty(t, e.verifications(t, parcelID))
	})

	t.Run("validation", func(t *testing.T) {
		e := newEnv(t)
		parcelID := e.parcel(nil)

		cases := []struct {
			name string
			b    *builder.MutationBuilder
			kind error
		}{
			{"unknown parcel", builder.NewMutationBuilder(), errs.ErrNotFound},
			{"unknown type", builder.NewMutationBuilder().WithType("lease"), errs.ErrInvalidInput},
			{"negative price", builder.NewMutationBuilder().WithPrice(-1), errs.ErrInvalidInput},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if tc.kind != errs.ErrNotFound {
					tc.b.ParcelID = parcelID
				}
				_, err := e.mutations.Create(ctx, tc.b.Input(), e.citizen)
				requireKind(t, err, tc.kind)
			})
		}
	})

	t.Run("zero price and no price are accepted", func(t *testing.T) {
		e := newEnv(t)
		e.createMutation(t, e.parcel(nil), e.citizen, func(b *builder.MutationBuilder) { b.WithPrice(0) })
		e.createMutation(t, e.parcel(nil), e.citizen, func(b *builder.MutationBuilder) { b.WithoutPrice() })
	})

	t.Run("a second open mutation on the same parcel conflicts", func(t *testing.T) {
		e := newEnv(t)
		parcelID := e.parcel(nil)
		first := e.createMutation(t, parcelID, e.citizen, nil)

		in := builder.NewMutationBuilder().With(func(b *builder.MutationBuilder) { b.ParcelID = parcelID }).Input()
		_, err := e.mutations.Create(ctx, in, e.officer)
		requireKind(t, err, errs.ErrConflict)

		// once the first is terminal a new one may open
		_, err = e.mutations.Cancel(ctx, first.ID, e.citizen, nil)
		require.NoError(t, err)
		_, err = e.mutations.Create(ctx, in, e.officer)
		assert.NoError(t, err)
	})

	t.Run("concurrent creates leave one open mutation", func(t *testing.T) {
		e := newEnv(t)
		parcelID := e.parcel(nil)
		in := builder.NewMutationBuilder().With(func(b *builder.MutationBuilder) { b.ParcelID = parcelID }).Input()

		const callers = 8
		errsOut := make([]error, callers)
		var g errgroup.Group
		for i := range callers {
			g.Go(func() error {
				_, errsOut[i] = e.mutations.Create(ctx, in, e.citizen)
				return nil
			})
		}
		require.NoError(t, g.Wait())

		succeeded := 0
		for _, err := range errsOut {
			if err == nil {
				succeeded++
			}
		}
		assert.Equal(t, 1, succeeded)

		list, err := e.store.ListMutationsByParcel(ctx, parcelID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("unknown initiator is denied", func(t *testing.T) {
		e := newEnv(t)
		in := builder.NewMutationBuilder().With(func(b *builder.MutationBuilder) { b.ParcelID = e.parcel(nil) }).Input()
		_, err := e.mutations.Create(ctx, in, uuid.New())
		requireKind(t, err, errs.ErrPermissionDenied)
	})
}

func TestMutationRejectThenApprove(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	m := e.createMutation(t, e.parcel(nil), e.citizen, nil)

	e.clock.Add(time.Hour)
	rejected, err := e.mutations.Reject(ctx, m.ID, e.manager, "missing documents")
	require.NoError(t, err)
	assert.Equal(t, mutation.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "missing documents", *rejected.RejectionReason)
	require.NotNil(t, rejected.ApprovedBy)
	assert.Equal(t, e.manager, *rejected.ApprovedBy)
	assert.Equal(t, testNow.Add(time.Hour), *rejected.ApprovedAt)

	_, err = e.mutations.Approve(ctx, m.ID, e.manager)
	requireKind(t, err, errs.ErrInvalidTransition)

	stored, err := e.store.FindMutation(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, string(mutation.StatusRejected), stored.Status)
}

func TestMutationTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("reject needs a reason", func(t *testing.T) {
		e := newEnv(t)
		m := e.createMutation(t, e.parcel(nil), e.citizen, nil)

		_, err := e.mutations.Reject(ctx, m.ID, e.manager, "   ")
		requireKind(t, err, errs.ErrInvalidInput)
	})

	t.Run("rejecting a terminal mutation is a transition error even without a reason", func(t *testing.T) {
		e := newEnv(t)
		m := e.createMutation(t, e.parcel(nil), e.citizen, nil)
		_, err := e.mutations.Reject(ctx, m.ID, e.manager, "dossier incomplet")
		require.NoError(t, err)

		_, err = e.mutations.Reject(ctx, m.ID, e.manager, "")
		requireKind(t, err, errs.ErrInvalidTransition)
	})

	t.Run("approve, reject and complete need an elevated actor", func(t *testing.T) {
		e := newEnv(t)
		m := e.createMutation(t, e.parcel(nil), e.citizen, nil)

		_, err := e.mutations.Approve(ctx, m.ID, e.citizen)
		requireKind(t, err, errs.ErrPermissionDenied)
		_, err = e.mutations.Reject(ctx, m.ID, e.officer, "non")
		requireKind(t, err, errs.ErrPermissionDenied)
		_, err = e.mutations.Complete(ctx, m.ID, e.citizen)
		requireKind(t, err, errs.ErrPermissionDenied)
	})

	t.Run("unknown mutation", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.mutations.Approve(ctx, uuid.New(), e.admin)
		requireKind(t, err, errs.ErrNotFound)
		assert.Equal(t, "Mutation non trouvée", err.Error())
	})

	t.Run("complete requires approval", func(t *testing.T) {
		e := newEnv(t)
		m := e.createMutation(t, e.parcel(nil), e.citizen, nil)

		_, err := e.mutations.Complete(ctx, m.ID, e.admin)
		requireKind(t, err, errs.ErrInvalidTransition)
	})

	t.Run("concurrent approvals succeed once", func(t *testing.T) {
		e := newEnv(t)
		m := e.createMutation(t, e.parcel(nil), e.citizen, nil)

		const callers = 8
		results := make([]error, callers)
		var g errgroup.Group
		for i := range callers {
			g.Go(func() error {
				_, results[i] = e.mutations.Approve(ctx, m.ID, e.manager)
				return nil
			})
		}
		require.NoError(t, g.Wait())

		succeeded := 0
		for _, err := range results {
			if err == nil {
				succeeded++
				continue
			}
			requireKind(t, err, errs.ErrInvalidTransition)
		}
		assert.Equal(t, 1, succeeded)
	})
}

func TestMutationCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("initiator cancels a pending mutation", func(t *testing.T) {
		e := newEnv(t)
		m := e.createMutation(t, e.parcel(nil), e.citizen, nil)
		reason := "  Acheteur désisté "

		cancelled, err := e.mutations.Cancel(ctx, m.ID, e.citizen, &reason)
		require.NoError(t, err)
		assert.Equal(t, mutation.StatusCancelled, cancelled.Status)
		assert.Equal(t, e.citizen, *cancelled.CancelledBy)
		assert.Equal(t, "Acheteur désisté", *cancelled.CancellationReason)

		_, err = e.mutations.Cancel(ctx, m.ID, e.citizen, nil)
		requireKind(t, err, errs.ErrInvalidTransition)
	})

	t.Run("elevated actor cancels an approved mutation", func(t *testing.T) {
		e := newEnv(t)
		m := e.createMutation(t, e.parcel(nil), e.citizen, nil)
		_, err := e.mutations.Approve(ctx, m.ID, e.manager)
		require.NoError(t, err)

		cancelled, err := e.mutations.Cancel(ctx, m.ID, e.admin, nil)
		require.NoError(t, err)
		assert.Equal(t, mutation.StatusCancelled, cancelled.Status)
	})

	t.Run("other actors are denied", func(t *testing.T) {
		e := newEnv(t)
		m := e.createMutation(t, e.parcel(nil), e.citizen, nil)

		_, err := e.mutations.Cancel(ctx, m.ID, e.officer, nil)
		requireKind(t, err, errs.ErrPermissionDenied)
	})
}

func TestMutationComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("transfers ownership and supersedes the party's hold", func(t *testing.T) {
		e := newEnv(t)
		seller, buyer := uuid.New(), uuid.New()
		parcelID := e.parcel(&seller)

		m := e.createMutation(t, parcelID, e.citizen, func(b *builder.MutationBuilder) {
			b.WithOwners(&seller, &buyer)
		})
		_, err := e.mutations.Approve(ctx, m.ID, e.manager)
		require.NoError(t, err)

		// the approver holds the parcel while the deed is signed
		require.NoError(t, e.store.Within(ctx, seedHold(parcelID, e.manager, testNow)))

		e.clock.Add(time.Hour)
		done, err := e.mutations.Complete(ctx, m.ID, e.admin)
		require.NoError(t, err)
		assert.Equal(t, mutation.StatusCompleted, done.Status)
		assert.Equal(t, testNow.Add(time.Hour), *done.CompletedAt)

		p := e.parcelView(t, parcelID)
		require.NotNil(t, p.OwnerID)
		assert.Equal(t, buyer, *p.OwnerID)
		assert.Equal(t, int64(2), p.Version)

		entries, err := e.store.ListOwnershipHistory(ctx, parcelID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, history.ActionOwnerAssigned, entries[0].Action)
		assert.Equal(t, seller.String(), *entries[0].OldValue)
		assert.Equal(t, buyer.String(), *entries[0].NewValue)
		assert.Equal(t, e.admin, entries[0].ChangedBy)
		assert.Equal(t, m.ID, *entries[0].MutationID)

		hold, err := e.store.FindActiveReservation(ctx, parcelID, e.clock.Now())
		require.NoError(t, err)
		assert.Nil(t, hold)
	})

	t.Run("owner changed since approval is a conflict and the mutation stays approved", func(t *testing.T) {
		e := newEnv(t)
		parcelID := e.parcel(nil)
		m := e.createMutation(t, parcelID, e.citizen, nil)
		_, err := e.mutations.Approve(ctx, m.ID, e.manager)
		require.NoError(t, err)

		_, err = e.ownership.AssignOwner(ctx, commands.AssignOwnerInput{ParcelID: parcelID, NewOwnerID: uuid.New()}, e.admin)
		require.NoError(t, err)

		_, err = e.mutations.Complete(ctx, m.ID, e.admin)
		requireKind(t, err, errs.ErrConflict)
		assert.Equal(t, "Parcelle déjà attribuée", err.Error())

		stored, err := e.store.FindMutation(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, string(mutation.StatusApproved), stored.Status)
		assert.Nil(t, stored.CompletedAt)

		var conflicts int
		for _, a := range e.alertsFor(t, parcelID) {
			if a.AlertType == string(alert.TypeConflictDetected) {
				conflicts++
			}
		}
		assert.Equal(t, 1, conflicts)
	})

	t.Run("a hold by an outsider blocks completion", func(t *testing.T) {
		e := newEnv(t)
		parcelID := e.parcel(nil)
		m := e.createMutation(t, parcelID, e.citizen, nil)
		_, err := e.mutations.Approve(ctx, m.ID, e.manager)
		require.NoError(t, err)

		_, err = e.availability.Reserve(ctx, commands.ReserveInput{ParcelID: parcelID}, e.admin)
		require.NoError(t, err)

		_, err = e.mutations.Complete(ctx, m.ID, e.admin)
		requireKind(t, err, errs.ErrConflict)
		assert.Equal(t, availability.ReasonReserved.Message(), err.Error())
	})

	t.Run("no target owner clears the parcel", func(t *testing.T) {
		e := newEnv(t)
		owner := uuid.New()
		parcelID := e.parcel(&owner)
		m := e.createMutation(t, parcelID, e.citizen, func(b *builder.MutationBuilder) {
			b.WithType(string(mutation.TypeExpropriation)).WithOwners(&owner, nil)
		})
		_, err := e.mutations.Approve(ctx, m.ID, e.admin)
		require.NoError(t, err)

		_, err = e.mutations.Complete(ctx, m.ID, e.admin)
		require.NoError(t, err)
		assert.Nil(t, e.parcelView(t, parcelID).OwnerID)
	})

	t.Run("completing twice is an invalid transition", func(t *testing.T) {
		e := newEnv(t)
		parcelID := e.parcel(nil)
		m := e.createMutation(t, parcelID, e.citizen, nil)
		_, err := e.mutations.Approve(ctx, m.ID, e.admin)
		require.NoError(t, err)
		_, err = e.mutations.Complete(ctx, m.ID, e.admin)
		require.NoError(t, err)

		_, err = e.mutations.Complete(ctx, m.ID, e.admin)
		requireKind(t, err, errs.ErrInvalidTransition)
	})
}
