//go:build unit

package directory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parcel-registry/internal/domain/user"
	"parcel-registry/internal/infra"
	"parcel-registry/internal/infra/directory"
	"parcel-registry/internal/infra/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type countingDirectory struct {
	*memstore.Store
	calls atomic.Int32
	gate  chan struct{}
}

func (c *countingDirectory) Role(ctx context.Context, id uuid.UUID) (user.Role, error) {
	c.calls.Add(1)
	if c.gate != nil {
		<-c.gate
	}
	return c.Store.Role(ctx, id)
}

func TestCachedDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("caches resolved roles until forgotten", func(t *testing.T) {
		store := memstore.New()
		id := uuid.New()
		store.SeedUser(id, user.RoleManager, true)
		next := &countingDirectory{Store: store}
		dir := directory.NewCachedDirectory(next, time.Minute)

		for range 3 {
			role, err := dir.Role(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, user.RoleManager, role)
		}
		assert.Equal(t, int32(1), next.calls.Load())

		store.SeedUser(id, user.RoleCitizen, true)
		dir.Forget(id)
		role, err := dir.Role(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, user.RoleCitizen, role)
	})

	t.Run("unknown actors are not cached", func(t *testing.T) {
		next := &countingDirectory{Store: memstore.New()}
		dir := directory.NewCachedDirectory(next, time.Minute)
		id := uuid.New()

		for range 2 {
			_, err := dir.Role(ctx, id)
			assert.True(t, infra.IsKind(err, infra.KindNotFound))
		}
		assert.Equal(t, int32(2), next.calls.Load())
	})

	t.Run("concurrent misses share one lookup", func(t *testing.T) {
		store := memstore.New()
		id := uuid.New()
		store.SeedUser(id, user.RoleOfficer, true)
		next := &countingDirectory{Store: store, gate: make(chan struct{})}
		dir := directory.NewCachedDirectory(next, time.Minute)

		var (
			g       errgroup.Group
			started sync.WaitGroup
		)
		for range 8 {
			started.Add(1)
			g.Go(func() error {
				started.Done()
				_, err := dir.Role(ctx, id)
				return err
			})
		}
		started.Wait()
		// let the goroutines reach the singleflight call before releasing it
		time.Sleep(20 * time.Millisecond)
		close(next.gate)

		require.NoError(t, g.Wait())
		assert.Equal(t, int32(1), next.calls.Load())
	})
}
