//go:build unit

package keylock_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"parcel-registry/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLocker(t *testing.T) {
	t.Run("serializes the same key", func(t *testing.T) {
		l := keylock.New()
		var inside, maxInside int32

		var g errgroup.Group
		for range 20 {
			g.Go(func() error {
				release, err := l.Acquire(context.Background(), "parcel-1")
				if err != nil {
					return err
				}
				defer release()

				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxInside)
					if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
		}
		require.NoError(t, g.Wait())
		assert.Equal(t, int32(1), maxInside)
		assert.Equal(t, 0, l.Len())
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		l := keylock.New()
		releaseA, err := l.Acquire(context.Background(), "a")
		require.NoError(t, err)
		defer releaseA()

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		releaseB, err := l.Acquire(ctx, "b")
		require.NoError(t, err)
		releaseB()
	})

	t.Run("times out while the key is held", func(t *testing.T) {
		l := keylock.New()
		release, err := l.Acquire(context.Background(), "a")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = l.Acquire(ctx, "a")
		require.ErrorIs(t, err, context.DeadlineExceeded)

		release()
		release()
		assert.Equal(t, 0, l.Len())
	})
}
