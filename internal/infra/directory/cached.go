package directory

import (
	"context"
	"time"

	"parcel-registry/internal/domain/user"
	"parcel-registry/internal/usecase/shared"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// CachedDirectory keeps resolved roles for a TTL. Concurrent misses for the
// same actor share one lookup; failures are never cached.
type CachedDirectory struct {
	next  shared.ActorDirectory
	cache *gocache.Cache
	group singleflight.Group
}

func NewCachedDirectory(next shared.ActorDirectory, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (d *CachedDirectory) Role(ctx context.Context, actorID uuid.UUID) (user.Role, error) {
	key := actorID.String()
	if cached, ok := d.cache.Get(key); ok {
		return cached.(user.Role), nil
	}

	v, err, _ := d.group.Do(key, func() (any, error) {
		role, err := d.next.Role(ctx, actorID)
		if err != nil {
			return nil, err
		}
		d.cache.SetDefault(key, role)
		return role, nil
	})
	if err != nil {
		return "", err
	}
	return v.(user.Role), nil
}

// Forget drops a cached role, e.g. after the user is deactivated.
func (d *CachedDirectory) Forget(actorID uuid.UUID) {
	d.cache.Delete(actorID.String())
}
