package availability

import (
	"time"

	"parcel-registry/internal/pkg/errs"
)

const (
	DefaultReservationTTL = 30 * time.Minute
	MaxReservationTTL     = 480 * time.Minute
)

var ErrInvalidTTL = errs.WithKind(errs.ErrInvalidInput, "Durée de réservation invalide (1 à 480 minutes)")

type TTLPolicy struct {
	Default time.Duration
	Max     time.Duration
}

func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{Default: DefaultReservationTTL, Max: MaxReservationTTL}
}

// Resolve applies the default when nothing was requested and rejects
// non-positive durations and durations above the cap.
func (p TTLPolicy) Resolve(requested *time.Duration) (time.Duration, error) {
	if requested == nil {
		return p.Default, nil
	}
	ttl := *requested
	if ttl <= 0 || ttl > p.Max {
		return 0, ErrInvalidTTL
	}
	return ttl, nil
}
