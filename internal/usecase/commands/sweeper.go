package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sweeper runs SweepExpired on a fixed interval until stopped.
type Sweeper struct {
	availability AvailabilityCommands
	interval     time.Duration

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewSweeper(availability AvailabilityCommands, interval time.Duration) *Sweeper {
	return &Sweeper{availability: availability, interval: interval}
}

func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

func (s *Sweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.once.Do(s.cancel)

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	start := time.Now()
	result, err := s.availability.SweepExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("reservation sweep failed", "error", err.Error())
		}
		return
	}
	if result.Expired > 0 {
		slog.Info("reservation sweep completed",
			"parcels", result.Parcels,
			"expired", result.Expired,
			"duration_ms", time.Since(start).Milliseconds())
	}
}
