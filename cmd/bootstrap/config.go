package bootstrap

import (
	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/pkg/config"
	"parcel-registry/internal/usecase/queries"
	"parcel-registry/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// PolicyModule derives the allocation tunables from config so use-cases and
// stores don't depend on the config package.
var PolicyModule = fx.Module("policy",
	fx.Provide(
		NewTTLPolicy,
		NewHistoryLimits,
		NewRetryPolicy,
	),
)

func NewTTLPolicy(cfg config.Config) availability.TTLPolicy {
	return availability.TTLPolicy{
		Default: cfg.Allocation.DefaultReservationTTL,
		Max:     cfg.Allocation.MaxReservationTTL,
	}
}

func NewHistoryLimits(cfg config.Config) queries.HistoryLimits {
	return queries.HistoryLimits{
		Default: cfg.Allocation.DefaultHistoryLimit,
		Max:     cfg.Allocation.MaxHistoryLimit,
	}
}

func NewRetryPolicy(cfg config.Config) shared.RetryPolicy {
	return shared.RetryPolicy{
		MaxRetries: cfg.Allocation.MaxTransactionRetries,
		Base:       cfg.Allocation.TransactionRetryBackoff,
	}
}
