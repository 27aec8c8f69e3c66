package bootstrap

import (
	"parcel-registry/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	PolicyModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	JWTModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
