package components

import (
	"parcel-registry/internal/handler"
	"parcel-registry/internal/handler/api"
	"parcel-registry/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewMutationHandler,
		api.NewOwnershipHandler,
		api.NewAlertHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	availability *api.AvailabilityHandler,
	mutation *api.MutationHandler,
	ownership *api.OwnershipHandler,
	alert *api.AlertHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Mutation:     mutation,
		Ownership:    ownership,
		Alert:        alert,
	}
}
