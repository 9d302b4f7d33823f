package components

import (
	"pickup-options-service/internal/handler"
	"pickup-options-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPickupHandler,
	),
	fx.Invoke(handler.NewRouter),
)
