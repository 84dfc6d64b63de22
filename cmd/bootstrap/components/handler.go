package components

import (
	"hotel-desk/internal/handler"
	"hotel-desk/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewCustomerHandler,
		api.NewBillingHandler,
		api.NewWaitlistHandler,
	),
	fx.Invoke(handler.NewRouter),
)
