package components

import (
	"parkease/internal/handler"
	"parkease/internal/handler/api"
	reqdto "parkease/internal/handler/dto/request"
	"parkease/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingRequestHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
		func(br *api.BookingRequestHandler, av *api.AvailabilityHandler) handler.Handlers {
			return handler.Handlers{BookingRequests: br, Availability: av}
		},
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)
