package components

import (
	"studiobook/internal/handler"
	"studiobook/internal/handler/api"
	"studiobook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewDashboardHandler,
		api.NewStudioHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
