package components

import (
	"course-market/internal/handler"
	"course-market/internal/handler/api"
	"course-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferingHandler,
		api.NewEnrollmentHandler,
		api.NewCheckoutHandler,
		api.NewCouponHandler,
		api.NewReferralHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
