package components

import (
	"time"

	"swim-academy-api/internal/handler"
	"swim-academy-api/internal/handler/api"
	"swim-academy-api/internal/handler/middleware"
	"swim-academy-api/internal/pkg/config"
	"swim-academy-api/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(authUseCase usecase.AuthUseCase, cfg config.Config) *api.AuthHandler {
			expiry, err := time.ParseDuration(cfg.JWT.Duration)
			if err != nil {
				expiry = 24 * time.Hour
			}
			return api.NewAuthHandler(authUseCase, cfg.Cookie, expiry)
		},
		api.NewEnrollmentHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		func(authUseCase usecase.AuthUseCase) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(authUseCase)
		},
	),
	fx.Invoke(handler.NewRouter),
)
