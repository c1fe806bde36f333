package bootstrap

import (
	"swim-academy-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.PolicyConfig { return cfg.Policy },
		func(cfg config.Config) config.GatewayConfig { return cfg.Gateway },
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	),
)
