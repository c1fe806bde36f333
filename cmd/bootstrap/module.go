package bootstrap

import (
	"swim-academy-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// SweeperModule wires only what the maintenance process needs: no HTTP
// surface, no Redis, no JWT.
var SweeperModule = fx.Options(
	ConfigModule,
	DBModule,
	components.PersistenceModule,
	components.SweepModule,
)
