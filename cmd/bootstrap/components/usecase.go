package components

import (
	"time"

	"swim-academy-api/internal/infra/gateway"
	"swim-academy-api/internal/infra/notifier"
	"swim-academy-api/internal/pkg/clock"
	"swim-academy-api/internal/usecase"
	"swim-academy-api/internal/usecase/commands"
	"swim-academy-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewLockerInventoryManager,
	usecase.NewAuthUseCase,
	fx.Annotate(
		notifier.NewRedisCapacityNotifier,
		fx.As(new(commands.CapacityNotifier)),
	),
	fx.Annotate(
		gateway.NewManualRefundExecutor,
		fx.As(new(commands.RefundExecutor)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAdmissionCommands,
		commands.NewReconciliationCommands,
		commands.NewCancellationCommands,
		commands.NewSweepCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(repo queries.EnrollmentViewRepo, clk clock.Clock) queries.EnrollmentQueries {
			return queries.NewEnrollmentQueries(repo, func() time.Time { return clk.Now() })
		},
		queries.NewRefundQueries,
	),
)

// SweepModule is the standalone wiring for the maintenance process.
var SweepModule = fx.Module("sweep",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewLockerInventoryManager,
		commands.NewSweepCommands,
	),
)
