package components

import (
	"hotel-desk/internal/pkg/clock"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomCommands,
		commands.NewBookingCommands,
		commands.NewCustomerCommands,
		commands.NewBillingCommands,
		commands.NewWaitlistCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewCustomerQueries,
		queries.NewBillingQueries,
	),
)
