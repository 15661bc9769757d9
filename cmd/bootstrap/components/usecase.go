package components

import (
	"parkease/internal/domain/booking"
	"parkease/internal/pkg/clock"
	"parkease/internal/pkg/config"
	"parkease/internal/usecase"
	"parkease/internal/usecase/commands"
	"parkease/internal/usecase/queries"
	"parkease/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingRequestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingRequestQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPricingPolicy(cfg config.Config) booking.PricingPolicy {
	return booking.PricingPolicy{
		TaxPercent:       cfg.Pricing.TaxPercent,
		PlatformFeeCents: cfg.Pricing.PlatformFeeCents,
	}
}

type bookingRequestDeps struct {
	fx.In

	UoW      shared.UnitOfWork
	Codes    booking.CodeGenerator
	Notifier shared.Notifier
	Clock    clock.Clock
	Pricing  booking.PricingPolicy
	Config   config.Config
}

func NewBookingRequestCommands(d bookingRequestDeps) commands.BookingRequestCommands {
	return commands.NewBookingRequestUseCase(commands.Deps{
		UoW:           d.UoW,
		Codes:         d.Codes,
		Notifier:      d.Notifier,
		Clock:         d.Clock,
		Pricing:       d.Pricing,
		NotifyTimeout: d.Config.Notify.Timeout,
	})
}
