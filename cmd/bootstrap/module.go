package bootstrap

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"voicefront/internal/handler"
	"voicefront/internal/handler/api"
	"voicefront/internal/infra/checkfront"
	"voicefront/internal/pkg/clock"
	"voicefront/internal/pkg/config"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/usecase/commands"
	"voicefront/internal/usecase/queries"
	"voicefront/internal/usecase/shared"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			config.LoadConfig,
			func(cfg config.Config) *slog.Logger { return NewLogger(cfg.Log) },
			clock.NewRealClock,
			newResolver,
			newGateway,
		),
		fx.Provide(
			newCatalogQuery,
			newAvailabilityQuery,
			newCheckBookingQuery,
			newCustomerLookupQuery,
			newCreateBooking,
			newCancelBooking,
			newModifyBooking,
			newChangeBooking,
		),
		fx.Provide(
			api.NewHealthHandler,
			api.NewCatalogHandler,
			api.NewAvailabilityHandler,
			api.NewBookingHandler,
			api.NewCustomerHandler,
			newRouter,
		),
		fx.Invoke(registerServer),
	)
}

func newResolver(cfg config.Config, clk clock.Clock) (*dates.Resolver, error) {
	return dates.NewResolver(clk, cfg.Voice.Timezone)
}

func newGateway(cfg config.Config) shared.ReservationGateway {
	return checkfront.NewGateway(checkfront.NewClient(cfg.Engine), cfg.Engine)
}

func newCatalogQuery(gw shared.ReservationGateway) *queries.CatalogQuery {
	return queries.NewCatalogQuery(gw)
}

func newAvailabilityQuery(cfg config.Config, gw shared.ReservationGateway, resolver *dates.Resolver) *queries.AvailabilityQuery {
	return queries.NewAvailabilityQuery(gw, resolver, cfg.Voice.WindowDays)
}

func newCheckBookingQuery(cfg config.Config, gw shared.ReservationGateway) *queries.CheckBookingQuery {
	return queries.NewCheckBookingQuery(gw, cfg.Voice.DefaultRegion)
}

func newCustomerLookupQuery(cfg config.Config, gw shared.ReservationGateway, resolver *dates.Resolver) *queries.CustomerLookupQuery {
	return queries.NewCustomerLookupQuery(gw, resolver, cfg.Voice.DefaultRegion)
}

func newCreateBooking(cfg config.Config, gw shared.ReservationGateway, resolver *dates.Resolver) *commands.CreateBooking {
	return commands.NewCreateBooking(gw, resolver, cfg.Voice.DefaultRegion)
}

func newCancelBooking(cfg config.Config, gw shared.ReservationGateway, finder *queries.CheckBookingQuery) *commands.CancelBooking {
	return commands.NewCancelBooking(gw, finder, cfg.Voice.DefaultRegion)
}

func newModifyBooking(cfg config.Config, gw shared.ReservationGateway, finder *queries.CheckBookingQuery, resolver *dates.Resolver) *commands.ModifyBooking {
	return commands.NewModifyBooking(gw, finder, resolver, cfg.Voice.DefaultRegion)
}

func newChangeBooking(
	cfg config.Config,
	gw shared.ReservationGateway,
	finder *queries.CheckBookingQuery,
	create *commands.CreateBooking,
	resolver *dates.Resolver,
) *commands.ChangeBooking {
	return commands.NewChangeBooking(gw, finder, create, resolver, cfg.Voice.DefaultRegion)
}

func newRouter(
	cfg config.Config,
	health *api.HealthHandler,
	catalog *api.CatalogHandler,
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	customer *api.CustomerHandler,
) *gin.Engine {
	return handler.NewRouter(cfg, handler.Handlers{
		Health:       health,
		Catalog:      catalog,
		Availability: availability,
		Booking:      booking,
		Customer:     customer,
	})
}
