package components

import (
	"time"

	"pickup-options-service/internal/pkg/clock"
	"pickup-options-service/internal/pkg/config"
	"pickup-options-service/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCandidateSelector,
		NewResolver,
	),
)

func NewResolver(
	cfg config.Config,
	selector *usecase.CandidateSelector,
	availability usecase.AvailabilityCache,
	orders usecase.OrderRepository,
	clk clock.Clock,
) (usecase.PickupResolution, error) {
	requesterTZ, err := time.LoadLocation(cfg.Pickup.RequesterTimezone)
	if err != nil {
		return nil, err
	}
	return usecase.NewResolver(
		selector,
		availability,
		orders,
		clk,
		requesterTZ,
		cfg.Pickup.CartSweepWindow,
	), nil
}
