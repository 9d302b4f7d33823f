package components

import (
	"pickup-options-service/internal/infra/cache"
	"pickup-options-service/internal/infra/repository"
	"pickup-options-service/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewPointRepository,
			fx.As(new(usecase.PointRepository)),
		),
		fx.Annotate(
			repository.NewVendorRepository,
			fx.As(new(usecase.VendorDirectory)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			cache.NewRedisAvailabilityCache,
			fx.As(new(usecase.AvailabilityCache)),
		),
	),
)
