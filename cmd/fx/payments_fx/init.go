package payments_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"oneconversion/internal/api/controllers"
	"oneconversion/internal/gateway"
	"oneconversion/internal/repositories"
	"oneconversion/internal/services"
)

var Module = fx.Provide(
	provideWatcher,
	providePaymentService,
	controllers.NewCheckoutController,
)

func provideWatcher(
	gw gateway.Client,
	sales repositories.SaleRepositoryInterface,
	logger *zap.Logger,
) *services.PaymentWatcher {
	return services.NewPaymentWatcher(gw, sales, logger, services.DefaultWatcherConfig())
}

func providePaymentService(
	lc fx.Lifecycle,
	gw gateway.Client,
	sales repositories.SaleRepositoryInterface,
	products repositories.ProductRepositoryInterface,
	watcher *services.PaymentWatcher,
	logger *zap.Logger,
) services.PaymentServiceInterface {
	svc := services.NewPaymentService(gw, sales, products, watcher, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			svc.Close()
			return nil
		},
	})
	return svc
}
