package sales_fx

import (
	"go.uber.org/fx"

	"oneconversion/internal/api/controllers"
	"oneconversion/internal/services"
)

var Module = fx.Provide(
	services.NewSalesService,
	controllers.NewSalesController,
)
