package products_fx

import (
	"go.uber.org/fx"

	"oneconversion/internal/api/controllers"
	"oneconversion/internal/services"
)

var Module = fx.Provide(
	services.NewProductService,
	controllers.NewProductsController,
)
