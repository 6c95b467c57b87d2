package reviews_fx

import (
	"go.uber.org/fx"

	"oneconversion/internal/api/controllers"
	"oneconversion/internal/services"
)

var Module = fx.Provide(
	services.NewReviewService,
	controllers.NewReviewsController,
)
