package settings_fx

import (
	"go.uber.org/fx"

	"oneconversion/internal/api/controllers"
	"oneconversion/internal/services"
)

var Module = fx.Provide(
	services.NewSettingsService,
	controllers.NewSettingsController,
)
