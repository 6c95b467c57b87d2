package repositories_fx

import (
	"go.uber.org/fx"

	"oneconversion/internal/repositories"
)

var Module = fx.Provide(
	repositories.NewSaleRepository,
	repositories.NewProductRepository,
	repositories.NewReviewRepository,
	repositories.NewAccountRepository,
	repositories.NewSettingRepository,
)
