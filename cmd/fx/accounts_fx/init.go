package accounts_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"oneconversion/internal/api/controllers"
	"oneconversion/internal/services"
)

var Module = fx.Options(
	fx.Provide(
		services.NewAccountService,
		controllers.NewAccountsController,
	),
	fx.Invoke(seedAdminAccount),
)

func seedAdminAccount(accountService services.AccountServiceInterface) {
	if err := accountService.EnsureAdminAccount(context.Background()); err != nil {
		log.Printf("Error seeding admin account: %v", err)
	}
}
