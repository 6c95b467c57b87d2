package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"oneconversion/cmd/fx/accounts_fx"
	"oneconversion/cmd/fx/cache_fx"
	"oneconversion/cmd/fx/dashboard_fx"
	"oneconversion/cmd/fx/db_fx"
	"oneconversion/cmd/fx/gateway_fx"
	"oneconversion/cmd/fx/logger_fx"
	"oneconversion/cmd/fx/payments_fx"
	"oneconversion/cmd/fx/products_fx"
	"oneconversion/cmd/fx/repositories_fx"
	"oneconversion/cmd/fx/reviews_fx"
	"oneconversion/cmd/fx/sales_fx"
	"oneconversion/cmd/fx/settings_fx"
	"oneconversion/internal/api/controllers"
	"oneconversion/pkg/middleware"
)

func main() {
	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		cache_fx.Module,
		gateway_fx.Module,
		repositories_fx.Module,
		payments_fx.Module,
		sales_fx.Module,
		products_fx.Module,
		reviews_fx.Module,
		settings_fx.Module,
		accounts_fx.Module,
		dashboard_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	checkoutController *controllers.CheckoutController,
	salesController *controllers.SalesController,
	productsController *controllers.ProductsController,
	reviewsController *controllers.ReviewsController,
	settingsController *controllers.SettingsController,
	accountsController *controllers.AccountsController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		checkoutController,
		salesController,
		productsController,
		reviewsController,
		settingsController,
		accountsController,
		dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	checkoutController *controllers.CheckoutController,
	salesController *controllers.SalesController,
	productsController *controllers.ProductsController,
	reviewsController *controllers.ReviewsController,
	settingsController *controllers.SettingsController,
	accountsController *controllers.AccountsController,
	dashboardController *controllers.DashboardController) {

	v1 := r.Group("/api/v1")

	v1.POST("/checkout", checkoutController.CreateCheckout)
	v1.GET("/payments/:transactionId/status", checkoutController.GetPaymentStatus)
	v1.POST("/webhooks/pushinpay", checkoutController.HandleWebhook)

	v1.GET("/products/:slug", productsController.GetProductBySlug)
	v1.GET("/reviews", reviewsController.ListReviews)
	v1.GET("/settings/:name", settingsController.GetSetting)

	v1.POST("/auth/login", accountsController.Login)

	admin := v1.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware())

	admin.GET("/dashboard", dashboardController.GetReport)

	admin.GET("/sales", salesController.ListSales)
	admin.POST("/sales/:transactionId/check", salesController.CheckSale)

	admin.GET("/products", productsController.ListProducts)
	admin.POST("/products", productsController.CreateProduct)
	admin.PUT("/products/:id", productsController.UpdateProduct)
	admin.DELETE("/products/:id", productsController.DeleteProduct)

	admin.POST("/reviews", reviewsController.CreateReview)
	admin.PUT("/reviews/:id", reviewsController.UpdateReview)
	admin.DELETE("/reviews/:id", reviewsController.DeleteReview)

	admin.PUT("/settings/:name", settingsController.SaveSetting)
}
