package gateway_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"oneconversion/internal/gateway"
)

var Module = fx.Provide(
	provideGateway)

func provideGateway(logger *zap.Logger) gateway.Client {
	cfg := gateway.Config{
		BaseURL:    os.Getenv("PUSHINPAY_BASE_URL"),
		APIToken:   os.Getenv("PUSHINPAY_API_TOKEN"),
		WebhookURL: os.Getenv("WEBHOOK_URL"),
	}
	return gateway.NewPushInPayClient(cfg, logger)
}
