package cache_fx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"oneconversion/internal/infra"
)

var Module = fx.Provide(
	provideRedis)

func provideRedis(lc fx.Lifecycle) *redis.Client {
	client := infra.InitRedis()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseRedis(client)
			return nil
		},
	})
	return client
}
