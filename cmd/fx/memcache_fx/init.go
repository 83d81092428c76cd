package memcache_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"raahi/internal/config"
	"raahi/internal/infra"
	mem "raahi/pkg/memcache"
)

var Module = fx.Provide(provideTokenDenylist)

// provideTokenDenylist prefers Redis so revocations survive restarts and
// are shared between instances, falling back to process memory.
func provideTokenDenylist(lc fx.Lifecycle, cfg config.Config) mem.TokenDenylist {
	if cfg.Redis.Addr == "" {
		return mem.NewRevokedTokens()
	}

	client, err := infra.InitRedis(context.Background(), cfg.Redis.Addr)
	if err != nil {
		log.Printf("Redis unavailable, using in-memory token denylist: %v", err)
		return mem.NewRevokedTokens()
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseRedis(client)
			return nil
		},
	})
	return mem.NewRedisDenylist(client)
}
