package messaging

import (
	"context"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/messaging"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/config"
)

// Connect 설정의 Redis 주소로 연결합니다
func Connect(ctx context.Context, cfg *config.Config) (messaging.RedisClient, error) {
	return messaging.ConnectRedis(ctx, messaging.Options{
		Addr:           cfg.Redis.Addr,
		Password:       cfg.Redis.Password,
		DB:             cfg.Redis.DB,
		ConnectTimeout: cfg.Redis.ConnectTimeout,
	}, cfg.Logger)
}
