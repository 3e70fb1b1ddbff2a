package db

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/database"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/messaging"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/config"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/infrastructure/db/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infrastructure 인프라스트럭처 구조체
type Infrastructure struct {
	DB          *gorm.DB
	RedisClient messaging.RedisClient
	logger      *zap.Logger
}

// NewInfrastructure 데이터베이스와 Redis 연결 초기화
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	db, err := database.NewPostgresDB(ctx, cfg.Database, cfg.Logger)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	redisClient, err := messaging.ConnectRedis(ctx, messaging.Options{
		Addr:           cfg.Redis.Addr,
		Password:       cfg.Redis.Password,
		DB:             cfg.Redis.DB,
		ConnectTimeout: cfg.Redis.ConnectTimeout,
	}, cfg.Logger)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}

	return &Infrastructure{DB: db, RedisClient: redisClient, logger: cfg.Logger}, nil
}

// Migrate 고객 테이블 마이그레이션
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.CustomerModel{}); err != nil {
		return fmt.Errorf("고객 테이블 마이그레이션 실패: %w", err)
	}
	return nil
}

// Close 모든 연결 종료
func (i *Infrastructure) Close() error {
	if err := i.RedisClient.Close(); err != nil {
		i.logger.Warn("Redis 연결 종료 실패", zap.Error(err))
	}
	if err := database.Close(i.DB); err != nil {
		return fmt.Errorf("데이터베이스 연결 종료 실패: %w", err)
	}
	i.logger.Info("모든 인프라스트럭처 연결 종료됨")
	return nil
}
