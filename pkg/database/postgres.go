// Package database는 gorm 연결 생성과 연결 풀 설정을 담당합니다.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config 데이터베이스 설정
type Config struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
	// ConnectTimeout 시작 시 연결 재시도 최대 시간. 0이면 재시도하지 않습니다
	ConnectTimeout time.Duration
}

// DSN PostgreSQL 접속 문자열
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode,
	)
}

// NewPostgresDB PostgreSQL 데이터베이스 연결을 생성합니다.
func NewPostgresDB(ctx context.Context, config Config, zapLogger *zap.Logger) (*gorm.DB, error) {
	db, err := Open(ctx, postgres.Open(config.DSN()), config, zapLogger)
	if err != nil {
		return nil, err
	}

	zapLogger.Info("데이터베이스 연결 성공",
		zap.String("host", config.Host),
		zap.Int("port", config.Port),
		zap.String("database", config.Name),
		zap.Int("max_open_conns", config.MaxOpenConns),
		zap.Int("max_idle_conns", config.MaxIdleConns),
		zap.Duration("conn_max_lifetime", config.ConnMaxLifetime),
	)
	return db, nil
}

// Open 주어진 dialector로 연결하고 핑이 성공할 때까지 지수 백오프로 재시도합니다.
func Open(ctx context.Context, dialector gorm.Dialector, config Config, zapLogger *zap.Logger) (*gorm.DB, error) {
	gormLogger := logger.NewGormLogger(
		zapLogger,
		logger.ParseGormLevel(config.LogLevel),
		time.Second,
		true,
	)

	var db *gorm.DB
	connect := func() error {
		var err error
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger:         gormLogger,
			NowFunc:        func() time.Time { return time.Now().UTC() },
			TranslateError: true,
		})
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		if config.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(config.MaxOpenConns)
		}
		if config.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(config.MaxIdleConns)
		}
		if config.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = config.ConnectTimeout

	var policy backoff.BackOff = backoff.WithContext(bo, ctx)
	if config.ConnectTimeout <= 0 {
		policy = backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	notify := func(err error, wait time.Duration) {
		zapLogger.Warn("데이터베이스 연결 재시도", zap.Error(err), zap.Duration("wait", wait))
	}
	if err := backoff.RetryNotify(connect, policy, notify); err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	return db, nil
}

// Close 연결 풀 종료
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("SQL DB 인스턴스 획득 실패: %w", err)
	}
	return sqlDB.Close()
}
