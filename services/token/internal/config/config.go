package config

import (
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/config"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/database"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/logger"
	"go.uber.org/zap"
)

// Config 토큰 서비스 설정 구조체
type Config struct {
	Service struct {
		Name    string
		Version string
	}

	Server struct {
		HTTP struct {
			Port    int
			Timeout time.Duration
			Debug   bool
		}
		GRPC struct {
			Port int
		}
	}

	Database database.Config

	// 토큰 정책
	Token struct {
		TTL time.Duration
	}

	// 고객 서비스 (CustomerEnabler)
	CustomerService struct {
		URL     string
		Timeout time.Duration
	}

	Log struct {
		Level  string
		Format string
		Output string
	}

	Logger *zap.Logger
}

var defaults = map[string]interface{}{
	"service.name":               "token-service",
	"service.version":            "0.1.0",
	"server.port":                8082,
	"server.timeout":             "30s",
	"server.grpc.port":           9082,
	"database.host":              "localhost",
	"database.port":              5432,
	"database.name":              "nngc_tokens",
	"database.user":              "postgres",
	"database.sslmode":           "disable",
	"database.max_open_conns":    20,
	"database.max_idle_conns":    5,
	"database.conn_max_lifetime": "5m",
	"database.connect_timeout":   "30s",
	"database.log_level":         "warn",
	"token.ttl":                  "45m",
	"customer_service.url":       "http://localhost:8081",
	"customer_service.timeout":   "30s",
	"log.level":                  "info",
	"log.format":                 "json",
	"log.output":                 "stdout",
}

// Load 설정 파일 로드
func Load() (*Config, error) {
	cfg, err := config.Load("token", config.WithDefaults(defaults))
	if err != nil {
		return nil, err
	}

	appConfig := &Config{}

	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")

	appConfig.Server.HTTP.Port = cfg.GetInt("server.port")
	appConfig.Server.HTTP.Timeout = cfg.GetDuration("server.timeout")
	appConfig.Server.HTTP.Debug = cfg.GetBool("server.debug")
	appConfig.Server.GRPC.Port = cfg.GetInt("server.grpc.port")

	appConfig.Database = database.Config{
		Host:            cfg.GetString("database.host"),
		Port:            cfg.GetInt("database.port"),
		Name:            cfg.GetString("database.name"),
		User:            cfg.GetString("database.user"),
		Password:        cfg.GetString("database.password"),
		SSLMode:         cfg.GetString("database.sslmode"),
		MaxOpenConns:    cfg.GetInt("database.max_open_conns"),
		MaxIdleConns:    cfg.GetInt("database.max_idle_conns"),
		ConnMaxLifetime: cfg.GetDuration("database.conn_max_lifetime"),
		ConnectTimeout:  cfg.GetDuration("database.connect_timeout"),
		LogLevel:        cfg.GetString("database.log_level"),
	}

	appConfig.Token.TTL = cfg.GetDuration("token.ttl")

	appConfig.CustomerService.URL = cfg.GetString("customer_service.url")
	appConfig.CustomerService.Timeout = cfg.GetDuration("customer_service.timeout")

	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")

	appConfig.Logger, err = logger.NewZapLogger(logger.Config{
		Service:     appConfig.Service.Name,
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		Development: appConfig.Server.HTTP.Debug,
	})
	if err != nil {
		return nil, err
	}

	return appConfig, nil
}
