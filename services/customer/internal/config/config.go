package config

import (
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/config"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/database"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/logger"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/infrastructure/keycloak"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/infrastructure/notification"
	"go.uber.org/zap"
)

// Config 고객 서비스 설정 구조체
type Config struct {
	Env string

	Service struct {
		Name    string
		Version string
		// BaseURL 이메일 인증 링크에 쓰는 외부 주소
		BaseURL string
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

	Keycloak keycloak.Config

	TokenService struct {
		URL     string
		Timeout time.Duration
	}

	Redis struct {
		Addr           string
		Password       string
		DB             int
		ConnectTimeout time.Duration
	}

	Notification notification.Config

	// 이메일 인증 후 리다이렉트할 프론트엔드 주소
	Frontend struct {
		URL           string
		ProductionURL string
	}

	Log struct {
		Level  string
		Format string
		Output string
	}

	Logger *zap.Logger
}

var defaults = map[string]interface{}{
	"service.name":                 "customer-service",
	"service.version":              "0.1.0",
	"service.base_url":             "http://localhost:8081",
	"server.port":                  8081,
	"server.timeout":               "30s",
	"server.grpc.port":             9081,
	"database.host":                "localhost",
	"database.port":                5432,
	"database.name":                "nngc_customers",
	"database.user":                "postgres",
	"database.sslmode":             "disable",
	"database.max_open_conns":      20,
	"database.max_idle_conns":      5,
	"database.conn_max_lifetime":   "5m",
	"database.connect_timeout":     "30s",
	"database.log_level":           "warn",
	"keycloak.base_url":            "http://localhost:8080",
	"keycloak.realm":               "nngc",
	"keycloak.admin_realm":         "master",
	"keycloak.client_id":           "admin-cli",
	"keycloak.default_role":        "user",
	"keycloak.timeout":             "30s",
	"token_service.url":            "http://localhost:8082",
	"token_service.timeout":        "30s",
	"redis.addr":                   "localhost:6379",
	"redis.db":                     0,
	"redis.connect_timeout":        "30s",
	"notification.channel":         "notification:email",
	"notification.queue_size":      100,
	"notification.workers":         2,
	"notification.publish_timeout": "30s",
	"frontend.url":                 "http://localhost:3000",
	"frontend.production_url":      "https://northernneckgarbage.com",
	"log.level":                    "info",
	"log.format":                   "json",
	"log.output":                   "stdout",
}

// Load 설정 파일 로드
func Load() (*Config, error) {
	cfg, err := config.Load("customer", config.WithDefaults(defaults))
	if err != nil {
		return nil, err
	}

	appConfig := &Config{Env: cfg.Env()}

	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")
	appConfig.Service.BaseURL = cfg.GetString("service.base_url")

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

	appConfig.Keycloak = keycloak.Config{
		BaseURL:      cfg.GetString("keycloak.base_url"),
		Realm:        cfg.GetString("keycloak.realm"),
		AdminRealm:   cfg.GetString("keycloak.admin_realm"),
		ClientID:     cfg.GetString("keycloak.client_id"),
		ClientSecret: cfg.GetString("keycloak.client_secret"),
		Username:     cfg.GetString("keycloak.username"),
		Password:     cfg.GetString("keycloak.password"),
		DefaultRole:  cfg.GetString("keycloak.default_role"),
		Timeout:      cfg.GetDuration("keycloak.timeout"),
	}

	appConfig.TokenService.URL = cfg.GetString("token_service.url")
	appConfig.TokenService.Timeout = cfg.GetDuration("token_service.timeout")

	appConfig.Redis.Addr = cfg.GetString("redis.addr")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")
	appConfig.Redis.ConnectTimeout = cfg.GetDuration("redis.connect_timeout")

	appConfig.Notification = notification.Config{
		Channel:        cfg.GetString("notification.channel"),
		QueueSize:      cfg.GetInt("notification.queue_size"),
		Workers:        cfg.GetInt("notification.workers"),
		PublishTimeout: cfg.GetDuration("notification.publish_timeout"),
	}

	appConfig.Frontend.URL = cfg.GetString("frontend.url")
	appConfig.Frontend.ProductionURL = cfg.GetString("frontend.production_url")

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

// FrontendURL 운영 환경(prod, production)이면 운영 주소를 반환합니다
func (c *Config) FrontendURL() string {
	switch c.Env {
	case "prod", "production":
		return c.Frontend.ProductionURL
	default:
		return c.Frontend.URL
	}
}
