package config

import (
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/config"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/logger"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/infrastructure/mail"
	"go.uber.org/zap"
)

// Config 알림 서비스 설정 구조체
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

	SMTP mail.SMTPConfig

	Redis struct {
		Addr           string
		Password       string
		DB             int
		ConnectTimeout time.Duration
	}

	Notification struct {
		Channel string
	}

	// 메일 본문에 들어가는 값
	Email struct {
		LoginURL   string
		LinkExpiry string
	}

	Log struct {
		Level  string
		Format string
		Output string
	}

	Logger *zap.Logger
}

var defaults = map[string]interface{}{
	"service.name":          "notification-service",
	"service.version":       "0.1.0",
	"server.port":           8083,
	"server.timeout":        "30s",
	"server.grpc.port":      9083,
	"smtp.host":             "localhost",
	"smtp.port":             587,
	"smtp.from":             "no-reply@northernneckgarbage.com",
	"smtp.from_name":        "NNGC",
	"redis.addr":            "localhost:6379",
	"redis.db":              0,
	"redis.connect_timeout": "30s",
	"notification.channel":  "notification:email",
	"email.login_url":       "https://northernneckgarbage.com/login",
	"email.link_expiry":     "45 minutes",
	"log.level":             "info",
	"log.format":            "json",
	"log.output":            "stdout",
}

// Load 설정 파일 로드
func Load() (*Config, error) {
	cfg, err := config.Load("notification", config.WithDefaults(defaults))
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

	appConfig.SMTP = mail.SMTPConfig{
		Host:     cfg.GetString("smtp.host"),
		Port:     cfg.GetInt("smtp.port"),
		Username: cfg.GetString("smtp.username"),
		Password: cfg.GetString("smtp.password"),
		From:     cfg.GetString("smtp.from"),
		FromName: cfg.GetString("smtp.from_name"),
	}

	appConfig.Redis.Addr = cfg.GetString("redis.addr")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")
	appConfig.Redis.ConnectTimeout = cfg.GetDuration("redis.connect_timeout")

	appConfig.Notification.Channel = cfg.GetString("notification.channel")

	appConfig.Email.LoginURL = cfg.GetString("email.login_url")
	appConfig.Email.LinkExpiry = cfg.GetString("email.link_expiry")

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
