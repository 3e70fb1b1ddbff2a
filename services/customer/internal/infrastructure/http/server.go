package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/logger"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/validate"
	"go.uber.org/zap"
)

// Server HTTP 서버 구조체입니다.
type Server struct {
	echo    *echo.Echo
	logger  *zap.Logger
	port    int
	timeout time.Duration
	name    string
}

// ServerOption Server 생성을 위한 옵션 함수 타입입니다.
type ServerOption func(*Server)

// WithPort 서버 포트를 설정하는 옵션입니다.
func WithPort(port int) ServerOption {
	return func(s *Server) {
		s.port = port
	}
}

// WithLogger 로거를 설정하는 옵션입니다.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTimeout 요청 읽기/쓰기 제한 시간을 설정합니다.
func WithTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.timeout = timeout
	}
}

// WithServiceName 헬스 체크 응답에 표시할 서비스 이름입니다.
func WithServiceName(name string) ServerOption {
	return func(s *Server) {
		s.name = name
	}
}

// NewServer HTTP 서버를 생성합니다.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		echo:    echo.New(),
		logger:  zap.NewNop(),
		port:    8081,
		timeout: 30 * time.Second,
		name:    "customer-service",
	}

	for _, opt := range opts {
		opt(s)
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.New()

	logger.WithEchoLogger(e, s.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(logger.NewEchoRequestLogger(s.logger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.name,
		})
	})

	return s
}

// RegisterRoutes 핸들러의 라우트 등록 함수를 실행합니다.
func (s *Server) RegisterRoutes(registerFunc func(e *echo.Echo)) {
	registerFunc(s.echo)
}

// Start 서버를 시작합니다. 정상 종료 시 nil을 반환합니다.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("HTTP 서버 시작", zap.String("addr", addr))

	server := &http.Server{
		Addr:         addr,
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
	}
	if err := s.echo.StartServer(server); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown 서버를 안전하게 종료합니다.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP 서버 종료 중...")
	return s.echo.Shutdown(ctx)
}

// Echo 내부 Echo 인스턴스를 반환합니다.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
