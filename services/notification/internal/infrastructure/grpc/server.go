package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server gRPC 서버 구조체입니다. 헬스 체크와 리플렉션만 제공합니다.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	logger     *zap.Logger
	port       int
	name       string
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

// WithServiceName 헬스 체크에 등록할 서비스 이름입니다.
func WithServiceName(name string) ServerOption {
	return func(s *Server) {
		s.name = name
	}
}

// NewServer gRPC 서버를 생성합니다.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		logger: zap.NewNop(),
		port:   9083,
		name:   "notification-service",
	}

	for _, opt := range opts {
		opt(s)
	}

	s.grpcServer = grpc.NewServer(
		grpc.UnaryInterceptor(logger.NewGrpcUnaryServerInterceptor(s.logger)),
	)

	s.health = health.NewServer()
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(s.name, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(s.grpcServer)

	return s
}

// Serve 주어진 리스너로 요청을 받습니다.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC 서버 시작", zap.String("addr", lis.Addr().String()))
	return s.grpcServer.Serve(lis)
}

// Start 설정된 포트로 서버를 시작합니다.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("gRPC 서버 리스닝 실패: %w", err)
	}
	return s.Serve(lis)
}

// Shutdown 헬스 상태를 NOT_SERVING으로 바꾼 뒤 서버를 종료합니다.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("gRPC 서버 종료 중...")
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		s.logger.Warn("gRPC 서버 강제 종료")
		s.grpcServer.Stop()
		return ctx.Err()
	case <-stopped:
		s.logger.Info("gRPC 서버 종료 완료")
		return nil
	}
}
