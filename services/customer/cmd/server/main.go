package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	httpHandler "github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/adapter/handler/http"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/config"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/infrastructure/db"
	grpcServer "github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/infrastructure/grpc"
	httpServer "github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/infrastructure/http"
	appinit "github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/init"
	"go.uber.org/zap"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("고객 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
		zap.String("env", cfg.Env),
	)

	// 2. 인프라스트럭처 초기화 (PostgreSQL, Redis)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	infrastructure, err := db.NewInfrastructure(ctx, cfg)
	if err != nil {
		logger.Fatal("인프라스트럭처 초기화 실패", zap.Error(err))
	}
	defer infrastructure.Close()

	// 3. 유스케이스 초기화
	useCases := appinit.NewUseCases(cfg, infrastructure.DB, infrastructure.RedisClient)

	// 4. HTTP 서버
	httpSrv := httpServer.NewServer(
		httpServer.WithPort(cfg.Server.HTTP.Port),
		httpServer.WithTimeout(cfg.Server.HTTP.Timeout),
		httpServer.WithServiceName(cfg.Service.Name),
		httpServer.WithLogger(logger),
	)
	httpSrv.RegisterRoutes(httpHandler.NewRegistrationHandler(useCases.RegistrationUseCase, cfg.FrontendURL(), logger).RegisterRoutes)
	httpSrv.RegisterRoutes(httpHandler.NewCustomerHandler(useCases.CustomerUseCase, logger).RegisterRoutes)

	// 5. gRPC 서버 (헬스 체크)
	grpcSrv := grpcServer.NewServer(
		grpcServer.WithPort(cfg.Server.GRPC.Port),
		grpcServer.WithServiceName(cfg.Service.Name),
		grpcServer.WithLogger(logger),
	)

	go func() {
		if err := httpSrv.Start(); err != nil {
			logger.Error("HTTP 서버 에러", zap.Error(err))
			stop()
		}
	}()

	go func() {
		if err := grpcSrv.Start(); err != nil {
			logger.Error("gRPC 서버 에러", zap.Error(err))
			stop()
		}
	}()

	// 6. 종료 시그널 대기
	<-ctx.Done()
	logger.Info("서버를 종료합니다...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP 서버 종료 실패", zap.Error(err))
	}
	if err := grpcSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("gRPC 서버 종료 실패", zap.Error(err))
	}
	// 요청 처리가 끝난 뒤 남은 이메일 작업 발행
	if err := useCases.Dispatcher.Stop(shutdownCtx); err != nil {
		logger.Warn("이메일 디스패처 종료 시간 초과", zap.Error(err))
	}

	logger.Info("서버가 정상적으로 종료되었습니다")
}
