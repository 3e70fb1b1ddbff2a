package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	httpHandler "github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/adapter/handler/http"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/config"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/infrastructure/db"
	grpcServer "github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/infrastructure/grpc"
	httpServer "github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/infrastructure/http"
	appinit "github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/init"
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

	logger.Info("토큰 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
	)

	// 2. 인프라스트럭처 초기화
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	infrastructure, err := db.NewInfrastructure(ctx, cfg)
	if err != nil {
		logger.Fatal("인프라스트럭처 초기화 실패", zap.Error(err))
	}
	defer infrastructure.Close()

	// 3. 유스케이스 초기화
	useCases := appinit.NewUseCases(cfg, infrastructure.DB)

	// 4. HTTP 서버
	httpSrv := httpServer.NewServer(
		httpServer.WithPort(cfg.Server.HTTP.Port),
		httpServer.WithTimeout(cfg.Server.HTTP.Timeout),
		httpServer.WithServiceName(cfg.Service.Name),
		httpServer.WithLogger(logger),
	)
	httpSrv.RegisterRoutes(httpHandler.NewTokenHandler(useCases.TokenUseCase, logger).RegisterRoutes)

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

	logger.Info("서버가 정상적으로 종료되었습니다")
}
