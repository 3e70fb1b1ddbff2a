package main

import (
	"context"
	"log"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpHandler "github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/adapter/handler/http"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/config"
	grpcServer "github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/infrastructure/grpc"
	httpServer "github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/infrastructure/http"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/infrastructure/messaging"
	appinit "github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/init"
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

	logger.Info("알림 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Redis 연결
	redisClient, err := messaging.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("Redis 연결 실패", zap.Error(err))
	}
	defer redisClient.Close()

	// 3. 유스케이스 초기화
	useCases, err := appinit.NewUseCases(cfg)
	if err != nil {
		logger.Fatal("유스케이스 초기화 실패", zap.Error(err))
	}

	// 4. 이메일 작업 구독
	subscriber := messaging.NewEmailJobSubscriber(redisClient, cfg.Notification.Channel, useCases.EmailUseCase, logger.Named("subscriber"))
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := subscriber.Run(ctx); err != nil {
			logger.Error("이메일 작업 구독 에러", zap.Error(err))
			stop()
		}
	}()

	// 5. HTTP 서버
	httpSrv := httpServer.NewServer(
		httpServer.WithPort(cfg.Server.HTTP.Port),
		httpServer.WithTimeout(cfg.Server.HTTP.Timeout),
		httpServer.WithServiceName(cfg.Service.Name),
		httpServer.WithLogger(logger),
	)
	httpSrv.RegisterRoutes(httpHandler.NewEmailHandler(useCases.EmailUseCase, logger).RegisterRoutes)

	// 6. gRPC 서버 (헬스 체크)
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

	// 7. 종료 시그널 대기
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
	wg.Wait()

	logger.Info("서버가 정상적으로 종료되었습니다")
}
