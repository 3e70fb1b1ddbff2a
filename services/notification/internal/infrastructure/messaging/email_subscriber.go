package messaging

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/messaging"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// EmailJobSubscriber Redis 채널의 이메일 작업을 구독해 처리합니다
type EmailJobSubscriber struct {
	client   messaging.RedisClient
	channel  string
	emails   interfaces.EmailUseCase
	validate *validator.Validate
	logger   *zap.Logger
}

// NewEmailJobSubscriber 이메일 작업 구독자 생성
func NewEmailJobSubscriber(client messaging.RedisClient, channel string, emails interfaces.EmailUseCase, logger *zap.Logger) *EmailJobSubscriber {
	if channel == "" {
		channel = contracts.DefaultEmailChannel
	}
	return &EmailJobSubscriber{
		client:   client,
		channel:  channel,
		emails:   emails,
		validate: validator.New(),
		logger:   logger,
	}
}

// Run ctx가 취소될 때까지 메시지를 처리합니다. 개별 작업 실패는 로그로만 남깁니다
func (s *EmailJobSubscriber) Run(ctx context.Context) error {
	messages, err := s.client.Subscribe(ctx, s.channel)
	if err != nil {
		return fmt.Errorf("이메일 채널 구독 실패: %w", err)
	}
	s.logger.Info("이메일 작업 구독 시작", zap.String("channel", s.channel))

	for msg := range messages {
		s.handle(ctx, msg)
	}

	s.logger.Info("이메일 작업 구독 종료", zap.String("channel", s.channel))
	return nil
}

func (s *EmailJobSubscriber) handle(ctx context.Context, msg messaging.Message) {
	var job contracts.EmailJob
	if err := msg.Decode(&job); err != nil {
		s.logger.Warn("잘못된 이메일 작업 메시지", zap.Error(err))
		return
	}
	if err := s.validate.Struct(job); err != nil {
		s.logger.Warn("이메일 작업 검증 실패", zap.String("kind", string(job.Kind)), zap.Error(err))
		return
	}

	if err := s.emails.HandleJob(ctx, job); err != nil {
		s.logger.Error("이메일 작업 처리 실패",
			zap.String("kind", string(job.Kind)),
			zap.String("email", job.Email),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("이메일 작업 처리", zap.String("kind", string(job.Kind)), zap.String("email", job.Email))
}
