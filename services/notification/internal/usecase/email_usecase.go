package usecase

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/domain/repository"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// Renderer 이메일 종류별 제목과 본문 생성기
type Renderer interface {
	Render(kind contracts.EmailKind, name, link string) (subject, body string, err error)
}

// EmailUseCase 이메일 유스케이스 구현체
type EmailUseCase struct {
	logger   *zap.Logger
	renderer Renderer
	sender   repository.MailSender
}

// NewEmailUseCase 새 이메일 유스케이스 생성
func NewEmailUseCase(logger *zap.Logger, renderer Renderer, sender repository.MailSender) interfaces.EmailUseCase {
	return &EmailUseCase{
		logger:   logger,
		renderer: renderer,
		sender:   sender,
	}
}

// SendRegistrationEmail 가입 인증 메일
func (uc *EmailUseCase) SendRegistrationEmail(ctx context.Context, email, firstName, link string) error {
	return uc.send(ctx, contracts.EmailKindRegistration, email, firstName, link)
}

// SendWelcomeEmail 환영 메일
func (uc *EmailUseCase) SendWelcomeEmail(ctx context.Context, email, firstName string) error {
	return uc.send(ctx, contracts.EmailKindWelcome, email, firstName, "")
}

// SendPasswordResetEmail 비밀번호 재설정 메일
func (uc *EmailUseCase) SendPasswordResetEmail(ctx context.Context, email, firstName, link string) error {
	return uc.send(ctx, contracts.EmailKindPasswordReset, email, firstName, link)
}

// HandleJob 이메일 작업 처리
func (uc *EmailUseCase) HandleJob(ctx context.Context, job contracts.EmailJob) error {
	switch job.Kind {
	case contracts.EmailKindRegistration, contracts.EmailKindPasswordReset:
		if job.Link == "" {
			return apperrors.NewAppError(apperrors.ErrInvalidArgument, fmt.Sprintf("%s email requires a link", job.Kind), nil)
		}
	case contracts.EmailKindWelcome:
	default:
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, fmt.Sprintf("unknown email kind: %s", job.Kind), nil)
	}
	return uc.send(ctx, job.Kind, job.Email, job.FirstName, job.Link)
}

func (uc *EmailUseCase) send(ctx context.Context, kind contracts.EmailKind, to, firstName, link string) error {
	subject, body, err := uc.renderer.Render(kind, firstName, link)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrInternal, "failed to render email", err)
	}

	email, err := entity.NewEmail(kind, to, firstName, subject, body)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, err.Error(), err)
	}

	if err := uc.sender.Send(ctx, email); err != nil {
		apperrors.LogError(uc.logger, err, "이메일 발송 실패", zap.String("kind", string(kind)), zap.String("to", to))
		return apperrors.NewAppError(apperrors.ErrUnavailable, fmt.Sprintf("failed to send %s email", kind), err)
	}
	return nil
}
