package interfaces

import (
	"context"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
)

// EmailUseCase 이메일 렌더링과 발송
type EmailUseCase interface {
	SendRegistrationEmail(ctx context.Context, email, firstName, link string) error
	SendWelcomeEmail(ctx context.Context, email, firstName string) error
	SendPasswordResetEmail(ctx context.Context, email, firstName, link string) error

	// HandleJob Redis로 전달된 이메일 작업 처리
	HandleJob(ctx context.Context, job contracts.EmailJob) error
}
