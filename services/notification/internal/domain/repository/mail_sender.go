package repository

import (
	"context"

	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/domain/entity"
)

// MailSender 이메일 전송 인터페이스
type MailSender interface {
	Send(ctx context.Context, email *entity.Email) error
}
