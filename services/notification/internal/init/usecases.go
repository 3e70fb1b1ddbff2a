package init

import (
	"fmt"

	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/config"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/infrastructure/mail"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/usecase"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/usecase/interfaces"
)

// UseCases 알림 서비스 유스케이스 컨테이너
type UseCases struct {
	EmailUseCase interfaces.EmailUseCase
}

// NewUseCases 템플릿과 SMTP 발송기를 연결해 유스케이스를 생성합니다
func NewUseCases(cfg *config.Config) (*UseCases, error) {
	renderer, err := mail.NewTemplateRenderer(cfg.Email.LoginURL, cfg.Email.LinkExpiry)
	if err != nil {
		return nil, fmt.Errorf("이메일 템플릿 초기화 실패: %w", err)
	}
	sender := mail.NewSMTPSender(cfg.SMTP, cfg.Logger.Named("smtp"))

	return &UseCases{
		EmailUseCase: usecase.NewEmailUseCase(cfg.Logger, renderer, sender),
	}, nil
}
