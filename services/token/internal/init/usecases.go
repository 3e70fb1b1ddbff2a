package init

import (
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/adapter/client"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/adapter/repository"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/config"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/usecase"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/usecase/interfaces"
	"gorm.io/gorm"
)

// UseCases 토큰 서비스 유스케이스 컨테이너
type UseCases struct {
	TokenUseCase interfaces.TokenUseCase
}

// NewUseCases 저장소와 고객 서비스 클라이언트를 연결해 유스케이스를 생성합니다
func NewUseCases(cfg *config.Config, db *gorm.DB) *UseCases {
	tokens := repository.NewTokenRepository(db)
	enabler := client.NewCustomerClient(
		cfg.CustomerService.URL,
		cfg.CustomerService.Timeout,
		cfg.Logger.Named("customer_client"),
	)

	return &UseCases{
		TokenUseCase: usecase.NewTokenUseCase(cfg.Logger, tokens, enabler, cfg.Token.TTL),
	}
}
