package init

import (
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/messaging"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/adapter/client"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/adapter/repository"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/config"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/infrastructure/keycloak"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/infrastructure/notification"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/interfaces"
	"gorm.io/gorm"
)

// UseCases 고객 서비스 유스케이스 컨테이너
type UseCases struct {
	RegistrationUseCase interfaces.RegistrationUseCase
	CustomerUseCase     interfaces.CustomerUseCase

	// Dispatcher 종료 시 남은 이메일 작업을 처리하기 위해 노출합니다
	Dispatcher *notification.Dispatcher
}

// NewUseCases 저장소, 외부 어댑터, 디스패처를 연결해 유스케이스를 생성합니다.
// 디스패처 워커는 여기서 시작됩니다
func NewUseCases(cfg *config.Config, db *gorm.DB, publisher messaging.Publisher) *UseCases {
	customers := repository.NewCustomerRepository(db)
	identity := keycloak.NewClient(cfg.Keycloak, cfg.Logger.Named("keycloak"))
	tokens := client.NewTokenClient(cfg.TokenService.URL, cfg.TokenService.Timeout, cfg.Logger.Named("token_client"))

	dispatcher := notification.NewDispatcher(publisher, cfg.Notification, cfg.Logger.Named("email_dispatcher"))
	dispatcher.Start()

	return &UseCases{
		RegistrationUseCase: usecase.NewRegistrationUseCase(
			cfg.Logger,
			customers,
			identity,
			tokens,
			dispatcher,
			cfg.Service.BaseURL,
		),
		CustomerUseCase: usecase.NewCustomerUseCase(cfg.Logger, customers, identity),
		Dispatcher:      dispatcher,
	}
}
