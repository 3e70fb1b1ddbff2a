package interfaces

import (
	"context"

	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
)

// CustomerUseCase 고객 조회와 활성화
type CustomerUseCase interface {
	FindByID(ctx context.Context, id uint) (*entity.Customer, error)

	// Enable IdP 사용자를 먼저 활성화한 뒤 로컬 고객을 활성화합니다. 이미 활성화된 고객은 그대로 반환합니다
	Enable(ctx context.Context, id uint) (*entity.Customer, error)
}
