package interfaces

import (
	"context"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/domain/entity"
)

// TokenUseCase 인증 토큰 수명 주기 관리 인터페이스
type TokenUseCase interface {
	// Issue 고객에게 새 이메일 인증 토큰을 발급합니다
	Issue(ctx context.Context, customerID uint) (*entity.VerificationToken, error)

	// Confirm 토큰을 확인하고 고객을 활성화합니다. 토큰 상태로 인한 거절은 에러가 아닌 결과값으로 반환합니다
	Confirm(ctx context.Context, value string) (*contracts.ConfirmTokenResponse, error)

	// RevokeAllForCustomer 고객의 모든 활성 토큰을 폐기합니다
	RevokeAllForCustomer(ctx context.Context, customerID uint) (int64, error)

	// StatusOf 토큰 상태를 조회합니다. 상태를 변경하지 않습니다
	StatusOf(ctx context.Context, value string) (contracts.TokenStatus, error)

	// FindValidForCustomer 고객의 사용 가능한 토큰을 조회합니다. 없으면 nil을 반환합니다
	FindValidForCustomer(ctx context.Context, customerID uint) (*entity.VerificationToken, error)
}
