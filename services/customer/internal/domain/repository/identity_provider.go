package repository

import (
	"context"

	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
)

// IdentityProvider 외부 IdP 어댑터.
// 실패는 pkg/errors.RemoteError(Unavailable, Rejected)로 반환됩니다.
type IdentityProvider interface {
	// CreateUser 비활성, 미인증 사용자를 생성합니다. 같은 이메일이 있으면 기존 ID를 반환하고 created는 false입니다
	CreateUser(ctx context.Context, profile entity.Profile) (id string, created bool, err error)
	// EnableUser enabled와 emailVerified를 설정합니다
	EnableUser(ctx context.Context, email string) error
	// DeleteUser 보상 처리 전용. 없는 사용자는 무시합니다
	DeleteUser(ctx context.Context, email string) error
	// FindUserByEmail 없으면 nil, nil
	FindUserByEmail(ctx context.Context, email string) (*entity.IdentityUser, error)
}
