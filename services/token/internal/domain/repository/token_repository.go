package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/domain/entity"
)

// TokenRepository 인증 토큰 저장소 인터페이스.
// 조회 메서드는 토큰이 없으면 nil, nil을 반환합니다.
type TokenRepository interface {
	// Create 새 토큰 저장 (ID 채움)
	Create(ctx context.Context, token *entity.VerificationToken) error

	// Save 토큰 전체 저장
	Save(ctx context.Context, token *entity.VerificationToken) error

	// FindByValue 토큰 값으로 조회
	FindByValue(ctx context.Context, value string) (*entity.VerificationToken, error)

	// FindValidByCustomer 고객의 사용 가능한 최신 토큰 조회
	FindValidByCustomer(ctx context.Context, customerID uint, now time.Time) (*entity.VerificationToken, error)

	// Claim 미확인, 미폐기, 미만료 토큰의 confirmed_at을 원자적으로 설정합니다.
	// 동시에 여러 호출이 있어도 true를 받는 호출은 하나뿐입니다.
	Claim(ctx context.Context, value string, now time.Time) (bool, error)

	// ReleaseClaim Claim으로 설정한 confirmed_at이 그대로일 때만 되돌립니다
	ReleaseClaim(ctx context.Context, value string, claimedAt time.Time) error

	// RevokeAllForCustomer 고객의 폐기되지 않은 토큰을 모두 폐기하고 개수를 반환합니다
	RevokeAllForCustomer(ctx context.Context, customerID uint) (int64, error)
}
