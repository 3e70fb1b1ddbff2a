package interfaces

import (
	"context"

	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/dto"
)

// RegistrationUseCase 회원가입과 이메일 인증 흐름
type RegistrationUseCase interface {
	// Register 입력 검증, IdP 사용자 생성, 고객 저장, 토큰 발급, 인증 메일 발송 순서로 처리합니다.
	// 저장이나 토큰 발급이 실패하면 이번 호출에서 만든 IdP 사용자를 삭제합니다
	Register(ctx context.Context, params dto.RegisterParams) (*dto.RegistrationResult, error)

	// ResendVerification 기존 토큰을 모두 폐기하고 새 토큰으로 인증 메일을 다시 보냅니다
	ResendVerification(ctx context.Context, email string) (*dto.StatusResult, error)

	// ConfirmEmail 토큰을 확인합니다. 모든 실패는 FAILED 결과로 반환됩니다
	ConfirmEmail(ctx context.Context, token string) *dto.StatusResult

	// TokenStatus 토큰 상태 조회. 상태를 변경하지 않습니다
	TokenStatus(ctx context.Context, token string) *dto.StatusResult
}
