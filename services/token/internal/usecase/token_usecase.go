package usecase

import (
	"context"
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/domain/repository"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// releaseTimeout 활성화 실패 후 선점 해제에 쓰는 시간
const releaseTimeout = 5 * time.Second

// TokenUseCase 인증 토큰 수명 주기 유스케이스 구현체
type TokenUseCase struct {
	logger  *zap.Logger
	tokens  repository.TokenRepository
	enabler repository.CustomerEnabler
	ttl     time.Duration
	now     func() time.Time // DB timestamp 정밀도(마이크로초)로 자른 UTC 시각
}

// NewTokenUseCase 새 토큰 유스케이스 생성
func NewTokenUseCase(
	logger *zap.Logger,
	tokens repository.TokenRepository,
	enabler repository.CustomerEnabler,
	ttl time.Duration,
) interfaces.TokenUseCase {
	if ttl <= 0 {
		ttl = entity.VerificationTokenTTL
	}
	return &TokenUseCase{
		logger:  logger,
		tokens:  tokens,
		enabler: enabler,
		ttl:     ttl,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Issue 새 토큰 발급
func (uc *TokenUseCase) Issue(ctx context.Context, customerID uint) (*entity.VerificationToken, error) {
	if customerID == 0 {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "customer id is required", nil)
	}

	token := entity.NewVerificationToken(customerID, uc.now(), uc.ttl)
	if err := uc.tokens.Create(ctx, token); err != nil {
		apperrors.LogError(uc.logger, err, "인증 토큰 저장 실패", zap.Uint("customer_id", customerID))
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to issue verification token", err)
	}

	uc.logger.Info("인증 토큰 발급",
		zap.Uint("customer_id", customerID),
		zap.Uint("token_id", token.ID),
		zap.Time("expires_at", token.ExpiresAt),
	)
	return token, nil
}

// Confirm 토큰 확인.
// 조건부 UPDATE로 선점한 호출만 고객 활성화를 수행합니다.
func (uc *TokenUseCase) Confirm(ctx context.Context, value string) (*contracts.ConfirmTokenResponse, error) {
	now := uc.now()

	token, err := uc.tokens.FindByValue(ctx, value)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to load verification token", err)
	}
	if token == nil {
		uc.logger.Info("존재하지 않는 토큰 확인 시도")
		return &contracts.ConfirmTokenResponse{Outcome: contracts.ConfirmOutcomeInvalid}, nil
	}

	if status := entity.StatusAt(token, now); status != contracts.TokenStatusValid {
		uc.logger.Info("토큰 확인 거절",
			zap.Uint("token_id", token.ID),
			zap.String("status", string(status)),
		)
		return &contracts.ConfirmTokenResponse{
			Outcome:    entity.OutcomeFor(status),
			CustomerID: token.CustomerID,
		}, nil
	}

	claimed, err := uc.tokens.Claim(ctx, value, now)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to claim verification token", err)
	}
	if !claimed {
		return uc.lostClaim(ctx, token)
	}

	customer, err := uc.enabler.EnableCustomer(ctx, token.CustomerID)
	if err != nil {
		apperrors.LogError(uc.logger, err, "고객 활성화 실패, 토큰 선점 해제",
			zap.Uint("token_id", token.ID),
			zap.Uint("customer_id", token.CustomerID),
		)
		uc.releaseClaim(ctx, token, now)
		return nil, apperrors.Wrap(err, "failed to enable customer")
	}

	uc.logger.Info("이메일 인증 완료",
		zap.Uint("token_id", token.ID),
		zap.Uint("customer_id", token.CustomerID),
	)
	return &contracts.ConfirmTokenResponse{
		Outcome:    contracts.ConfirmOutcomeConfirmed,
		CustomerID: token.CustomerID,
		Customer:   customer,
	}, nil
}

// lostClaim 선점에 실패한 호출의 결과를 현재 행 상태로 결정합니다.
// 다른 호출이 확인을 진행 중이면 already_confirmed로 취급합니다.
func (uc *TokenUseCase) lostClaim(ctx context.Context, token *entity.VerificationToken) (*contracts.ConfirmTokenResponse, error) {
	current, err := uc.tokens.FindByValue(ctx, token.Value)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to reload verification token", err)
	}

	status := entity.StatusAt(current, uc.now())
	outcome := entity.OutcomeFor(status)
	if status == contracts.TokenStatusValid {
		outcome = contracts.ConfirmOutcomeAlreadyConfirmed
	}

	uc.logger.Info("토큰 선점 실패",
		zap.Uint("token_id", token.ID),
		zap.String("outcome", string(outcome)),
	)
	return &contracts.ConfirmTokenResponse{Outcome: outcome, CustomerID: token.CustomerID}, nil
}

// releaseClaim 호출자 컨텍스트가 취소되어도 해제를 끝까지 수행합니다
func (uc *TokenUseCase) releaseClaim(ctx context.Context, token *entity.VerificationToken, claimedAt time.Time) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	if err := uc.tokens.ReleaseClaim(releaseCtx, token.Value, claimedAt); err != nil {
		apperrors.LogError(uc.logger, err, "토큰 선점 해제 실패", zap.Uint("token_id", token.ID))
	}
}

// RevokeAllForCustomer 고객 토큰 전체 폐기
func (uc *TokenUseCase) RevokeAllForCustomer(ctx context.Context, customerID uint) (int64, error) {
	count, err := uc.tokens.RevokeAllForCustomer(ctx, customerID)
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrInternal, "failed to revoke verification tokens", err)
	}

	uc.logger.Info("인증 토큰 폐기",
		zap.Uint("customer_id", customerID),
		zap.Int64("revoked", count),
	)
	return count, nil
}

// StatusOf 토큰 상태 조회
func (uc *TokenUseCase) StatusOf(ctx context.Context, value string) (contracts.TokenStatus, error) {
	token, err := uc.tokens.FindByValue(ctx, value)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrInternal, "failed to load verification token", err)
	}
	return entity.StatusAt(token, uc.now()), nil
}

// FindValidForCustomer 고객의 사용 가능한 토큰 조회
func (uc *TokenUseCase) FindValidForCustomer(ctx context.Context, customerID uint) (*entity.VerificationToken, error) {
	token, err := uc.tokens.FindValidByCustomer(ctx, customerID, uc.now())
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to load verification token", err)
	}
	return token, nil
}
