package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/repository"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/constants"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/dto"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// compensationTimeout 보상 처리 제한 시간. 요청 컨텍스트와 분리되어 실행됩니다
const compensationTimeout = 30 * time.Second

// RegistrationUseCase 회원가입 오케스트레이터 구현체
type RegistrationUseCase struct {
	logger    *zap.Logger
	customers repository.CustomerRepository
	identity  repository.IdentityProvider
	tokens    repository.TokenService
	notifier  repository.Notifier
	baseURL   string
}

// NewRegistrationUseCase 새 회원가입 유스케이스 생성
func NewRegistrationUseCase(
	logger *zap.Logger,
	customers repository.CustomerRepository,
	identity repository.IdentityProvider,
	tokens repository.TokenService,
	notifier repository.Notifier,
	baseURL string,
) interfaces.RegistrationUseCase {
	return &RegistrationUseCase{
		logger:    logger,
		customers: customers,
		identity:  identity,
		tokens:    tokens,
		notifier:  notifier,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Register 회원가입
func (uc *RegistrationUseCase) Register(ctx context.Context, params dto.RegisterParams) (*dto.RegistrationResult, error) {
	profile := params.Profile()
	profile.Email = entity.NormalizeEmail(profile.Email)

	// 1. 입력 검증. 실패 시 외부 호출 없음
	if err := ValidateEmail(profile.Email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(profile.Password); err != nil {
		return nil, err
	}

	// 2. 중복 이메일 확인
	existing, err := uc.customers.FindByEmail(ctx, profile.Email)
	if err != nil {
		apperrors.LogError(uc.logger, err, "고객 조회 실패", zap.String("email", profile.Email))
		return nil, apperrors.NewAppError(apperrors.ErrInternal, constants.MsgRegistrationFailed, err)
	}
	if existing != nil {
		uc.logger.Info("이미 가입된 이메일", zap.String("email", profile.Email))
		return nil, apperrors.NewAppError(apperrors.ErrConflict, constants.MsgEmailExists, nil)
	}

	passwordHash, err := HashPassword(profile.Password)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, constants.MsgRegistrationFailed, err)
	}

	// 3. IdP 사용자 생성 (비활성, 미인증)
	externalID, created, err := uc.identity.CreateUser(ctx, profile)
	if err != nil {
		apperrors.LogError(uc.logger, err, "IdP 사용자 생성 실패", zap.String("email", profile.Email))
		return nil, apperrors.Wrap(err, constants.MsgRegistrationFailed)
	}

	// 4. 고객 저장
	customer := entity.NewCustomer(profile, passwordHash, externalID)
	if err := uc.customers.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// 동시 가입 요청이 먼저 저장됨. IdP 사용자는 그 고객의 것이므로 삭제하지 않습니다
			uc.logger.Info("동시 가입 요청으로 인한 중복 이메일", zap.String("email", profile.Email))
			return nil, apperrors.NewAppError(apperrors.ErrConflict, constants.MsgEmailExists, err)
		}
		apperrors.LogError(uc.logger, err, "고객 저장 실패", zap.String("email", profile.Email))
		uc.compensate(ctx, profile.Email, created, 0)
		return nil, apperrors.NewAppError(apperrors.ErrInternal, constants.MsgRegistrationFailed, err)
	}

	// 5. 인증 토큰 발급
	token, err := uc.tokens.Issue(ctx, customer.ID)
	if err != nil {
		apperrors.LogError(uc.logger, err, "인증 토큰 발급 실패", zap.Uint("customer_id", customer.ID))
		uc.compensate(ctx, profile.Email, created, customer.ID)
		return nil, apperrors.Wrap(err, constants.MsgRegistrationFailed)
	}

	// 6. 인증 메일 (결과를 기다리지 않음)
	uc.notifier.SendRegistrationEmail(customer.Email, customer.FirstName, uc.confirmationLink(token.Token))

	uc.logger.Info("회원가입 완료",
		zap.Uint("customer_id", customer.ID),
		zap.String("email", customer.Email),
		zap.Bool("identity_created", created),
	)

	return &dto.RegistrationResult{
		Status:   constants.StatusSuccess,
		Message:  constants.MsgRegistrationSuccess,
		Token:    token.Token,
		Customer: customer.ToProjection(),
	}, nil
}

// compensate 가입 실패 시 생성한 리소스를 정리합니다. 실패는 로그로만 남깁니다
func (uc *RegistrationUseCase) compensate(ctx context.Context, email string, identityCreated bool, customerID uint) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	if customerID != 0 {
		if err := uc.customers.Delete(cctx, customerID); err != nil {
			apperrors.LogError(uc.logger, err, "보상 처리: 고객 삭제 실패", zap.Uint("customer_id", customerID))
		}
	}

	if !identityCreated {
		return
	}
	if err := uc.identity.DeleteUser(cctx, email); err != nil {
		apperrors.LogError(uc.logger, err, "보상 처리: IdP 사용자 삭제 실패", zap.String("email", email))
		return
	}
	uc.logger.Info("보상 처리: IdP 사용자 삭제", zap.String("email", email))
}

// ResendVerification 인증 메일 재발송
func (uc *RegistrationUseCase) ResendVerification(ctx context.Context, email string) (*dto.StatusResult, error) {
	email = entity.NormalizeEmail(email)

	customer, err := uc.customers.FindByEmail(ctx, email)
	if err != nil {
		apperrors.LogError(uc.logger, err, "고객 조회 실패", zap.String("email", email))
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to resend verification email", err)
	}
	if customer == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, constants.MsgUserNotFound, nil)
	}
	if customer.Enabled {
		return &dto.StatusResult{Status: constants.StatusAlreadyVerified, Message: constants.MsgAlreadyVerified}, nil
	}

	revoked, err := uc.tokens.RevokeAll(ctx, customer.ID)
	if err != nil {
		apperrors.LogError(uc.logger, err, "토큰 폐기 실패", zap.Uint("customer_id", customer.ID))
		return nil, apperrors.Wrap(err, "failed to resend verification email")
	}

	token, err := uc.tokens.Issue(ctx, customer.ID)
	if err != nil {
		apperrors.LogError(uc.logger, err, "인증 토큰 재발급 실패", zap.Uint("customer_id", customer.ID))
		return nil, apperrors.Wrap(err, "failed to resend verification email")
	}

	uc.notifier.SendRegistrationEmail(customer.Email, customer.FirstName, uc.confirmationLink(token.Token))

	uc.logger.Info("인증 메일 재발송",
		zap.Uint("customer_id", customer.ID),
		zap.Int64("revoked_tokens", revoked),
	)
	return &dto.StatusResult{Status: constants.StatusSuccess, Message: constants.MsgVerificationSent}, nil
}

// ConfirmEmail 이메일 인증
func (uc *RegistrationUseCase) ConfirmEmail(ctx context.Context, token string) *dto.StatusResult {
	failed := &dto.StatusResult{Status: constants.StatusFailed, Message: constants.MsgInvalidToken}

	if strings.TrimSpace(token) == "" {
		return failed
	}

	result, err := uc.tokens.Confirm(ctx, token)
	if err != nil {
		apperrors.LogError(uc.logger, err, "토큰 확인 실패")
		return failed
	}

	switch result.Outcome {
	case contracts.ConfirmOutcomeConfirmed:
		uc.sendWelcome(ctx, result)
		return &dto.StatusResult{Status: constants.StatusSuccess, Message: constants.MsgEmailConfirmed}
	case contracts.ConfirmOutcomeAlreadyConfirmed:
		return &dto.StatusResult{Status: constants.StatusAlreadyConfirmed, Message: constants.MsgAlreadyConfirmed}
	case contracts.ConfirmOutcomeExpired:
		return &dto.StatusResult{Status: constants.StatusExpired, Message: constants.MsgTokenExpired}
	default:
		return failed
	}
}

// sendWelcome 환영 메일. 응답에 고객 정보가 없으면 저장소에서 조회합니다
func (uc *RegistrationUseCase) sendWelcome(ctx context.Context, result *contracts.ConfirmTokenResponse) {
	if result.Customer != nil {
		uc.notifier.SendWelcomeEmail(result.Customer.Email, result.Customer.FirstName)
		return
	}

	customer, err := uc.customers.FindByID(ctx, result.CustomerID)
	if err != nil || customer == nil {
		uc.logger.Warn("환영 메일 수신자 조회 실패", zap.Uint("customer_id", result.CustomerID), zap.Error(err))
		return
	}
	uc.notifier.SendWelcomeEmail(customer.Email, customer.FirstName)
}

// TokenStatus 토큰 상태 조회
func (uc *RegistrationUseCase) TokenStatus(ctx context.Context, token string) *dto.StatusResult {
	status := contracts.TokenStatusInvalid
	if strings.TrimSpace(token) != "" {
		var err error
		status, err = uc.tokens.Status(ctx, token)
		if err != nil {
			apperrors.LogError(uc.logger, err, "토큰 상태 조회 실패")
			status = contracts.TokenStatusInvalid
		}
	}

	result := &dto.StatusResult{Message: string(status)}
	switch status {
	case contracts.TokenStatusValid:
		result.Status = constants.StatusSuccess
	case contracts.TokenStatusAlreadyConfirmed:
		result.Status = constants.StatusAlreadyConfirmed
	case contracts.TokenStatusExpired:
		result.Status = constants.StatusExpired
	default:
		result.Status = constants.StatusFailed
		result.Message = string(contracts.TokenStatusInvalid)
	}
	return result
}

func (uc *RegistrationUseCase) confirmationLink(token string) string {
	return uc.baseURL + constants.ConfirmPath + "?token=" + url.QueryEscape(token)
}
