package usecase

import (
	"context"

	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/repository"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/constants"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// CustomerUseCase 고객 유스케이스 구현체
type CustomerUseCase struct {
	logger    *zap.Logger
	customers repository.CustomerRepository
	identity  repository.IdentityProvider
}

// NewCustomerUseCase 새 고객 유스케이스 생성
func NewCustomerUseCase(
	logger *zap.Logger,
	customers repository.CustomerRepository,
	identity repository.IdentityProvider,
) interfaces.CustomerUseCase {
	return &CustomerUseCase{
		logger:    logger,
		customers: customers,
		identity:  identity,
	}
}

// FindByID 고객 조회
func (uc *CustomerUseCase) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	customer, err := uc.customers.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to load customer", err)
	}
	if customer == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, constants.MsgUserNotFound, nil)
	}
	return customer, nil
}

// Enable 고객 활성화
func (uc *CustomerUseCase) Enable(ctx context.Context, id uint) (*entity.Customer, error) {
	customer, err := uc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer.Enabled {
		return customer, nil
	}

	if err := uc.identity.EnableUser(ctx, customer.Email); err != nil {
		apperrors.LogError(uc.logger, err, "IdP 사용자 활성화 실패", zap.Uint("customer_id", id))
		return nil, apperrors.Wrap(err, "failed to enable identity user")
	}

	changed, err := uc.customers.Enable(ctx, id)
	if err != nil {
		apperrors.LogError(uc.logger, err, "고객 활성화 실패", zap.Uint("customer_id", id))
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to enable customer", err)
	}

	customer.Enabled = true
	uc.logger.Info("고객 활성화", zap.Uint("customer_id", id), zap.Bool("changed", changed))
	return customer, nil
}
