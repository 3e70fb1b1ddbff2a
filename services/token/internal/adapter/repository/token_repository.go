package repository

import (
	"context"
	"errors"
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/adapter/mapper"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/domain/repository"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

type TokenRepositoryImpl struct {
	db *gorm.DB
}

// NewTokenRepository 토큰 저장소 구현체 생성
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

// Create 새 토큰 생성
func (r *TokenRepositoryImpl) Create(ctx context.Context, token *entity.VerificationToken) error {
	tokenModel := mapper.TokenToModel(token)

	if err := r.db.WithContext(ctx).Create(tokenModel).Error; err != nil {
		return err
	}

	// ID가 DB에서 생성된 경우 엔티티에 반영
	token.ID = tokenModel.ID
	return nil
}

// Save 토큰 정보 저장
func (r *TokenRepositoryImpl) Save(ctx context.Context, token *entity.VerificationToken) error {
	tokenModel := mapper.TokenToModel(token)

	if err := r.db.WithContext(ctx).Save(tokenModel).Error; err != nil {
		return err
	}

	token.ID = tokenModel.ID
	return nil
}

// FindByValue 토큰 값으로 조회
func (r *TokenRepositoryImpl) FindByValue(ctx context.Context, value string) (*entity.VerificationToken, error) {
	var tokenModel model.VerificationTokenModel

	if err := r.db.WithContext(ctx).Where("value = ?", value).First(&tokenModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.TokenFromModel(&tokenModel), nil
}

// FindValidByCustomer 고객의 사용 가능한 최신 토큰 조회
func (r *TokenRepositoryImpl) FindValidByCustomer(ctx context.Context, customerID uint, now time.Time) (*entity.VerificationToken, error) {
	var tokenModel model.VerificationTokenModel

	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND revoked = ? AND confirmed_at IS NULL AND expires_at > ?", customerID, false, now).
		Order("created_at DESC").
		First(&tokenModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.TokenFromModel(&tokenModel), nil
}

// Claim 조건부 UPDATE로 토큰 확인을 선점합니다
func (r *TokenRepositoryImpl) Claim(ctx context.Context, value string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.VerificationTokenModel{}).
		Where("value = ? AND confirmed_at IS NULL AND revoked = ? AND expires_at > ?", value, false, now).
		Update("confirmed_at", now)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ReleaseClaim 선점한 확인을 되돌립니다. 다른 시각으로 확인된 행은 건드리지 않습니다
func (r *TokenRepositoryImpl) ReleaseClaim(ctx context.Context, value string, claimedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.VerificationTokenModel{}).
		Where("value = ? AND confirmed_at = ?", value, claimedAt).
		Update("confirmed_at", nil).Error
}

// RevokeAllForCustomer 고객의 모든 활성 토큰 폐기
func (r *TokenRepositoryImpl) RevokeAllForCustomer(ctx context.Context, customerID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.VerificationTokenModel{}).
		Where("customer_id = ? AND revoked = ?", customerID, false).
		Update("revoked", true)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
