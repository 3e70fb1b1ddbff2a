package repository

import (
	"context"
	"errors"

	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/adapter/mapper"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/repository"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository 고객 저장소 구현체 생성
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Create 새 고객 생성
func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := mapper.CustomerToModel(customer)
	customerModel.Email = entity.NormalizeEmail(customerModel.Email)

	if err := r.db.WithContext(ctx).Create(customerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateEmail
		}
		return err
	}

	customer.ID = customerModel.ID
	customer.CreatedAt = customerModel.CreatedAt
	customer.UpdatedAt = customerModel.UpdatedAt
	return nil
}

// FindByID ID로 고객 조회
func (r *CustomerRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var customerModel model.CustomerModel

	if err := r.db.WithContext(ctx).First(&customerModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.CustomerFromModel(&customerModel), nil
}

// FindByEmail 이메일로 고객 조회
func (r *CustomerRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerModel model.CustomerModel

	err := r.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		First(&customerModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.CustomerFromModel(&customerModel), nil
}

// Update 고객 정보 갱신
func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *entity.Customer) error {
	customerModel := mapper.CustomerToModel(customer)

	if err := r.db.WithContext(ctx).Save(customerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateEmail
		}
		return err
	}

	customer.UpdatedAt = customerModel.UpdatedAt
	return nil
}

// Enable 비활성 고객만 활성화합니다
func (r *CustomerRepositoryImpl) Enable(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND enabled = ?", id, false).
		Update("enabled", true)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// Delete 고객 삭제
func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CustomerModel{}, id).Error
}
