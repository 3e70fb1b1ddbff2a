package repository

import (
	"context"

	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
)

// CustomerRepository 고객 저장소 인터페이스
type CustomerRepository interface {
	// Create 새 고객 저장. 이메일이 이미 있으면 ErrDuplicateEmail을 반환합니다
	Create(ctx context.Context, customer *entity.Customer) error
	// FindByID 없으면 nil, nil
	FindByID(ctx context.Context, id uint) (*entity.Customer, error)
	// FindByEmail 정규화된 이메일로 조회. 없으면 nil, nil
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// Enable 비활성 고객을 활성화합니다. 상태가 바뀐 경우에만 true
	Enable(ctx context.Context, id uint) (bool, error)
	// Delete 보상 처리용 삭제
	Delete(ctx context.Context, id uint) error
}
