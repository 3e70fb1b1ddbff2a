package repository

import (
	"context"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
)

// CustomerEnabler 토큰 확인 후 고객 계정을 활성화합니다.
// 로컬 고객 레코드와 ID 공급자 사용자 모두를 활성화해야 합니다.
type CustomerEnabler interface {
	EnableCustomer(ctx context.Context, customerID uint) (*contracts.Customer, error)
}
