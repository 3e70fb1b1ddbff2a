package repository

import (
	"context"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
)

// TokenService 토큰 서비스 클라이언트
type TokenService interface {
	Issue(ctx context.Context, customerID uint) (*contracts.Token, error)
	Confirm(ctx context.Context, token string) (*contracts.ConfirmTokenResponse, error)
	RevokeAll(ctx context.Context, customerID uint) (int64, error)
	Status(ctx context.Context, token string) (contracts.TokenStatus, error)
}
