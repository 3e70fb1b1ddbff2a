package mapper

import (
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/infrastructure/db/model"
)

// TokenToModel 토큰 엔티티를 DB 모델로 변환
func TokenToModel(token *entity.VerificationToken) *model.VerificationTokenModel {
	if token == nil {
		return nil
	}

	return &model.VerificationTokenModel{
		ID:          token.ID,
		Value:       token.Value,
		CustomerID:  token.CustomerID,
		Type:        string(token.Type),
		ExpiresAt:   token.ExpiresAt,
		ConfirmedAt: token.ConfirmedAt,
		Revoked:     token.Revoked,
		CreatedAt:   token.CreatedAt,
	}
}

// TokenFromModel DB 모델을 토큰 엔티티로 변환
func TokenFromModel(m *model.VerificationTokenModel) *entity.VerificationToken {
	if m == nil {
		return nil
	}

	return &entity.VerificationToken{
		ID:          m.ID,
		Value:       m.Value,
		CustomerID:  m.CustomerID,
		Type:        entity.TokenType(m.Type),
		CreatedAt:   m.CreatedAt,
		ExpiresAt:   m.ExpiresAt,
		ConfirmedAt: m.ConfirmedAt,
		Revoked:     m.Revoked,
	}
}

// TokenToContract 토큰 엔티티를 서비스 간 응답 형식으로 변환
func TokenToContract(token *entity.VerificationToken) *contracts.Token {
	if token == nil {
		return nil
	}

	return &contracts.Token{
		Token:      token.Value,
		CustomerID: token.CustomerID,
		Type:       string(token.Type),
		CreatedAt:  token.CreatedAt,
		ExpiresAt:  token.ExpiresAt,
	}
}
