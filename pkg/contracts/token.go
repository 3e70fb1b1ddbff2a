package contracts

import "time"

// TokenStatus 토큰 상태 조회 결과
type TokenStatus string

const (
	TokenStatusValid            TokenStatus = "valid"
	TokenStatusAlreadyConfirmed TokenStatus = "already_confirmed"
	TokenStatusExpired          TokenStatus = "expired"
	TokenStatusInvalid          TokenStatus = "invalid"
)

// ConfirmOutcome 토큰 확인 결과
type ConfirmOutcome string

const (
	ConfirmOutcomeConfirmed        ConfirmOutcome = "confirmed"
	ConfirmOutcomeAlreadyConfirmed ConfirmOutcome = "already_confirmed"
	ConfirmOutcomeExpired          ConfirmOutcome = "expired"
	ConfirmOutcomeInvalid          ConfirmOutcome = "invalid"
)

// IssueTokenRequest POST /token/generate
type IssueTokenRequest struct {
	CustomerID uint `json:"customer_id" validate:"required"`
}

// Token 발급된 인증 토큰
type Token struct {
	Token      string    `json:"token"`
	CustomerID uint      `json:"customer_id"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ConfirmTokenRequest POST /token/confirm
type ConfirmTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// ConfirmTokenResponse 토큰 확인 응답. Outcome이 confirmed일 때만 Customer가 채워집니다
type ConfirmTokenResponse struct {
	Outcome    ConfirmOutcome `json:"outcome"`
	CustomerID uint           `json:"customer_id,omitempty"`
	Customer   *Customer      `json:"customer,omitempty"`
}

// RevokeTokensRequest POST /token/revoke
type RevokeTokensRequest struct {
	CustomerID uint `json:"customer_id" validate:"required"`
}

// RevokeTokensResponse 폐기된 토큰 수
type RevokeTokensResponse struct {
	Revoked int64 `json:"revoked"`
}

// TokenStatusResponse GET /token/status
type TokenStatusResponse struct {
	Status TokenStatus `json:"status"`
}
