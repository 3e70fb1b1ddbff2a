package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenType 인증 토큰 유형
type TokenType string

const (
	// TokenTypeEmailVerification 이메일 인증 토큰
	TokenTypeEmailVerification TokenType = "EMAIL_VERIFICATION"
)

// VerificationTokenTTL 인증 토큰 유효 시간
const VerificationTokenTTL = 45 * time.Minute

// VerificationToken 이메일 인증 토큰 도메인 엔티티.
// 만료 여부는 ExpiresAt으로만 판단합니다.
type VerificationToken struct {
	ID          uint
	Value       string // 토큰 값 (UUID)
	CustomerID  uint   // 고객 ID (소유 관계 아님)
	Type        TokenType
	CreatedAt   time.Time
	ExpiresAt   time.Time
	ConfirmedAt *time.Time
	Revoked     bool
}

// NewVerificationToken 새 이메일 인증 토큰 생성
func NewVerificationToken(customerID uint, now time.Time, ttl time.Duration) *VerificationToken {
	return &VerificationToken{
		Value:      uuid.NewString(),
		CustomerID: customerID,
		Type:       TokenTypeEmailVerification,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
}

// IsConfirmed 확인 완료 여부
func (t *VerificationToken) IsConfirmed() bool {
	return t.ConfirmedAt != nil
}

// IsExpiredAt 주어진 시각 기준 만료 여부
func (t *VerificationToken) IsExpiredAt(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsUsableAt 확인 가능한 상태인지 확인 (미확인, 미폐기, 미만료)
func (t *VerificationToken) IsUsableAt(now time.Time) bool {
	return !t.IsConfirmed() && !t.Revoked && !t.IsExpiredAt(now)
}
