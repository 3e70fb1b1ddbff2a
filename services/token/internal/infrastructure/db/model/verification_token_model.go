package model

import (
	"time"
)

// VerificationTokenModel 인증 토큰 데이터베이스 모델
type VerificationTokenModel struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Value       string     `gorm:"size:64;not null;uniqueIndex" json:"value"`
	CustomerID  uint       `gorm:"not null;index:idx_verification_tokens_customer_revoked" json:"customer_id"`
	Type        string     `gorm:"size:32;not null;default:'EMAIL_VERIFICATION'" json:"type"`
	ExpiresAt   time.Time  `gorm:"not null" json:"expires_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	Revoked     bool       `gorm:"not null;default:false;index:idx_verification_tokens_customer_revoked" json:"revoked"`

	// 메타데이터 필드
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 테이블 이름 지정
func (VerificationTokenModel) TableName() string {
	return "verification_tokens"
}
