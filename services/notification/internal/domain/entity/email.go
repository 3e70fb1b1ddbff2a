package entity

import (
	"errors"
	"strings"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
)

// Email 발송할 이메일 엔티티
type Email struct {
	Kind     contracts.EmailKind
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

// NewEmail 새 이메일 생성
func NewEmail(kind contracts.EmailKind, to, toName, subject, htmlBody string) (*Email, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, errors.New("수신자 이메일은 필수입니다")
	}

	if subject == "" {
		return nil, errors.New("제목은 필수입니다")
	}

	return &Email{
		Kind:     kind,
		To:       to,
		ToName:   strings.TrimSpace(toName),
		Subject:  subject,
		HTMLBody: htmlBody,
	}, nil
}
