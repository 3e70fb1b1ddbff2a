package entity

import (
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
)

// StatusAt 토큰 상태를 분류합니다. 확인 완료가 만료보다, 만료가 폐기보다 우선합니다.
// nil 토큰은 invalid입니다.
func StatusAt(t *VerificationToken, now time.Time) contracts.TokenStatus {
	switch {
	case t == nil:
		return contracts.TokenStatusInvalid
	case t.IsConfirmed():
		return contracts.TokenStatusAlreadyConfirmed
	case t.IsExpiredAt(now):
		return contracts.TokenStatusExpired
	case t.Revoked:
		return contracts.TokenStatusInvalid
	default:
		return contracts.TokenStatusValid
	}
}

// OutcomeFor 확인 시도가 거절된 토큰의 결과를 상태에서 도출합니다
func OutcomeFor(status contracts.TokenStatus) contracts.ConfirmOutcome {
	switch status {
	case contracts.TokenStatusAlreadyConfirmed:
		return contracts.ConfirmOutcomeAlreadyConfirmed
	case contracts.TokenStatusExpired:
		return contracts.ConfirmOutcomeExpired
	default:
		return contracts.ConfirmOutcomeInvalid
	}
}
