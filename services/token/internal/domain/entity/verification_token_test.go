package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
)

func TestNewVerificationToken(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	a := NewVerificationToken(7, now, VerificationTokenTTL)
	b := NewVerificationToken(7, now, VerificationTokenTTL)

	assert.Equal(t, uint(7), a.CustomerID)
	assert.Equal(t, TokenTypeEmailVerification, a.Type)
	assert.Equal(t, now.Add(45*time.Minute), a.ExpiresAt)
	assert.Nil(t, a.ConfirmedAt)
	assert.False(t, a.Revoked)
	assert.Len(t, a.Value, 36)
	assert.NotEqual(t, a.Value, b.Value)
}

func TestStatusAt(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	confirmedAt := now.Add(-time.Minute)

	tests := []struct {
		name  string
		token *VerificationToken
		want  contracts.TokenStatus
	}{
		{name: "missing", token: nil, want: contracts.TokenStatusInvalid},
		{name: "pending", token: &VerificationToken{ExpiresAt: now.Add(time.Minute)}, want: contracts.TokenStatusValid},
		{name: "confirmed", token: &VerificationToken{ExpiresAt: now.Add(time.Minute), ConfirmedAt: &confirmedAt}, want: contracts.TokenStatusAlreadyConfirmed},
		{name: "confirmed then expired", token: &VerificationToken{ExpiresAt: now.Add(-time.Second), ConfirmedAt: &confirmedAt}, want: contracts.TokenStatusAlreadyConfirmed},
		{name: "expired", token: &VerificationToken{ExpiresAt: now.Add(-time.Second)}, want: contracts.TokenStatusExpired},
		{name: "expired and revoked", token: &VerificationToken{ExpiresAt: now.Add(-time.Second), Revoked: true}, want: contracts.TokenStatusExpired},
		{name: "revoked", token: &VerificationToken{ExpiresAt: now.Add(time.Minute), Revoked: true}, want: contracts.TokenStatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusAt(tt.token, now))
		})
	}
}

func TestOutcomeFor(t *testing.T) {
	assert.Equal(t, contracts.ConfirmOutcomeAlreadyConfirmed, OutcomeFor(contracts.TokenStatusAlreadyConfirmed))
	assert.Equal(t, contracts.ConfirmOutcomeExpired, OutcomeFor(contracts.TokenStatusExpired))
	assert.Equal(t, contracts.ConfirmOutcomeInvalid, OutcomeFor(contracts.TokenStatusInvalid))
}
