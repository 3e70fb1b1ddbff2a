package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/validate"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/domain/entity"
	"go.uber.org/zap"
)

type MockTokenUseCase struct {
	mock.Mock
}

func (m *MockTokenUseCase) Issue(ctx context.Context, customerID uint) (*entity.VerificationToken, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VerificationToken), args.Error(1)
}

func (m *MockTokenUseCase) Confirm(ctx context.Context, value string) (*contracts.ConfirmTokenResponse, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.ConfirmTokenResponse), args.Error(1)
}

func (m *MockTokenUseCase) RevokeAllForCustomer(ctx context.Context, customerID uint) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenUseCase) StatusOf(ctx context.Context, value string) (contracts.TokenStatus, error) {
	args := m.Called(ctx, value)
	return args.Get(0).(contracts.TokenStatus), args.Error(1)
}

func (m *MockTokenUseCase) FindValidForCustomer(ctx context.Context, customerID uint) (*entity.VerificationToken, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VerificationToken), args.Error(1)
}

func newTestEcho(uc *MockTokenUseCase) *echo.Echo {
	e := echo.New()
	e.Validator = validate.New()
	NewTokenHandler(uc, zap.NewNop()).RegisterRoutes(e)
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTokenHandler_Generate(t *testing.T) {
	uc := new(MockTokenUseCase)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	token := entity.NewVerificationToken(4, now, entity.VerificationTokenTTL)
	uc.On("Issue", mock.Anything, uint(4)).Return(token, nil)
	e := newTestEcho(uc)

	rec := serve(e, http.MethodPost, "/token/generate", `{"customer_id":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body contracts.Token
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, token.Value, body.Token)
	assert.Equal(t, uint(4), body.CustomerID)
	assert.True(t, body.ExpiresAt.Equal(now.Add(45*time.Minute)))

	rec = serve(e, http.MethodPost, "/token/generate", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNumberOfCalls(t, "Issue", 1)
}

func TestTokenHandler_Confirm(t *testing.T) {
	tests := []struct {
		name         string
		result       *contracts.ConfirmTokenResponse
		err          error
		expectedCode int
	}{
		{
			name:         "confirmed",
			result:       &contracts.ConfirmTokenResponse{Outcome: contracts.ConfirmOutcomeConfirmed, CustomerID: 2},
			expectedCode: http.StatusOK,
		},
		{
			name:         "expired is not an error",
			result:       &contracts.ConfirmTokenResponse{Outcome: contracts.ConfirmOutcomeExpired},
			expectedCode: http.StatusOK,
		},
		{
			name:         "customer service down",
			err:          apperrors.NewUnavailableError("customer-service", errors.New("dial tcp")),
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockTokenUseCase)
			if tt.err != nil {
				uc.On("Confirm", mock.Anything, "abc").Return(nil, tt.err)
			} else {
				uc.On("Confirm", mock.Anything, "abc").Return(tt.result, nil)
			}
			e := newTestEcho(uc)

			rec := serve(e, http.MethodPost, "/token/confirm", `{"token":"abc"}`)
			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.err == nil {
				var body contracts.ConfirmTokenResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.result.Outcome, body.Outcome)
			} else {
				assert.NotContains(t, rec.Body.String(), "dial tcp")
			}
		})
	}
}

func TestTokenHandler_Revoke(t *testing.T) {
	uc := new(MockTokenUseCase)
	uc.On("RevokeAllForCustomer", mock.Anything, uint(9)).Return(int64(2), nil)
	e := newTestEcho(uc)

	rec := serve(e, http.MethodPost, "/token/revoke", `{"customer_id":9}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"revoked":2}`, rec.Body.String())
}

func TestTokenHandler_Status(t *testing.T) {
	uc := new(MockTokenUseCase)
	uc.On("StatusOf", mock.Anything, "abc").Return(contracts.TokenStatusExpired, nil)
	e := newTestEcho(uc)

	rec := serve(e, http.MethodGet, "/token/status?token=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"expired"}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/token/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"invalid"}`, rec.Body.String())
	uc.AssertNumberOfCalls(t, "StatusOf", 1)
}

func TestTokenHandler_FindValid(t *testing.T) {
	uc := new(MockTokenUseCase)
	token := entity.NewVerificationToken(3, time.Now().UTC(), entity.VerificationTokenTTL)
	uc.On("FindValidForCustomer", mock.Anything, uint(3)).Return(token, nil)
	uc.On("FindValidForCustomer", mock.Anything, uint(4)).Return(nil, nil)
	e := newTestEcho(uc)

	rec := serve(e, http.MethodGet, "/token/customer/3/valid", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), token.Value)

	rec = serve(e, http.MethodGet, "/token/customer/4/valid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(e, http.MethodGet, "/token/customer/abc/valid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
