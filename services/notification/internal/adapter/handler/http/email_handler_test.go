package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/logger"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/validate"
	"go.uber.org/zap"
)

type MockEmailUseCase struct {
	mock.Mock
}

func (m *MockEmailUseCase) SendRegistrationEmail(ctx context.Context, email, firstName, link string) error {
	return m.Called(ctx, email, firstName, link).Error(0)
}

func (m *MockEmailUseCase) SendWelcomeEmail(ctx context.Context, email, firstName string) error {
	return m.Called(ctx, email, firstName).Error(0)
}

func (m *MockEmailUseCase) SendPasswordResetEmail(ctx context.Context, email, firstName, link string) error {
	return m.Called(ctx, email, firstName, link).Error(0)
}

func (m *MockEmailUseCase) HandleJob(ctx context.Context, job contracts.EmailJob) error {
	return m.Called(ctx, job).Error(0)
}

func newTestEcho(emails *MockEmailUseCase) *echo.Echo {
	e := echo.New()
	e.Validator = validate.New()
	logger.WithEchoLogger(e, zap.NewNop())
	NewEmailHandler(emails, zap.NewNop()).RegisterRoutes(e)
	return e
}

func post(e *echo.Echo, path, body string) (*httptest.ResponseRecorder, map[string]string) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestSendEmails(t *testing.T) {
	emails := new(MockEmailUseCase)
	emails.On("SendRegistrationEmail", mock.Anything, "ada@example.com", "Ada", "https://nngc.test/confirm?token=t").Return(nil)
	emails.On("SendWelcomeEmail", mock.Anything, "ada@example.com", "Ada").Return(nil)
	emails.On("SendPasswordResetEmail", mock.Anything, "ada@example.com", "", "https://nngc.test/reset?token=r").Return(nil)
	e := newTestEcho(emails)

	tests := []struct {
		path    string
		body    string
		message string
	}{
		{"/email/send-registration", `{"email":"ada@example.com","first_name":"Ada","link":"https://nngc.test/confirm?token=t"}`, MsgRegistrationEmailSent},
		{"/email/send-welcome", `{"email":"ada@example.com","first_name":"Ada"}`, MsgWelcomeEmailSent},
		{"/email/send-password-reset", `{"email":"ada@example.com","link":"https://nngc.test/reset?token=r"}`, MsgPasswordResetEmailSent},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, body := post(e, tt.path, tt.body)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "SUCCESS", body["status"])
			assert.Equal(t, tt.message, body["message"])
		})
	}
	emails.AssertExpectations(t)
}

func TestSendEmailValidation(t *testing.T) {
	emails := new(MockEmailUseCase)
	e := newTestEcho(emails)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"missing link", "/email/send-registration", `{"email":"ada@example.com"}`},
		{"bad link", "/email/send-password-reset", `{"email":"ada@example.com","link":"not a url"}`},
		{"bad email", "/email/send-welcome", `{"email":"nope"}`},
		{"malformed body", "/email/send-welcome", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := post(e, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "FAILED", body["status"])
		})
	}
	emails.AssertNotCalled(t, "SendRegistrationEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	emails.AssertNotCalled(t, "SendWelcomeEmail", mock.Anything, mock.Anything, mock.Anything)
	emails.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendEmailDeliveryFailure(t *testing.T) {
	emails := new(MockEmailUseCase)
	emails.On("SendWelcomeEmail", mock.Anything, "ada@example.com", "Ada").
		Return(apperrors.NewAppError(apperrors.ErrUnavailable, "failed to send welcome email", errors.New("dial tcp: refused")))
	e := newTestEcho(emails)

	rec, body := post(e, "/email/send-welcome", `{"email":"ada@example.com","first_name":"Ada"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "FAILED", body["status"])
	assert.Equal(t, "failed to send welcome email", body["message"])
	assert.NotContains(t, rec.Body.String(), "refused")
}
