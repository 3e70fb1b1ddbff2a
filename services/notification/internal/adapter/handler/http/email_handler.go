package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/notification/internal/usecase/interfaces"
	"go.uber.org/zap"
)

const statusSuccess = "SUCCESS"

// 응답 메시지
const (
	MsgRegistrationEmailSent  = "Registration email sent successfully"
	MsgWelcomeEmailSent       = "Welcome email sent successfully"
	MsgPasswordResetEmailSent = "Password reset email sent successfully"
)

// StatusResponse 발송 결과 응답
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// EmailHandler 이메일 발송 HTTP 핸들러
type EmailHandler struct {
	emails interfaces.EmailUseCase
	logger *zap.Logger
}

// NewEmailHandler 이메일 핸들러 생성
func NewEmailHandler(emails interfaces.EmailUseCase, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{emails: emails, logger: logger}
}

// RegisterRoutes 라우트 등록
func (h *EmailHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/email")
	g.POST("/send-registration", h.SendRegistration)
	g.POST("/send-welcome", h.SendWelcome)
	g.POST("/send-password-reset", h.SendPasswordReset)
}

// SendRegistration POST /email/send-registration
func (h *EmailHandler) SendRegistration(c echo.Context) error {
	var req contracts.RegistrationEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.emails.SendRegistrationEmail(c.Request().Context(), req.Email, req.FirstName, req.Link); err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: statusSuccess, Message: MsgRegistrationEmailSent})
}

// SendWelcome POST /email/send-welcome
func (h *EmailHandler) SendWelcome(c echo.Context) error {
	var req contracts.WelcomeEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.emails.SendWelcomeEmail(c.Request().Context(), req.Email, req.FirstName); err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: statusSuccess, Message: MsgWelcomeEmailSent})
}

// SendPasswordReset POST /email/send-password-reset
func (h *EmailHandler) SendPasswordReset(c echo.Context) error {
	var req contracts.PasswordResetEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.emails.SendPasswordResetEmail(c.Request().Context(), req.Email, req.FirstName, req.Link); err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: statusSuccess, Message: MsgPasswordResetEmailSent})
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}
