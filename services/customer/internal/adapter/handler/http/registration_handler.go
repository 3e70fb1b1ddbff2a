package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/constants"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/dto"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// 이메일 인증 결과별 프론트엔드 경로
const (
	PathVerificationSuccess = "/email-verification-success"
	PathAlreadyConfirmed    = "/email-already-confirmed"
	PathVerificationExpired = "/email-verification-expired"
	PathVerificationFailed  = "/email-verification-failed"
)

// RegisterRequest 회원가입 요청. 이메일 형식과 비밀번호 길이는 유스케이스에서 검증합니다.
// 최대 길이는 customers 테이블 컬럼 크기와 같습니다
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=50"`
	LastName    string `json:"last_name" validate:"required,max=50"`
	Email       string `json:"email" validate:"max=255"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
	HouseNumber string `json:"house_number" validate:"max=16"`
	StreetName  string `json:"street_name" validate:"max=100"`
	City        string `json:"city" validate:"max=50"`
	State       string `json:"state" validate:"max=2"`
	ZipCode     string `json:"zip_code" validate:"max=10"`
	Service     string `json:"service" validate:"max=150"`
}

// RegisterResponse 회원가입 응답
type RegisterResponse struct {
	Status   constants.Status    `json:"status"`
	Message  string              `json:"message"`
	Token    string              `json:"token,omitempty"`
	Customer *contracts.Customer `json:"customer,omitempty"`
}

// StatusResponse 처리 결과 응답
type StatusResponse struct {
	Status  constants.Status `json:"status"`
	Message string           `json:"message"`
}

// RegistrationHandler 회원가입, 이메일 인증 HTTP 핸들러
type RegistrationHandler struct {
	registration interfaces.RegistrationUseCase
	frontendURL  string
	logger       *zap.Logger
}

// NewRegistrationHandler 회원가입 핸들러 생성. frontendURL은 이메일 인증 후 리다이렉트 대상입니다
func NewRegistrationHandler(registration interfaces.RegistrationUseCase, frontendURL string, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registration: registration,
		frontendURL:  strings.TrimRight(frontendURL, "/"),
		logger:       logger,
	}
}

// RegisterRoutes 라우트 등록
func (h *RegistrationHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/auth/customer")
	g.POST("/register", h.Register)
	g.POST("/resend-verification", h.ResendVerification)
	g.GET("/confirm", h.Confirm)
	g.GET("/token-status", h.TokenStatus)
}

// Register POST /auth/customer/register
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.registration.Register(c.Request().Context(), dto.RegisterParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		HouseNumber: req.HouseNumber,
		StreetName:  req.StreetName,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Service:     req.Service,
	})
	if err != nil {
		return apperrors.ToHTTPError(err)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		Status:   result.Status,
		Message:  result.Message,
		Token:    result.Token,
		Customer: result.Customer,
	})
}

// ResendVerification POST /auth/customer/resend-verification?email=
func (h *RegistrationHandler) ResendVerification(c echo.Context) error {
	email := c.QueryParam("email")
	if strings.TrimSpace(email) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	result, err := h.registration.ResendVerification(c.Request().Context(), email)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, statusResponse(result))
}

// Confirm GET /auth/customer/confirm?token=
// 결과에 따라 프론트엔드 페이지로 리다이렉트합니다
func (h *RegistrationHandler) Confirm(c echo.Context) error {
	result := h.registration.ConfirmEmail(c.Request().Context(), c.QueryParam("token"))

	var path string
	switch result.Status {
	case constants.StatusSuccess:
		path = PathVerificationSuccess
	case constants.StatusAlreadyConfirmed:
		path = PathAlreadyConfirmed
	case constants.StatusExpired:
		path = PathVerificationExpired
	default:
		path = PathVerificationFailed
	}

	h.logger.Info("이메일 인증 리다이렉트", zap.String("status", string(result.Status)), zap.String("path", path))
	return c.Redirect(http.StatusFound, h.frontendURL+path)
}

// TokenStatus GET /auth/customer/token-status?token=
func (h *RegistrationHandler) TokenStatus(c echo.Context) error {
	result := h.registration.TokenStatus(c.Request().Context(), c.QueryParam("token"))
	return c.JSON(http.StatusOK, statusResponse(result))
}

func statusResponse(result *dto.StatusResult) StatusResponse {
	return StatusResponse{Status: result.Status, Message: result.Message}
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}
