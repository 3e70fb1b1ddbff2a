package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/adapter/mapper"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// TokenHandler 인증 토큰 HTTP 핸들러
type TokenHandler struct {
	tokens interfaces.TokenUseCase
	logger *zap.Logger
}

// NewTokenHandler 토큰 핸들러 생성
func NewTokenHandler(tokens interfaces.TokenUseCase, logger *zap.Logger) *TokenHandler {
	return &TokenHandler{tokens: tokens, logger: logger}
}

// RegisterRoutes 토큰 라우트 등록
func (h *TokenHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/token")
	g.POST("/generate", h.Generate)
	g.POST("/confirm", h.Confirm)
	g.POST("/revoke", h.Revoke)
	g.GET("/status", h.Status)
	g.GET("/customer/:id/valid", h.FindValid)
}

// Generate POST /token/generate
func (h *TokenHandler) Generate(c echo.Context) error {
	var req contracts.IssueTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.tokens.Issue(c.Request().Context(), req.CustomerID)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, mapper.TokenToContract(token))
}

// Confirm POST /token/confirm
func (h *TokenHandler) Confirm(c echo.Context) error {
	var req contracts.ConfirmTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.tokens.Confirm(c.Request().Context(), req.Token)
	if err != nil {
		apperrors.LogError(h.logger, err, "토큰 확인 처리 실패")
		return apperrors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// Revoke POST /token/revoke
func (h *TokenHandler) Revoke(c echo.Context) error {
	var req contracts.RevokeTokensRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	count, err := h.tokens.RevokeAllForCustomer(c.Request().Context(), req.CustomerID)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, contracts.RevokeTokensResponse{Revoked: count})
}

// Status GET /token/status?token=
func (h *TokenHandler) Status(c echo.Context) error {
	value := c.QueryParam("token")
	if value == "" {
		return c.JSON(http.StatusOK, contracts.TokenStatusResponse{Status: contracts.TokenStatusInvalid})
	}

	status, err := h.tokens.StatusOf(c.Request().Context(), value)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, contracts.TokenStatusResponse{Status: status})
}

// FindValid GET /token/customer/:id/valid
func (h *TokenHandler) FindValid(c echo.Context) error {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || customerID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}

	token, err := h.tokens.FindValidForCustomer(c.Request().Context(), uint(customerID))
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	if token == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no valid token")
	}
	return c.JSON(http.StatusOK, mapper.TokenToContract(token))
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}
