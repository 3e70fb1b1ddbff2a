package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// CustomerHandler 고객 조회, 활성화 HTTP 핸들러
type CustomerHandler struct {
	customers interfaces.CustomerUseCase
	logger    *zap.Logger
}

// NewCustomerHandler 고객 핸들러 생성
func NewCustomerHandler(customers interfaces.CustomerUseCase, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, logger: logger}
}

// RegisterRoutes 라우트 등록
func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/customer")
	g.GET("/:id", h.Get)
	g.PUT("/:id/enable", h.Enable)
}

// Get GET /customer/:id
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	customer, err := h.customers.FindByID(c.Request().Context(), id)
	if err != nil {
		return apperrors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, customer.ToProjection())
}

// Enable PUT /customer/:id/enable
// 토큰 서비스가 인증 토큰 확인 후 호출합니다
func (h *CustomerHandler) Enable(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	customer, err := h.customers.Enable(c.Request().Context(), id)
	if err != nil {
		apperrors.LogError(h.logger, err, "고객 활성화 요청 실패", zap.Uint("customer_id", id))
		return apperrors.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, customer.ToProjection())
}

func customerID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}
	return uint(id), nil
}
