package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/token/internal/domain/repository"
	"go.uber.org/zap"
)

// CustomerServiceName 에러와 로그에 기록되는 원격 서비스 이름
const CustomerServiceName = "customer-service"

// DefaultTimeout 고객 서비스 호출 제한 시간
const DefaultTimeout = 30 * time.Second

// CustomerClient 고객 서비스 REST 클라이언트
type CustomerClient struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewCustomerClient 고객 활성화 클라이언트 생성
func NewCustomerClient(baseURL string, timeout time.Duration, logger *zap.Logger) repository.CustomerEnabler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CustomerClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// EnableCustomer PUT /customer/{id}/enable 호출
func (c *CustomerClient) EnableCustomer(ctx context.Context, customerID uint) (*contracts.Customer, error) {
	url := fmt.Sprintf("%s/customer/%d/enable", c.baseURL, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to build customer request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("고객 서비스 연결 실패",
			zap.Uint("customer_id", customerID),
			zap.Error(err),
		)
		return nil, apperrors.FromTransportError(CustomerServiceName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.FromTransportError(CustomerServiceName, err)
	}

	if err := apperrors.FromHTTPResponse(CustomerServiceName, resp.StatusCode, body); err != nil {
		c.logger.Warn("고객 활성화 요청 실패",
			zap.Uint("customer_id", customerID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, err
	}

	var customer contracts.Customer
	if err := json.Unmarshal(body, &customer); err != nil {
		return nil, apperrors.NewUnavailableError(CustomerServiceName, fmt.Errorf("decode customer: %w", err))
	}

	return &customer, nil
}
