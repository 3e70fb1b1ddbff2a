package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/repository"
	"go.uber.org/zap"
)

// TokenServiceName 에러와 로그에 기록되는 원격 서비스 이름
const TokenServiceName = "token-service"

// TokenClient 토큰 서비스 REST 클라이언트
type TokenClient struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewTokenClient 토큰 서비스 클라이언트 생성
func NewTokenClient(baseURL string, timeout time.Duration, logger *zap.Logger) repository.TokenService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TokenClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Issue POST /token/generate
func (c *TokenClient) Issue(ctx context.Context, customerID uint) (*contracts.Token, error) {
	var token contracts.Token
	if err := c.call(ctx, http.MethodPost, "/token/generate", contracts.IssueTokenRequest{CustomerID: customerID}, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Confirm POST /token/confirm
func (c *TokenClient) Confirm(ctx context.Context, token string) (*contracts.ConfirmTokenResponse, error) {
	var result contracts.ConfirmTokenResponse
	if err := c.call(ctx, http.MethodPost, "/token/confirm", contracts.ConfirmTokenRequest{Token: token}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RevokeAll POST /token/revoke
func (c *TokenClient) RevokeAll(ctx context.Context, customerID uint) (int64, error) {
	var result contracts.RevokeTokensResponse
	if err := c.call(ctx, http.MethodPost, "/token/revoke", contracts.RevokeTokensRequest{CustomerID: customerID}, &result); err != nil {
		return 0, err
	}
	return result.Revoked, nil
}

// Status GET /token/status
func (c *TokenClient) Status(ctx context.Context, token string) (contracts.TokenStatus, error) {
	var result contracts.TokenStatusResponse
	if err := c.call(ctx, http.MethodGet, "/token/status?token="+url.QueryEscape(token), nil, &result); err != nil {
		return "", err
	}
	return result.Status, nil
}

func (c *TokenClient) call(ctx context.Context, method, endpoint string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrInternal, "failed to encode token request", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrInternal, "failed to build token request", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("토큰 서비스 연결 실패", zap.String("method", method), zap.Error(err))
		return apperrors.FromTransportError(TokenServiceName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.FromTransportError(TokenServiceName, err)
	}

	if err := apperrors.FromHTTPResponse(TokenServiceName, resp.StatusCode, respBody); err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return apperrors.NewUnavailableError(TokenServiceName, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
