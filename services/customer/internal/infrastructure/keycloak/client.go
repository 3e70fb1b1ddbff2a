// Package keycloak는 Keycloak Admin REST API로 IdP 사용자를 관리합니다.
package keycloak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ServiceName 에러와 로그에 기록되는 원격 서비스 이름
const ServiceName = "keycloak"

// Config Keycloak 연결 설정
type Config struct {
	BaseURL      string
	Realm        string
	AdminRealm   string // 관리자 토큰을 발급받는 realm (기본 master)
	ClientID     string
	ClientSecret string
	// Username이 있으면 password grant, 없으면 client credentials grant를 사용합니다
	Username    string
	Password    string
	DefaultRole string
	Timeout     time.Duration
}

// Client Keycloak 관리 API 클라이언트
type Client struct {
	http   *http.Client
	cfg    Config
	logger *zap.Logger
}

// NewClient 자체 HTTP 클라이언트를 가진 IdP 어댑터 생성
func NewClient(cfg Config, logger *zap.Logger) repository.IdentityProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.AdminRealm == "" {
		cfg.AdminRealm = "master"
	}
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = "user"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	tokenClient := &http.Client{Timeout: cfg.Timeout}
	source := newTokenSource(cfg, tokenClient)

	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &oauth2.Transport{
				Source: source,
				Base:   http.DefaultTransport,
			},
		},
		cfg:    cfg,
		logger: logger,
	}
}

func newTokenSource(cfg Config, tokenClient *http.Client) oauth2.TokenSource {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenClient)
	tokenURL := fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", cfg.BaseURL, cfg.AdminRealm)

	if cfg.Username != "" {
		conf := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		}
		return oauth2.ReuseTokenSource(nil, &passwordTokenSource{
			ctx:      ctx,
			conf:     conf,
			username: cfg.Username,
			password: cfg.Password,
		})
	}

	conf := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	return conf.TokenSource(ctx)
}

// passwordTokenSource 만료 시마다 password grant로 새 토큰을 받습니다
type passwordTokenSource struct {
	ctx      context.Context
	conf     *oauth2.Config
	username string
	password string
}

func (s *passwordTokenSource) Token() (*oauth2.Token, error) {
	return s.conf.PasswordCredentialsToken(s.ctx, s.username, s.password)
}

type userRepresentation struct {
	ID            string                     `json:"id,omitempty"`
	Username      string                     `json:"username,omitempty"`
	Email         string                     `json:"email,omitempty"`
	FirstName     string                     `json:"firstName,omitempty"`
	LastName      string                     `json:"lastName,omitempty"`
	Enabled       bool                       `json:"enabled"`
	EmailVerified bool                       `json:"emailVerified"`
	Attributes    map[string][]string        `json:"attributes,omitempty"`
	Credentials   []credentialRepresentation `json:"credentials,omitempty"`
}

type credentialRepresentation struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Temporary bool   `json:"temporary"`
}

type roleRepresentation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateUser 비활성, 미인증 사용자 생성. 같은 이메일이 있으면 기존 ID를 반환합니다
func (c *Client) CreateUser(ctx context.Context, profile entity.Profile) (string, bool, error) {
	email := entity.NormalizeEmail(profile.Email)

	existing, err := c.findUser(ctx, email)
	if err != nil {
		return "", false, err
	}
	if existing != nil {
		c.logger.Warn("이미 등록된 IdP 사용자 재사용", zap.String("user_id", existing.ID))
		return existing.ID, false, nil
	}

	user := userRepresentation{
		Username:      email,
		Email:         email,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		Enabled:       false,
		EmailVerified: false,
		Attributes: map[string][]string{
			"phone":       {profile.PhoneNumber},
			"houseNumber": {profile.HouseNumber},
			"streetName":  {profile.StreetName},
			"city":        {profile.City},
			"state":       {profile.State},
			"zipCode":     {profile.ZipCode},
			"service":     {profile.Service},
		},
		Credentials: []credentialRepresentation{
			{Type: "password", Value: profile.Password, Temporary: false},
		},
	}

	resp, err := c.do(ctx, http.MethodPost, "/users", user, nil)
	if err != nil {
		if statusOf(err) != http.StatusConflict {
			return "", false, err
		}
		// 동시 가입으로 먼저 생성된 사용자
		existing, findErr := c.findUser(ctx, email)
		if findErr != nil {
			return "", false, findErr
		}
		if existing == nil {
			return "", false, err
		}
		return existing.ID, false, nil
	}

	userID := path.Base(resp.Header.Get("Location"))
	if userID == "" || userID == "." || userID == "/" {
		created, err := c.findUser(ctx, email)
		if err != nil {
			return "", false, err
		}
		if created == nil {
			return "", false, apperrors.NewRejectedError(ServiceName, resp.StatusCode, "created user has no id")
		}
		userID = created.ID
	}

	if err := c.assignRealmRole(ctx, userID, c.cfg.DefaultRole); err != nil {
		apperrors.LogWarn(c.logger, err, "기본 역할 할당 실패",
			zap.String("user_id", userID),
			zap.String("role", c.cfg.DefaultRole),
		)
	}

	c.logger.Info("IdP 사용자 생성", zap.String("user_id", userID))
	return userID, true, nil
}

// EnableUser 사용자 활성화 및 이메일 인증 처리
func (c *Client) EnableUser(ctx context.Context, email string) error {
	user, err := c.findUser(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		c.logger.Warn("활성화할 IdP 사용자 없음")
		return nil
	}

	update := map[string]interface{}{
		"enabled":       true,
		"emailVerified": true,
	}
	if _, err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(user.ID), update, nil); err != nil {
		return err
	}

	c.logger.Info("IdP 사용자 활성화", zap.String("user_id", user.ID))
	return nil
}

// DeleteUser 보상 처리용 삭제. 없는 사용자는 무시합니다
func (c *Client) DeleteUser(ctx context.Context, email string) error {
	user, err := c.findUser(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	if _, err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(user.ID), nil, nil); err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil
		}
		return err
	}

	c.logger.Info("IdP 사용자 삭제", zap.String("user_id", user.ID))
	return nil
}

// FindUserByEmail 이메일로 사용자 조회
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*entity.IdentityUser, error) {
	user, err := c.findUser(ctx, email)
	if err != nil || user == nil {
		return nil, err
	}
	return &entity.IdentityUser{
		ID:            user.ID,
		Email:         user.Email,
		Enabled:       user.Enabled,
		EmailVerified: user.EmailVerified,
	}, nil
}

func (c *Client) findUser(ctx context.Context, email string) (*userRepresentation, error) {
	email = entity.NormalizeEmail(email)
	query := url.Values{}
	query.Set("email", email)
	query.Set("exact", "true")

	var users []userRepresentation
	if _, err := c.do(ctx, http.MethodGet, "/users?"+query.Encode(), nil, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (c *Client) assignRealmRole(ctx context.Context, userID, roleName string) error {
	var role roleRepresentation
	if _, err := c.do(ctx, http.MethodGet, "/roles/"+url.PathEscape(roleName), nil, &role); err != nil {
		return err
	}

	endpoint := fmt.Sprintf("/users/%s/role-mappings/realm", url.PathEscape(userID))
	_, err := c.do(ctx, http.MethodPost, endpoint, []roleRepresentation{role}, nil)
	return err
}

// do realm 관리 API 호출. 2xx가 아니면 RemoteError를 반환합니다
func (c *Client) do(ctx context.Context, method, endpoint string, in, out interface{}) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to encode keycloak request", err)
		}
		body = bytes.NewReader(payload)
	}

	target := fmt.Sprintf("%s/admin/realms/%s%s", c.cfg.BaseURL, url.PathEscape(c.cfg.Realm), endpoint)
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "failed to build keycloak request", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.FromTransportError(ServiceName, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.FromTransportError(ServiceName, err)
	}

	if err := apperrors.FromHTTPResponse(ServiceName, resp.StatusCode, respBody); err != nil {
		return resp, err
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp, apperrors.NewUnavailableError(ServiceName, fmt.Errorf("decode response: %w", err))
		}
	}
	return resp, nil
}

func statusOf(err error) int {
	var remoteErr *apperrors.RemoteError
	if apperrors.As(err, &remoteErr) {
		return remoteErr.StatusCode
	}
	return 0
}
