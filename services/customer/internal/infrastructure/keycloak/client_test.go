package keycloak

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
	"go.uber.org/zap"
)

// fakeKeycloak 테스트용 Keycloak Admin API
type fakeKeycloak struct {
	mu            sync.Mutex
	users         map[string]*userRepresentation
	nextID        int
	roleMappings  map[string][]string
	calls         []string
	failWith      int  // 0이 아니면 관리 API가 이 상태 코드로 응답
	conflictOnce  bool // 다음 생성 요청에서 사용자를 먼저 만들고 409 응답
	roleMissing   bool
	tokenRequests int
}

func newFakeKeycloak() *fakeKeycloak {
	return &fakeKeycloak{
		users:        map[string]*userRepresentation{},
		roleMappings: map[string][]string{},
	}
}

func (f *fakeKeycloak) addUser(email string, enabled bool) string {
	f.nextID++
	id := fmt.Sprintf("kc-%d", f.nextID)
	f.users[id] = &userRepresentation{ID: id, Username: email, Email: email, Enabled: enabled}
	return id
}

func (f *fakeKeycloak) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.URL.Path == "/realms/master/protocol/openid-connect/token" {
		f.tokenRequests++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"admin-token","token_type":"Bearer","expires_in":300}`))
		return
	}

	if r.Header.Get("Authorization") != "Bearer admin-token" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	if f.failWith != 0 {
		w.WriteHeader(f.failWith)
		return
	}

	const prefix = "/admin/realms/nngc/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, prefix), "/")

	switch {
	case r.Method == http.MethodGet && len(parts) == 1 && parts[0] == "users":
		email := r.URL.Query().Get("email")
		result := []userRepresentation{}
		for _, u := range f.users {
			if u.Email == email {
				result = append(result, *u)
			}
		}
		json.NewEncoder(w).Encode(result)

	case r.Method == http.MethodPost && len(parts) == 1 && parts[0] == "users":
		var u userRepresentation
		json.NewDecoder(r.Body).Decode(&u)
		if f.conflictOnce {
			f.conflictOnce = false
			f.addUser(u.Email, false)
			w.WriteHeader(http.StatusConflict)
			return
		}
		for _, existing := range f.users {
			if existing.Email == u.Email {
				w.WriteHeader(http.StatusConflict)
				return
			}
		}
		f.nextID++
		u.ID = fmt.Sprintf("kc-%d", f.nextID)
		f.users[u.ID] = &u
		w.Header().Set("Location", "http://"+r.Host+prefix+"users/"+u.ID)
		w.WriteHeader(http.StatusCreated)

	case r.Method == http.MethodPut && len(parts) == 2 && parts[0] == "users":
		u, ok := f.users[parts[1]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var update map[string]bool
		json.NewDecoder(r.Body).Decode(&update)
		u.Enabled = update["enabled"]
		u.EmailVerified = update["emailVerified"]
		w.WriteHeader(http.StatusNoContent)

	case r.Method == http.MethodDelete && len(parts) == 2 && parts[0] == "users":
		if _, ok := f.users[parts[1]]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(f.users, parts[1])
		w.WriteHeader(http.StatusNoContent)

	case r.Method == http.MethodGet && len(parts) == 2 && parts[0] == "roles":
		if f.roleMissing {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(roleRepresentation{ID: "role-1", Name: parts[1]})

	case r.Method == http.MethodPost && len(parts) == 4 && parts[2] == "role-mappings":
		var roles []roleRepresentation
		json.NewDecoder(r.Body).Decode(&roles)
		for _, role := range roles {
			f.roleMappings[parts[1]] = append(f.roleMappings[parts[1]], role.Name)
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeKeycloak) countCalls(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func newTestClient(t *testing.T, fake *fakeKeycloak) *Client {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL:      server.URL,
		Realm:        "nngc",
		ClientID:     "registration",
		ClientSecret: "secret",
		Timeout:      2 * time.Second,
	}, zap.NewNop()).(*Client)
}

func testProfile(email string) entity.Profile {
	return entity.Profile{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       email,
		Password:    "password1",
		PhoneNumber: "804-555-0100",
		City:        "Kilmarnock",
		Service:     "weekly",
	}
}

func TestClient_CreateUser(t *testing.T) {
	fake := newFakeKeycloak()
	client := newTestClient(t, fake)
	ctx := context.Background()

	id, created, err := client.CreateUser(ctx, testProfile("Ada@Example.com"))
	require.NoError(t, err)
	assert.True(t, created)
	require.NotEmpty(t, id)

	user := fake.users[id]
	require.NotNil(t, user)
	assert.Equal(t, "ada@example.com", user.Username)
	assert.False(t, user.Enabled)
	assert.False(t, user.EmailVerified)
	assert.Equal(t, []string{"weekly"}, user.Attributes["service"])
	assert.Equal(t, []string{"804-555-0100"}, user.Attributes["phone"])
	require.Len(t, user.Credentials, 1)
	assert.False(t, user.Credentials[0].Temporary)
	assert.Equal(t, []string{"user"}, fake.roleMappings[id])
}

func TestClient_CreateUserIsIdempotent(t *testing.T) {
	fake := newFakeKeycloak()
	existingID := fake.addUser("ada@example.com", false)
	client := newTestClient(t, fake)

	id, created, err := client.CreateUser(context.Background(), testProfile("ada@example.com"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existingID, id)
	assert.Equal(t, 0, fake.countCalls("POST"))
}

func TestClient_CreateUserConflictReusesWinner(t *testing.T) {
	fake := newFakeKeycloak()
	fake.conflictOnce = true
	client := newTestClient(t, fake)

	id, created, err := client.CreateUser(context.Background(), testProfile("race@example.com"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.NotEmpty(t, id)
	assert.Len(t, fake.users, 1)
}

func TestClient_CreateUserRoleFailureIsNotFatal(t *testing.T) {
	fake := newFakeKeycloak()
	fake.roleMissing = true
	client := newTestClient(t, fake)

	id, created, err := client.CreateUser(context.Background(), testProfile("norole@example.com"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, fake.roleMappings[id])
}

func TestClient_EnableUser(t *testing.T) {
	fake := newFakeKeycloak()
	id := fake.addUser("ada@example.com", false)
	client := newTestClient(t, fake)
	ctx := context.Background()

	require.NoError(t, client.EnableUser(ctx, "ADA@example.com"))
	assert.True(t, fake.users[id].Enabled)
	assert.True(t, fake.users[id].EmailVerified)

	found, err := client.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.Enabled)

	require.NoError(t, client.EnableUser(ctx, "missing@example.com"))
}

func TestClient_DeleteUser(t *testing.T) {
	fake := newFakeKeycloak()
	fake.addUser("ada@example.com", false)
	client := newTestClient(t, fake)
	ctx := context.Background()

	require.NoError(t, client.DeleteUser(ctx, "ada@example.com"))
	assert.Empty(t, fake.users)

	require.NoError(t, client.DeleteUser(ctx, "ada@example.com"))
	assert.Equal(t, 1, fake.countCalls("DELETE"))

	found, err := client.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		unavailable bool
		rejected    bool
	}{
		{name: "server error", status: http.StatusServiceUnavailable, unavailable: true},
		{name: "bad request", status: http.StatusBadRequest, rejected: true},
		{name: "forbidden", status: http.StatusForbidden, rejected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeKeycloak()
			fake.failWith = tt.status
			client := newTestClient(t, fake)

			_, _, err := client.CreateUser(context.Background(), testProfile("ada@example.com"))
			require.Error(t, err)
			assert.Equal(t, tt.unavailable, apperrors.IsUnavailable(err))
			assert.Equal(t, tt.rejected, apperrors.IsRejected(err))
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(Config{BaseURL: baseURL, Realm: "nngc", Timeout: time.Second}, zap.NewNop())
	_, err := client.FindUserByEmail(context.Background(), "ada@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestClient_PasswordGrant(t *testing.T) {
	fake := newFakeKeycloak()
	server := httptest.NewServer(fake)
	defer server.Close()

	client := NewClient(Config{
		BaseURL:  server.URL,
		Realm:    "nngc",
		ClientID: "admin-cli",
		Username: "admin",
		Password: "admin",
		Timeout:  time.Second,
	}, zap.NewNop())

	ctx := context.Background()
	_, err := client.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	_, err = client.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.tokenRequests)
}
