package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	apperrors "github.com/wekeepgrowing/nngc-backend-monorepo/pkg/errors"
	"go.uber.org/zap"
)

func TestCustomerClient_EnableCustomer(t *testing.T) {
	tests := []struct {
		name            string
		handler         func(w http.ResponseWriter, r *http.Request)
		expectedEmail   string
		expectedUnavail bool
		expectedReject  bool
		expectedCode    string
	}{
		{
			name: "enabled",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/customer/7/enable", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(contracts.Customer{ID: 7, Email: "a@x.com", Enabled: true})
			},
			expectedEmail: "a@x.com",
		},
		{
			name: "customer missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"message":"customer not found"}`))
			},
			expectedReject: true,
			expectedCode:   apperrors.ErrNotFound,
		},
		{
			name: "customer service failing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			expectedUnavail: true,
			expectedCode:    apperrors.ErrUnavailable,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
			expectedUnavail: true,
			expectedCode:    apperrors.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.handler))
			defer server.Close()

			c := NewCustomerClient(server.URL+"/", time.Second, zap.NewNop())
			customer, err := c.EnableCustomer(context.Background(), 7)

			if tt.expectedCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedEmail, customer.Email)
				assert.True(t, customer.Enabled)
				return
			}

			require.Error(t, err)
			assert.Nil(t, customer)
			assert.Equal(t, tt.expectedUnavail, apperrors.IsUnavailable(err))
			assert.Equal(t, tt.expectedReject, apperrors.IsRejected(err))
			assert.Equal(t, tt.expectedCode, apperrors.CodeOf(err))
		})
	}
}

func TestCustomerClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewCustomerClient(url, time.Second, zap.NewNop())
	_, err := c.EnableCustomer(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestCustomerClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	c := NewCustomerClient(server.URL, 50*time.Millisecond, zap.NewNop())
	_, err := c.EnableCustomer(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}
