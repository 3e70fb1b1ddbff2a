package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
	"github.com/wekeepgrowing/nngc-backend-monorepo/services/customer/internal/domain/entity"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Enable(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CreateUser(ctx context.Context, profile entity.Profile) (string, bool, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockIdentityProvider) EnableUser(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockIdentityProvider) DeleteUser(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockIdentityProvider) FindUserByEmail(ctx context.Context, email string) (*entity.IdentityUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.IdentityUser), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(ctx context.Context, customerID uint) (*contracts.Token, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.Token), args.Error(1)
}

func (m *MockTokenService) Confirm(ctx context.Context, token string) (*contracts.ConfirmTokenResponse, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.ConfirmTokenResponse), args.Error(1)
}

func (m *MockTokenService) RevokeAll(ctx context.Context, customerID uint) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) Status(ctx context.Context, token string) (contracts.TokenStatus, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(contracts.TokenStatus), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendRegistrationEmail(email, firstName, link string) {
	m.Called(email, firstName, link)
}

func (m *MockNotifier) SendWelcomeEmail(email, firstName string) {
	m.Called(email, firstName)
}

func (m *MockNotifier) SendPasswordResetEmail(email, firstName, link string) {
	m.Called(email, firstName, link)
}
