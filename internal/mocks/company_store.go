package mocks

import (
	"context"

	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockCompanyStore is a testify mock of store.CompanyStore.
type MockCompanyStore struct {
	mock.Mock
}

var _ store.CompanyStore = (*MockCompanyStore)(nil)

// ListAll is a mock implementation of store.CompanyStore.ListAll
func (m *MockCompanyStore) ListAll(ctx context.Context) ([]*domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Company), args.Error(1)
}

// GetByID is a mock implementation of store.CompanyStore.GetByID
func (m *MockCompanyStore) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// Create is a mock implementation of store.CompanyStore.Create
func (m *MockCompanyStore) Create(ctx context.Context, company *domain.Company) (int64, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(int64), args.Error(1)
}

// Update is a mock implementation of store.CompanyStore.Update
func (m *MockCompanyStore) Update(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// Delete is a mock implementation of store.CompanyStore.Delete
func (m *MockCompanyStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
