package mocks

import (
	"context"

	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockJobListingStore is a testify mock of store.JobListingStore.
type MockJobListingStore struct {
	mock.Mock
}

var _ store.JobListingStore = (*MockJobListingStore)(nil)

// ListAll is a mock implementation of store.JobListingStore.ListAll
func (m *MockJobListingStore) ListAll(ctx context.Context) ([]*domain.JobListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JobListing), args.Error(1)
}

// GetByID is a mock implementation of store.JobListingStore.GetByID
func (m *MockJobListingStore) GetByID(ctx context.Context, id int64) (*domain.JobListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobListing), args.Error(1)
}

// Create is a mock implementation of store.JobListingStore.Create
func (m *MockJobListingStore) Create(ctx context.Context, listing *domain.JobListing) (int64, error) {
	args := m.Called(ctx, listing)
	return args.Get(0).(int64), args.Error(1)
}

// Update is a mock implementation of store.JobListingStore.Update
func (m *MockJobListingStore) Update(ctx context.Context, listing *domain.JobListing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

// Delete is a mock implementation of store.JobListingStore.Delete
func (m *MockJobListingStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
