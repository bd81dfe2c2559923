package mocks

import (
	"context"

	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockJobApplicationStore is a testify mock of store.JobApplicationStore.
type MockJobApplicationStore struct {
	mock.Mock
}

var _ store.JobApplicationStore = (*MockJobApplicationStore)(nil)

// ListAll is a mock implementation of store.JobApplicationStore.ListAll
func (m *MockJobApplicationStore) ListAll(ctx context.Context) ([]*domain.JobApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JobApplication), args.Error(1)
}

// ListByJobListingID is a mock implementation of store.JobApplicationStore.ListByJobListingID
func (m *MockJobApplicationStore) ListByJobListingID(
	ctx context.Context,
	jobListingID int64,
) ([]*domain.JobApplication, error) {
	args := m.Called(ctx, jobListingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JobApplication), args.Error(1)
}

// GetByID is a mock implementation of store.JobApplicationStore.GetByID
func (m *MockJobApplicationStore) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

// Create is a mock implementation of store.JobApplicationStore.Create
func (m *MockJobApplicationStore) Create(ctx context.Context, app *domain.JobApplication) (int64, error) {
	args := m.Called(ctx, app)
	return args.Get(0).(int64), args.Error(1)
}

// Update is a mock implementation of store.JobApplicationStore.Update
func (m *MockJobApplicationStore) Update(ctx context.Context, app *domain.JobApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

// Delete is a mock implementation of store.JobApplicationStore.Delete
func (m *MockJobApplicationStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
