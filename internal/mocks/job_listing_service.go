package mocks

import (
	"context"

	"github.com/phrazzld/jobsearch-api/internal/dto"
)

// MockJobListingService implements service.JobListingService for testing.
// Unset function fields return DefaultError and zero values.
type MockJobListingService struct {
	ListFn    func(ctx context.Context) ([]dto.JobListing, error)
	GetByIDFn func(ctx context.Context, id int64) (*dto.JobListing, error)
	AddFn     func(ctx context.Context, payload *dto.CreateJobListing) (int64, error)
	UpdateFn  func(ctx context.Context, payload *dto.UpdateJobListing) error
	DeleteFn  func(ctx context.Context, id int64) error

	DefaultError error
}

// List implements the JobListingService.List method
func (m *MockJobListingService) List(ctx context.Context) ([]dto.JobListing, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []dto.JobListing{}, m.DefaultError
}

// GetByID implements the JobListingService.GetByID method
func (m *MockJobListingService) GetByID(ctx context.Context, id int64) (*dto.JobListing, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.DefaultError
}

// Add implements the JobListingService.Add method
func (m *MockJobListingService) Add(ctx context.Context, payload *dto.CreateJobListing) (int64, error) {
	if m.AddFn != nil {
		return m.AddFn(ctx, payload)
	}
	return 0, m.DefaultError
}

// Update implements the JobListingService.Update method
func (m *MockJobListingService) Update(ctx context.Context, payload *dto.UpdateJobListing) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, payload)
	}
	return m.DefaultError
}

// Delete implements the JobListingService.Delete method
func (m *MockJobListingService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}
