package mocks

import (
	"context"

	"github.com/phrazzld/jobsearch-api/internal/dto"
)

// MockJobApplicationService implements service.JobApplicationService for testing.
type MockJobApplicationService struct {
	ListFn              func(ctx context.Context) ([]dto.JobApplication, error)
	ListForJobListingFn func(ctx context.Context, jobListingID int64) ([]dto.JobApplication, error)
	GetByIDFn           func(ctx context.Context, id int64) (*dto.JobApplication, error)
	AddFn               func(ctx context.Context, payload *dto.CreateJobApplication) (int64, error)
	UpdateFn            func(ctx context.Context, payload *dto.UpdateJobApplication) error
	DeleteFn            func(ctx context.Context, id int64) error

	DefaultError error
}

// List implements the JobApplicationService.List method
func (m *MockJobApplicationService) List(ctx context.Context) ([]dto.JobApplication, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []dto.JobApplication{}, m.DefaultError
}

// ListForJobListing implements the JobApplicationService.ListForJobListing method
func (m *MockJobApplicationService) ListForJobListing(
	ctx context.Context,
	jobListingID int64,
) ([]dto.JobApplication, error) {
	if m.ListForJobListingFn != nil {
		return m.ListForJobListingFn(ctx, jobListingID)
	}
	return []dto.JobApplication{}, m.DefaultError
}

// GetByID implements the JobApplicationService.GetByID method
func (m *MockJobApplicationService) GetByID(ctx context.Context, id int64) (*dto.JobApplication, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.DefaultError
}

// Add implements the JobApplicationService.Add method
func (m *MockJobApplicationService) Add(ctx context.Context, payload *dto.CreateJobApplication) (int64, error) {
	if m.AddFn != nil {
		return m.AddFn(ctx, payload)
	}
	return 0, m.DefaultError
}

// Update implements the JobApplicationService.Update method
func (m *MockJobApplicationService) Update(ctx context.Context, payload *dto.UpdateJobApplication) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, payload)
	}
	return m.DefaultError
}

// Delete implements the JobApplicationService.Delete method
func (m *MockJobApplicationService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}
