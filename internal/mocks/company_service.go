package mocks

import (
	"context"

	"github.com/phrazzld/jobsearch-api/internal/dto"
)

// MockCompanyService implements service.CompanyService for testing.
type MockCompanyService struct {
	ListFn    func(ctx context.Context) ([]dto.Company, error)
	GetByIDFn func(ctx context.Context, id int64) (*dto.Company, error)
	AddFn     func(ctx context.Context, payload *dto.CreateCompany) (int64, error)
	UpdateFn  func(ctx context.Context, payload *dto.UpdateCompany) error
	DeleteFn  func(ctx context.Context, id int64) error

	DefaultError error
}

// List implements the CompanyService.List method
func (m *MockCompanyService) List(ctx context.Context) ([]dto.Company, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []dto.Company{}, m.DefaultError
}

// GetByID implements the CompanyService.GetByID method
func (m *MockCompanyService) GetByID(ctx context.Context, id int64) (*dto.Company, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.DefaultError
}

// Add implements the CompanyService.Add method
func (m *MockCompanyService) Add(ctx context.Context, payload *dto.CreateCompany) (int64, error) {
	if m.AddFn != nil {
		return m.AddFn(ctx, payload)
	}
	return 0, m.DefaultError
}

// Update implements the CompanyService.Update method
func (m *MockCompanyService) Update(ctx context.Context, payload *dto.UpdateCompany) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, payload)
	}
	return m.DefaultError
}

// Delete implements the CompanyService.Delete method
func (m *MockCompanyService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.DefaultError
}
