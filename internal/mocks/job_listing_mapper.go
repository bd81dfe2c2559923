package mocks

import (
	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/dto"
	"github.com/stretchr/testify/mock"
)

// MockJobListingMapper is a testify mock of the job listing mapping contract.
type MockJobListingMapper struct {
	mock.Mock
}

// JobListingToDTO is a mock implementation of JobListingMapper.JobListingToDTO
func (m *MockJobListingMapper) JobListingToDTO(l *domain.JobListing) dto.JobListing {
	args := m.Called(l)
	return args.Get(0).(dto.JobListing)
}

// JobListingsToDTO is a mock implementation of JobListingMapper.JobListingsToDTO
func (m *MockJobListingMapper) JobListingsToDTO(listings []*domain.JobListing) []dto.JobListing {
	args := m.Called(listings)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]dto.JobListing)
}

// JobListingFromCreate is a mock implementation of JobListingMapper.JobListingFromCreate
func (m *MockJobListingMapper) JobListingFromCreate(p *dto.CreateJobListing) *domain.JobListing {
	args := m.Called(p)
	return args.Get(0).(*domain.JobListing)
}

// OverlayJobListing is a mock implementation of JobListingMapper.OverlayJobListing
func (m *MockJobListingMapper) OverlayJobListing(p *dto.UpdateJobListing, l *domain.JobListing) {
	m.Called(p, l)
}
