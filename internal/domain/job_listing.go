package domain

import (
	"strings"
	"time"
)

// EmploymentType describes the contractual arrangement of a job listing.
type EmploymentType string

// Supported employment types.
const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
)

// IsValid reports whether t is one of the supported employment types.
func (t EmploymentType) IsValid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract,
		EmploymentInternship, EmploymentTemporary:
		return true
	default:
		return false
	}
}

// JobListing is an open position that applicants can apply to.
// CompanyID is nil when the listing is not attached to a known company.
type JobListing struct {
	ID             int64
	CompanyID      *int64
	Title          string
	Description    string
	Location       string
	EmploymentType EmploymentType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks if the JobListing has valid data.
// An empty employment type is allowed and defaults to full time on creation.
func (l *JobListing) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrValidation)
	}
	if len(l.Title) > 200 {
		return NewValidationError("title", "cannot exceed 200 characters", ErrValidation)
	}
	if l.EmploymentType != "" && !l.EmploymentType.IsValid() {
		return NewValidationError("employment_type", "is not supported", ErrInvalidEmploymentType)
	}
	if l.CompanyID != nil && *l.CompanyID <= 0 {
		return NewValidationError("company_id", "must be positive", ErrValidation)
	}
	return nil
}
