package domain

import (
	"net/mail"
	"strings"
	"time"
)

// ApplicationStatus is the processing state of a job application.
type ApplicationStatus string

// Possible application status values
const (
	ApplicationSubmitted    ApplicationStatus = "submitted"
	ApplicationReviewing    ApplicationStatus = "reviewing"
	ApplicationInterviewing ApplicationStatus = "interviewing"
	ApplicationOffered      ApplicationStatus = "offered"
	ApplicationRejected     ApplicationStatus = "rejected"
	ApplicationWithdrawn    ApplicationStatus = "withdrawn"
)

// IsValid reports whether s is a known application status.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationSubmitted, ApplicationReviewing, ApplicationInterviewing,
		ApplicationOffered, ApplicationRejected, ApplicationWithdrawn:
		return true
	default:
		return false
	}
}

// JobApplication is a candidate's application to a single job listing.
type JobApplication struct {
	ID             int64
	JobListingID   int64
	ApplicantName  string
	ApplicantEmail string
	ResumeURL      string
	CoverLetter    string
	Status         ApplicationStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks if the JobApplication has valid data.
func (a *JobApplication) Validate() error {
	if a.JobListingID <= 0 {
		return NewValidationError("job_listing_id", "must be positive", ErrValidation)
	}
	if strings.TrimSpace(a.ApplicantName) == "" {
		return NewValidationError("applicant_name", "cannot be empty", ErrValidation)
	}
	if _, err := mail.ParseAddress(a.ApplicantEmail); err != nil {
		return NewValidationError("applicant_email", "is not a valid address", ErrValidation)
	}
	if !a.Status.IsValid() {
		return NewValidationError("status", "is not supported", ErrInvalidApplicationStatus)
	}
	return nil
}
