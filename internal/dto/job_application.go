package dto

import "time"

// JobApplication is the read representation of a job application.
type JobApplication struct {
	ID             int64     `json:"id"`
	JobListingID   int64     `json:"job_listing_id"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	ResumeURL      string    `json:"resume_url,omitempty"`
	CoverLetter    string    `json:"cover_letter,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateJobApplication is the payload for applying to a job listing.
type CreateJobApplication struct {
	JobListingID   int64  `json:"job_listing_id"         validate:"required,gt=0"`
	ApplicantName  string `json:"applicant_name"         validate:"required,max=200"`
	ApplicantEmail string `json:"applicant_email"        validate:"required,email"`
	ResumeURL      string `json:"resume_url,omitempty"   validate:"omitempty,url"`
	CoverLetter    string `json:"cover_letter,omitempty" validate:"max=10000"`
}

// UpdateJobApplication is the payload for changing a job application. ID selects the target.
type UpdateJobApplication struct {
	ID             int64   `json:"id"`
	JobListingID   *int64  `json:"job_listing_id,omitempty"  validate:"omitempty,gt=0"`
	ApplicantName  *string `json:"applicant_name,omitempty"  validate:"omitempty,min=1,max=200"`
	ApplicantEmail *string `json:"applicant_email,omitempty" validate:"omitempty,email"`
	ResumeURL      *string `json:"resume_url,omitempty"      validate:"omitempty,url"`
	CoverLetter    *string `json:"cover_letter,omitempty"    validate:"omitempty,max=10000"`
	Status         *string `json:"status,omitempty"          validate:"omitempty,oneof=submitted reviewing interviewing offered rejected withdrawn"`
}
