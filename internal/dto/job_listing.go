package dto

import "time"

// JobListing is the read representation of a job listing.
type JobListing struct {
	ID             int64     `json:"id"`
	CompanyID      *int64    `json:"company_id,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Location       string    `json:"location,omitempty"`
	EmploymentType string    `json:"employment_type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateJobListing is the payload for publishing a job listing.
type CreateJobListing struct {
	CompanyID      *int64 `json:"company_id,omitempty"      validate:"omitempty,gt=0"`
	Title          string `json:"title"                     validate:"required,max=200"`
	Description    string `json:"description,omitempty"     validate:"max=10000"`
	Location       string `json:"location,omitempty"        validate:"max=200"`
	EmploymentType string `json:"employment_type,omitempty" validate:"omitempty,oneof=full_time part_time contract internship temporary"`
}

// UpdateJobListing is the payload for changing a job listing. ID selects the target.
// ClearCompany detaches the listing from its company and cannot be combined
// with CompanyID.
type UpdateJobListing struct {
	ID             int64   `json:"id"`
	CompanyID      *int64  `json:"company_id,omitempty"      validate:"omitempty,gt=0"`
	ClearCompany   bool    `json:"clear_company,omitempty"   validate:"excluded_with=CompanyID"`
	Title          *string `json:"title,omitempty"           validate:"omitempty,min=1,max=200"`
	Description    *string `json:"description,omitempty"     validate:"omitempty,max=10000"`
	Location       *string `json:"location,omitempty"        validate:"omitempty,max=200"`
	EmploymentType *string `json:"employment_type,omitempty" validate:"omitempty,oneof=full_time part_time contract internship temporary"`
}
