package dto

import "time"

// Company is the read representation of a company.
type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCompany is the payload for registering a company.
type CreateCompany struct {
	Name        string `json:"name"                  validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=5000"`
	Website     string `json:"website,omitempty"     validate:"omitempty,url"`
	Industry    string `json:"industry,omitempty"    validate:"max=100"`
	Location    string `json:"location,omitempty"    validate:"max=200"`
}

// UpdateCompany is the payload for changing a company. ID selects the target.
type UpdateCompany struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Website     *string `json:"website,omitempty"     validate:"omitempty,url"`
	Industry    *string `json:"industry,omitempty"    validate:"omitempty,max=100"`
	Location    *string `json:"location,omitempty"    validate:"omitempty,max=200"`
}
