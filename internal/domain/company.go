package domain

import (
	"strings"
	"time"
)

// Company is an employer that publishes job listings.
type Company struct {
	ID          int64
	Name        string
	Description string
	Website     string
	Industry    string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks if the Company has valid data.
func (c *Company) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrValidation)
	}
	if len(c.Name) > 200 {
		return NewValidationError("name", "cannot exceed 200 characters", ErrValidation)
	}
	return nil
}
