package store

import (
	"context"

	"github.com/phrazzld/jobsearch-api/internal/domain"
)

// JobApplicationStore defines the interface for job application persistence.
type JobApplicationStore interface {
	// ListAll returns every job application ordered by id.
	ListAll(ctx context.Context) ([]*domain.JobApplication, error)

	// ListByJobListingID returns the applications submitted to one listing, ordered by id.
	ListByJobListingID(ctx context.Context, jobListingID int64) ([]*domain.JobApplication, error)

	// GetByID retrieves a job application by its id.
	// Returns ErrJobApplicationNotFound if the application does not exist.
	GetByID(ctx context.Context, id int64) (*domain.JobApplication, error)

	// Create validates and inserts a new job application and returns its id.
	// Returns ErrInvalidEntity if validation fails or the listing does not exist.
	Create(ctx context.Context, app *domain.JobApplication) (int64, error)

	// Update persists every field of an existing job application.
	// Returns ErrJobApplicationNotFound if the application does not exist.
	Update(ctx context.Context, app *domain.JobApplication) error

	// Delete removes a job application.
	// Returns ErrJobApplicationNotFound if the application does not exist.
	Delete(ctx context.Context, id int64) error
}
