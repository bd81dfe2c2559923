package store

import (
	"context"

	"github.com/phrazzld/jobsearch-api/internal/domain"
)

// JobListingStore defines the interface for job listing persistence.
type JobListingStore interface {
	// ListAll returns every job listing ordered by id.
	ListAll(ctx context.Context) ([]*domain.JobListing, error)

	// GetByID retrieves a job listing by its id.
	// Returns ErrJobListingNotFound if the listing does not exist.
	GetByID(ctx context.Context, id int64) (*domain.JobListing, error)

	// Create validates and inserts a new job listing and returns the id
	// assigned by the store. Timestamps are set on the passed entity.
	// Returns ErrInvalidEntity if validation fails or the company does not exist.
	Create(ctx context.Context, listing *domain.JobListing) (int64, error)

	// Update persists every field of an existing job listing.
	// Returns ErrJobListingNotFound if the listing does not exist.
	Update(ctx context.Context, listing *domain.JobListing) error

	// Delete removes a job listing together with its applications.
	// Returns ErrJobListingNotFound if the listing does not exist.
	Delete(ctx context.Context, id int64) error
}
