package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/dto"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/store"
)

// JobListingMapper converts between job listing entities and transfer objects.
type JobListingMapper interface {
	JobListingToDTO(l *domain.JobListing) dto.JobListing
	JobListingsToDTO(listings []*domain.JobListing) []dto.JobListing
	JobListingFromCreate(p *dto.CreateJobListing) *domain.JobListing
	OverlayJobListing(p *dto.UpdateJobListing, l *domain.JobListing)
}

// JobListingService provides CRUD operations on job listings.
type JobListingService interface {
	// List returns every job listing in store order.
	List(ctx context.Context) ([]dto.JobListing, error)

	// GetByID returns the job listing with id.
	GetByID(ctx context.Context, id int64) (*dto.JobListing, error)

	// Add creates a job listing and returns the id assigned by the store.
	Add(ctx context.Context, payload *dto.CreateJobListing) (int64, error)

	// Update overlays the carried fields of payload onto the listing payload.ID.
	Update(ctx context.Context, payload *dto.UpdateJobListing) error

	// Delete removes the job listing with id.
	Delete(ctx context.Context, id int64) error
}

type jobListingService struct {
	listings store.JobListingStore
	mapper   JobListingMapper
	logger   *slog.Logger
}

// NewJobListingService creates a JobListingService.
// It returns an error if a required dependency is nil.
func NewJobListingService(
	listings store.JobListingStore,
	mapper JobListingMapper,
	log *slog.Logger,
) (JobListingService, error) {
	if listings == nil {
		return nil, errNilDependency("job listing store")
	}
	if mapper == nil {
		return nil, errNilDependency("job listing mapper")
	}
	if log == nil {
		log = slog.Default()
	}

	return &jobListingService{
		listings: listings,
		mapper:   mapper,
		logger:   log.With("component", "job_listing_service"),
	}, nil
}

func (s *jobListingService) List(ctx context.Context) ([]dto.JobListing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	listings, err := s.listings.ListAll(ctx)
	if err != nil {
		return nil, fail(log, jobListingResource, OpList, err)
	}

	out := s.mapper.JobListingsToDTO(listings)
	if out == nil {
		out = []dto.JobListing{}
	}

	log.Debug("listed job listings", slog.Int("count", len(out)))
	return out, nil
}

func (s *jobListingService) GetByID(ctx context.Context, id int64) (*dto.JobListing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	listing, err := resolve(ctx, jobListingResource, id, s.listings.GetByID)
	if err != nil {
		return nil, fail(log, jobListingResource, OpGet, err, slog.Int64("job_listing_id", id))
	}

	out := s.mapper.JobListingToDTO(listing)
	log.Debug("retrieved job listing", slog.Int64("job_listing_id", id))
	return &out, nil
}

func (s *jobListingService) Add(ctx context.Context, payload *dto.CreateJobListing) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if payload == nil {
		return 0, fail(log, jobListingResource, OpAdd, ErrNilPayload)
	}

	listing := s.mapper.JobListingFromCreate(payload)
	id, err := s.listings.Create(ctx, listing)
	if err != nil {
		return 0, fail(log, jobListingResource, OpAdd, err, slog.String("title", payload.Title))
	}

	log.Info("job listing created", slog.Int64("job_listing_id", id))
	return id, nil
}

func (s *jobListingService) Update(ctx context.Context, payload *dto.UpdateJobListing) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if payload == nil {
		return fail(log, jobListingResource, OpUpdate, ErrNilPayload)
	}

	listing, err := resolve(ctx, jobListingResource, payload.ID, s.listings.GetByID)
	if err != nil {
		return fail(log, jobListingResource, OpUpdate, err, slog.Int64("job_listing_id", payload.ID))
	}

	s.mapper.OverlayJobListing(payload, listing)

	if err := s.listings.Update(ctx, listing); err != nil {
		return fail(log, jobListingResource, OpUpdate, err, slog.Int64("job_listing_id", payload.ID))
	}

	log.Info("job listing updated", slog.Int64("job_listing_id", payload.ID))
	return nil
}

func (s *jobListingService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := resolve(ctx, jobListingResource, id, s.listings.GetByID); err != nil {
		return fail(log, jobListingResource, OpDelete, err, slog.Int64("job_listing_id", id))
	}

	if err := s.listings.Delete(ctx, id); err != nil {
		return fail(log, jobListingResource, OpDelete, err, slog.Int64("job_listing_id", id))
	}

	log.Info("job listing deleted", slog.Int64("job_listing_id", id))
	return nil
}
