package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/dto"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/store"
)

// JobApplicationMapper converts between job application entities and transfer objects.
type JobApplicationMapper interface {
	JobApplicationToDTO(a *domain.JobApplication) dto.JobApplication
	JobApplicationsToDTO(apps []*domain.JobApplication) []dto.JobApplication
	JobApplicationFromCreate(p *dto.CreateJobApplication) *domain.JobApplication
	OverlayJobApplication(p *dto.UpdateJobApplication, a *domain.JobApplication)
}

// JobApplicationService provides CRUD operations on job applications.
// The job listing an application refers to must exist when the application
// is created or moved to another listing.
type JobApplicationService interface {
	List(ctx context.Context) ([]dto.JobApplication, error)
	GetByID(ctx context.Context, id int64) (*dto.JobApplication, error)
	Add(ctx context.Context, payload *dto.CreateJobApplication) (int64, error)
	Update(ctx context.Context, payload *dto.UpdateJobApplication) error
	Delete(ctx context.Context, id int64) error

	// ListForJobListing returns the applications submitted to one job listing.
	ListForJobListing(ctx context.Context, jobListingID int64) ([]dto.JobApplication, error)
}

type jobApplicationService struct {
	applications store.JobApplicationStore
	listings     store.JobListingStore
	mapper       JobApplicationMapper
	logger       *slog.Logger
}

// NewJobApplicationService creates a JobApplicationService.
// It returns an error if a required dependency is nil.
func NewJobApplicationService(
	applications store.JobApplicationStore,
	listings store.JobListingStore,
	mapper JobApplicationMapper,
	log *slog.Logger,
) (JobApplicationService, error) {
	if applications == nil {
		return nil, errNilDependency("job application store")
	}
	if listings == nil {
		return nil, errNilDependency("job listing store")
	}
	if mapper == nil {
		return nil, errNilDependency("job application mapper")
	}
	if log == nil {
		log = slog.Default()
	}

	return &jobApplicationService{
		applications: applications,
		listings:     listings,
		mapper:       mapper,
		logger:       log.With("component", "job_application_service"),
	}, nil
}

func (s *jobApplicationService) List(ctx context.Context) ([]dto.JobApplication, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	apps, err := s.applications.ListAll(ctx)
	if err != nil {
		return nil, fail(log, jobApplicationResource, OpList, err)
	}

	out := s.toDTOs(apps)
	log.Debug("listed job applications", slog.Int("count", len(out)))
	return out, nil
}

func (s *jobApplicationService) ListForJobListing(
	ctx context.Context,
	jobListingID int64,
) ([]dto.JobApplication, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := resolve(ctx, jobListingResource, jobListingID, s.listings.GetByID); err != nil {
		return nil, fail(log, jobApplicationResource, OpList, err, slog.Int64("job_listing_id", jobListingID))
	}

	apps, err := s.applications.ListByJobListingID(ctx, jobListingID)
	if err != nil {
		return nil, fail(log, jobApplicationResource, OpList, err, slog.Int64("job_listing_id", jobListingID))
	}

	out := s.toDTOs(apps)
	log.Debug("listed job applications for job listing",
		slog.Int64("job_listing_id", jobListingID),
		slog.Int("count", len(out)))
	return out, nil
}

func (s *jobApplicationService) GetByID(ctx context.Context, id int64) (*dto.JobApplication, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	app, err := resolve(ctx, jobApplicationResource, id, s.applications.GetByID)
	if err != nil {
		return nil, fail(log, jobApplicationResource, OpGet, err, slog.Int64("job_application_id", id))
	}

	out := s.mapper.JobApplicationToDTO(app)
	log.Debug("retrieved job application", slog.Int64("job_application_id", id))
	return &out, nil
}

func (s *jobApplicationService) Add(ctx context.Context, payload *dto.CreateJobApplication) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if payload == nil {
		return 0, fail(log, jobApplicationResource, OpAdd, ErrNilPayload)
	}

	if _, err := resolve(ctx, jobListingResource, payload.JobListingID, s.listings.GetByID); err != nil {
		return 0, fail(log, jobApplicationResource, OpAdd, err, slog.Int64("job_listing_id", payload.JobListingID))
	}

	id, err := s.applications.Create(ctx, s.mapper.JobApplicationFromCreate(payload))
	if err != nil {
		return 0, fail(log, jobApplicationResource, OpAdd, err, slog.Int64("job_listing_id", payload.JobListingID))
	}

	log.Info("job application created",
		slog.Int64("job_application_id", id),
		slog.Int64("job_listing_id", payload.JobListingID))
	return id, nil
}

func (s *jobApplicationService) Update(ctx context.Context, payload *dto.UpdateJobApplication) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if payload == nil {
		return fail(log, jobApplicationResource, OpUpdate, ErrNilPayload)
	}

	app, err := resolve(ctx, jobApplicationResource, payload.ID, s.applications.GetByID)
	if err != nil {
		return fail(log, jobApplicationResource, OpUpdate, err, slog.Int64("job_application_id", payload.ID))
	}

	if payload.JobListingID != nil && *payload.JobListingID != app.JobListingID {
		if _, err := resolve(ctx, jobListingResource, *payload.JobListingID, s.listings.GetByID); err != nil {
			return fail(log, jobApplicationResource, OpUpdate, err,
				slog.Int64("job_application_id", payload.ID),
				slog.Int64("job_listing_id", *payload.JobListingID))
		}
	}

	s.mapper.OverlayJobApplication(payload, app)

	if err := s.applications.Update(ctx, app); err != nil {
		return fail(log, jobApplicationResource, OpUpdate, err, slog.Int64("job_application_id", payload.ID))
	}

	log.Info("job application updated",
		slog.Int64("job_application_id", payload.ID),
		slog.String("status", string(app.Status)))
	return nil
}

func (s *jobApplicationService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := resolve(ctx, jobApplicationResource, id, s.applications.GetByID); err != nil {
		return fail(log, jobApplicationResource, OpDelete, err, slog.Int64("job_application_id", id))
	}

	if err := s.applications.Delete(ctx, id); err != nil {
		return fail(log, jobApplicationResource, OpDelete, err, slog.Int64("job_application_id", id))
	}

	log.Info("job application deleted", slog.Int64("job_application_id", id))
	return nil
}

func (s *jobApplicationService) toDTOs(apps []*domain.JobApplication) []dto.JobApplication {
	out := s.mapper.JobApplicationsToDTO(apps)
	if out == nil {
		out = []dto.JobApplication{}
	}
	return out
}
