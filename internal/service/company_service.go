package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/dto"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/store"
)

// CompanyMapper converts between company entities and transfer objects.
type CompanyMapper interface {
	CompanyToDTO(c *domain.Company) dto.Company
	CompaniesToDTO(companies []*domain.Company) []dto.Company
	CompanyFromCreate(p *dto.CreateCompany) *domain.Company
	OverlayCompany(p *dto.UpdateCompany, c *domain.Company)
}

// CompanyService provides CRUD operations on companies.
type CompanyService interface {
	List(ctx context.Context) ([]dto.Company, error)
	GetByID(ctx context.Context, id int64) (*dto.Company, error)
	Add(ctx context.Context, payload *dto.CreateCompany) (int64, error)
	Update(ctx context.Context, payload *dto.UpdateCompany) error
	Delete(ctx context.Context, id int64) error
}

type companyService struct {
	companies store.CompanyStore
	mapper    CompanyMapper
	logger    *slog.Logger
}

// NewCompanyService creates a CompanyService.
// It returns an error if a required dependency is nil.
func NewCompanyService(companies store.CompanyStore, mapper CompanyMapper, log *slog.Logger) (CompanyService, error) {
	if companies == nil {
		return nil, errNilDependency("company store")
	}
	if mapper == nil {
		return nil, errNilDependency("company mapper")
	}
	if log == nil {
		log = slog.Default()
	}

	return &companyService{
		companies: companies,
		mapper:    mapper,
		logger:    log.With("component", "company_service"),
	}, nil
}

func (s *companyService) List(ctx context.Context) ([]dto.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	companies, err := s.companies.ListAll(ctx)
	if err != nil {
		return nil, fail(log, companyResource, OpList, err)
	}

	out := s.mapper.CompaniesToDTO(companies)
	if out == nil {
		out = []dto.Company{}
	}

	log.Debug("listed companies", slog.Int("count", len(out)))
	return out, nil
}

func (s *companyService) GetByID(ctx context.Context, id int64) (*dto.Company, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	company, err := resolve(ctx, companyResource, id, s.companies.GetByID)
	if err != nil {
		return nil, fail(log, companyResource, OpGet, err, slog.Int64("company_id", id))
	}

	out := s.mapper.CompanyToDTO(company)
	log.Debug("retrieved company", slog.Int64("company_id", id))
	return &out, nil
}

func (s *companyService) Add(ctx context.Context, payload *dto.CreateCompany) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if payload == nil {
		return 0, fail(log, companyResource, OpAdd, ErrNilPayload)
	}

	id, err := s.companies.Create(ctx, s.mapper.CompanyFromCreate(payload))
	if err != nil {
		return 0, fail(log, companyResource, OpAdd, err, slog.String("name", payload.Name))
	}

	log.Info("company created", slog.Int64("company_id", id), slog.String("name", payload.Name))
	return id, nil
}

func (s *companyService) Update(ctx context.Context, payload *dto.UpdateCompany) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if payload == nil {
		return fail(log, companyResource, OpUpdate, ErrNilPayload)
	}

	company, err := resolve(ctx, companyResource, payload.ID, s.companies.GetByID)
	if err != nil {
		return fail(log, companyResource, OpUpdate, err, slog.Int64("company_id", payload.ID))
	}

	s.mapper.OverlayCompany(payload, company)

	if err := s.companies.Update(ctx, company); err != nil {
		return fail(log, companyResource, OpUpdate, err, slog.Int64("company_id", payload.ID))
	}

	log.Info("company updated", slog.Int64("company_id", payload.ID))
	return nil
}

func (s *companyService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := resolve(ctx, companyResource, id, s.companies.GetByID); err != nil {
		return fail(log, companyResource, OpDelete, err, slog.Int64("company_id", id))
	}

	if err := s.companies.Delete(ctx, id); err != nil {
		return fail(log, companyResource, OpDelete, err, slog.Int64("company_id", id))
	}

	log.Info("company deleted", slog.Int64("company_id", id))
	return nil
}
