// Package seed loads companies and their job listings from a TOML file and
// creates them through the services, so seeded data passes the same mapping
// and validation as API traffic. Seeding is idempotent: companies are matched
// by name and listings by title within their company.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/jobsearch-api/internal/dto"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/service"
)

// File is the decoded seed document.
type File struct {
	Companies []Company `toml:"companies"`
}

// Company is one company entry with the listings to publish under it.
type Company struct {
	Name        string    `toml:"name"        validate:"required,max=200"`
	Description string    `toml:"description" validate:"max=5000"`
	Website     string    `toml:"website"     validate:"omitempty,url"`
	Industry    string    `toml:"industry"    validate:"max=100"`
	Location    string    `toml:"location"    validate:"max=200"`
	JobListings []Listing `toml:"job_listings" validate:"dive"`
}

// Listing is one job listing entry.
type Listing struct {
	Title          string `toml:"title"           validate:"required,max=200"`
	Description    string `toml:"description"     validate:"max=10000"`
	Location       string `toml:"location"        validate:"max=200"`
	EmploymentType string `toml:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship temporary"`
}

// Report counts what a seeding run did.
type Report struct {
	CompaniesCreated int
	CompaniesSkipped int
	ListingsCreated  int
	ListingsSkipped  int
}

// Decode parses a seed document. Unknown keys are rejected so typos do not
// silently drop data.
func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys in seed file: %s", strings.Join(keys, ", "))
	}
	return &f, nil
}

// LoadFile reads and decodes the seed document at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = fh.Close() }()
	return Decode(fh)
}

// Seeder creates seed data through the services.
type Seeder struct {
	companies service.CompanyService
	listings  service.JobListingService
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewSeeder creates a Seeder.
func NewSeeder(
	companies service.CompanyService,
	listings service.JobListingService,
	log *slog.Logger,
) (*Seeder, error) {
	if companies == nil {
		return nil, errors.New("company service cannot be nil")
	}
	if listings == nil {
		return nil, errors.New("job listing service cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{
		companies: companies,
		listings:  listings,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    log.With(slog.String("component", "seeder")),
	}, nil
}

// Run validates f and creates whatever is missing. The whole file is
// validated before anything is written.
func (s *Seeder) Run(ctx context.Context, f *File) (Report, error) {
	var report Report
	if f == nil {
		return report, errors.New("seed file cannot be nil")
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	for i := range f.Companies {
		if err := s.validate.Struct(f.Companies[i]); err != nil {
			return report, fmt.Errorf("invalid company #%d (%q): %w", i+1, f.Companies[i].Name, err)
		}
	}

	existing, err := s.companies.List(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list companies: %w", err)
	}
	companyIDs := make(map[string]int64, len(existing))
	for _, c := range existing {
		companyIDs[c.Name] = c.ID
	}

	listings, err := s.listings.List(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list job listings: %w", err)
	}
	type listingKey struct {
		companyID int64
		title     string
	}
	seen := make(map[listingKey]bool, len(listings))
	for _, l := range listings {
		if l.CompanyID != nil {
			seen[listingKey{*l.CompanyID, l.Title}] = true
		}
	}

	for _, c := range f.Companies {
		companyID, ok := companyIDs[c.Name]
		if ok {
			report.CompaniesSkipped++
			log.Debug("company already exists", slog.String("name", c.Name))
		} else {
			companyID, err = s.companies.Add(ctx, &dto.CreateCompany{
				Name:        c.Name,
				Description: c.Description,
				Website:     c.Website,
				Industry:    c.Industry,
				Location:    c.Location,
			})
			if err != nil {
				return report, fmt.Errorf("failed to create company %q: %w", c.Name, err)
			}
			companyIDs[c.Name] = companyID
			report.CompaniesCreated++
			log.Info("seeded company", slog.String("name", c.Name), slog.Int64("company_id", companyID))
		}

		for _, l := range c.JobListings {
			key := listingKey{companyID, l.Title}
			if seen[key] {
				report.ListingsSkipped++
				continue
			}
			id := companyID
			listingID, err := s.listings.Add(ctx, &dto.CreateJobListing{
				CompanyID:      &id,
				Title:          l.Title,
				Description:    l.Description,
				Location:       l.Location,
				EmploymentType: l.EmploymentType,
			})
			if err != nil {
				return report, fmt.Errorf("failed to create job listing %q for %q: %w", l.Title, c.Name, err)
			}
			seen[key] = true
			report.ListingsCreated++
			log.Debug("seeded job listing",
				slog.String("title", l.Title),
				slog.Int64("job_listing_id", listingID))
		}
	}

	log.Info("seeding complete",
		slog.Int("companies_created", report.CompaniesCreated),
		slog.Int("companies_skipped", report.CompaniesSkipped),
		slog.Int("listings_created", report.ListingsCreated),
		slog.Int("listings_skipped", report.ListingsSkipped))
	return report, nil
}
