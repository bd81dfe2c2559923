// Package mapper converts between domain entities and transfer objects with
// explicit field copies. Update overlays write only the fields a payload
// carries, leaving the rest of the target untouched.
package mapper

import (
	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/dto"
)

// Mapper implements the mapping contracts used by the services.
// The zero value is ready to use.
type Mapper struct{}

// New returns a Mapper.
func New() *Mapper {
	return &Mapper{}
}

// JobListingToDTO converts a job listing entity to its read shape.
func (Mapper) JobListingToDTO(l *domain.JobListing) dto.JobListing {
	return dto.JobListing{
		ID:             l.ID,
		CompanyID:      copyInt64(l.CompanyID),
		Title:          l.Title,
		Description:    l.Description,
		Location:       l.Location,
		EmploymentType: string(l.EmploymentType),
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// JobListingsToDTO converts a slice of job listings, preserving order.
func (m Mapper) JobListingsToDTO(listings []*domain.JobListing) []dto.JobListing {
	out := make([]dto.JobListing, 0, len(listings))
	for _, l := range listings {
		out = append(out, m.JobListingToDTO(l))
	}
	return out
}

// JobListingFromCreate builds a new, unsaved job listing from a create payload.
func (Mapper) JobListingFromCreate(p *dto.CreateJobListing) *domain.JobListing {
	employmentType := domain.EmploymentType(p.EmploymentType)
	if employmentType == "" {
		employmentType = domain.EmploymentFullTime
	}
	return &domain.JobListing{
		CompanyID:      copyInt64(p.CompanyID),
		Title:          p.Title,
		Description:    p.Description,
		Location:       p.Location,
		EmploymentType: employmentType,
	}
}

// OverlayJobListing copies the carried fields of p onto l.
func (Mapper) OverlayJobListing(p *dto.UpdateJobListing, l *domain.JobListing) {
	switch {
	case p.ClearCompany:
		l.CompanyID = nil
	case p.CompanyID != nil:
		l.CompanyID = copyInt64(p.CompanyID)
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.EmploymentType != nil {
		l.EmploymentType = domain.EmploymentType(*p.EmploymentType)
	}
}

// JobApplicationToDTO converts a job application entity to its read shape.
func (Mapper) JobApplicationToDTO(a *domain.JobApplication) dto.JobApplication {
	return dto.JobApplication{
		ID:             a.ID,
		JobListingID:   a.JobListingID,
		ApplicantName:  a.ApplicantName,
		ApplicantEmail: a.ApplicantEmail,
		ResumeURL:      a.ResumeURL,
		CoverLetter:    a.CoverLetter,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// JobApplicationsToDTO converts a slice of job applications, preserving order.
func (m Mapper) JobApplicationsToDTO(apps []*domain.JobApplication) []dto.JobApplication {
	out := make([]dto.JobApplication, 0, len(apps))
	for _, a := range apps {
		out = append(out, m.JobApplicationToDTO(a))
	}
	return out
}

// JobApplicationFromCreate builds a new, unsaved job application in the submitted state.
func (Mapper) JobApplicationFromCreate(p *dto.CreateJobApplication) *domain.JobApplication {
	return &domain.JobApplication{
		JobListingID:   p.JobListingID,
		ApplicantName:  p.ApplicantName,
		ApplicantEmail: p.ApplicantEmail,
		ResumeURL:      p.ResumeURL,
		CoverLetter:    p.CoverLetter,
		Status:         domain.ApplicationSubmitted,
	}
}

// OverlayJobApplication copies the carried fields of p onto a.
func (Mapper) OverlayJobApplication(p *dto.UpdateJobApplication, a *domain.JobApplication) {
	if p.JobListingID != nil {
		a.JobListingID = *p.JobListingID
	}
	if p.ApplicantName != nil {
		a.ApplicantName = *p.ApplicantName
	}
	if p.ApplicantEmail != nil {
		a.ApplicantEmail = *p.ApplicantEmail
	}
	if p.ResumeURL != nil {
		a.ResumeURL = *p.ResumeURL
	}
	if p.CoverLetter != nil {
		a.CoverLetter = *p.CoverLetter
	}
	if p.Status != nil {
		a.Status = domain.ApplicationStatus(*p.Status)
	}
}

// CompanyToDTO converts a company entity to its read shape.
func (Mapper) CompanyToDTO(c *domain.Company) dto.Company {
	return dto.Company{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Industry:    c.Industry,
		Location:    c.Location,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CompaniesToDTO converts a slice of companies, preserving order.
func (m Mapper) CompaniesToDTO(companies []*domain.Company) []dto.Company {
	out := make([]dto.Company, 0, len(companies))
	for _, c := range companies {
		out = append(out, m.CompanyToDTO(c))
	}
	return out
}

// CompanyFromCreate builds a new, unsaved company from a create payload.
func (Mapper) CompanyFromCreate(p *dto.CreateCompany) *domain.Company {
	return &domain.Company{
		Name:        p.Name,
		Description: p.Description,
		Website:     p.Website,
		Industry:    p.Industry,
		Location:    p.Location,
	}
}

// OverlayCompany copies the carried fields of p onto c.
func (Mapper) OverlayCompany(p *dto.UpdateCompany, c *domain.Company) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
}

// copyInt64 detaches optional ids so entities and DTOs never share storage.
func copyInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
