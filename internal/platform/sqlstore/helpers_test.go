package sqlstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/testdb"
)

// setupSQLite returns a migrated in-memory SQLite database.
func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()
	return testdb.OpenSQLite(t)
}

func mustCreateCompany(t *testing.T, s *CompanyStore, name string) int64 {
	t.Helper()
	id, err := s.Create(context.Background(), &domain.Company{Name: name})
	require.NoError(t, err)
	return id
}

func mustCreateListing(t *testing.T, s *JobListingStore, companyID *int64, title string) int64 {
	t.Helper()
	id, err := s.Create(context.Background(), &domain.JobListing{
		CompanyID: companyID,
		Title:     title,
	})
	require.NoError(t, err)
	return id
}

func mustCreateApplication(t *testing.T, s *JobApplicationStore, listingID int64, name string) int64 {
	t.Helper()
	id, err := s.Create(context.Background(), &domain.JobApplication{
		JobListingID:   listingID,
		ApplicantName:  name,
		ApplicantEmail: "applicant@example.com",
	})
	require.NoError(t, err)
	return id
}
