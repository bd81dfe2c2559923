package sqlstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/store"
	"github.com/phrazzld/jobsearch-api/internal/testdb"
)

func TestJobApplicationStore_CRUD(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	listings := NewJobListingStore(db, SQLite, nil)
	apps := NewJobApplicationStore(db, SQLite, nil)

	listingID := mustCreateListing(t, listings, nil, "Backend Engineer")

	app := &domain.JobApplication{
		JobListingID:   listingID,
		ApplicantName:  "Ada Lovelace",
		ApplicantEmail: "ada@example.com",
		ResumeURL:      "https://example.com/ada.pdf",
	}
	id, err := apps.Create(ctx, app)
	require.NoError(t, err)
	assert.Equal(t, id, app.ID)
	assert.Equal(t, domain.ApplicationSubmitted, app.Status)

	got, err := apps.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, listingID, got.JobListingID)
	assert.Equal(t, "ada@example.com", got.ApplicantEmail)
	assert.Equal(t, "https://example.com/ada.pdf", got.ResumeURL)

	got.Status = domain.ApplicationInterviewing
	got.CoverLetter = "Hello"
	require.NoError(t, apps.Update(ctx, got))

	updated, err := apps.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationInterviewing, updated.Status)
	assert.Equal(t, "Hello", updated.CoverLetter)

	require.NoError(t, apps.Delete(ctx, id))
	_, err = apps.GetByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrJobApplicationNotFound)

	err = apps.Delete(ctx, id)
	assert.ErrorIs(t, err, store.ErrJobApplicationNotFound)
}

func TestJobApplicationStore_ListByJobListingID(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	listings := NewJobListingStore(db, SQLite, nil)
	apps := NewJobApplicationStore(db, SQLite, nil)

	first := mustCreateListing(t, listings, nil, "First")
	second := mustCreateListing(t, listings, nil, "Second")
	a := mustCreateApplication(t, apps, first, "Ann")
	mustCreateApplication(t, apps, second, "Bob")
	c := mustCreateApplication(t, apps, first, "Cid")

	forFirst, err := apps.ListByJobListingID(ctx, first)
	require.NoError(t, err)
	require.Len(t, forFirst, 2)
	assert.Equal(t, a, forFirst[0].ID)
	assert.Equal(t, c, forFirst[1].ID)

	none, err := apps.ListByJobListingID(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, err := apps.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestJobApplicationStore_InvalidEntity(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	apps := NewJobApplicationStore(db, SQLite, nil)

	_, err := apps.Create(ctx, &domain.JobApplication{
		JobListingID:   1,
		ApplicantName:  "Ada",
		ApplicantEmail: "not-an-email",
	})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	_, err = apps.Create(ctx, &domain.JobApplication{
		JobListingID:   404,
		ApplicantName:  "Ada",
		ApplicantEmail: "ada@example.com",
	})
	assert.ErrorIs(t, err, store.ErrInvalidEntity, "unknown listing must violate the foreign key")
}

func TestJobApplicationStore_InTransaction(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	listingID := mustCreateListing(t, NewJobListingStore(db, SQLite, nil), nil, "Tx")

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txApps := NewJobApplicationStore(tx, SQLite, nil)
		if _, err := txApps.Create(ctx, &domain.JobApplication{
			JobListingID:   listingID,
			ApplicantName:  "Rolled Back",
			ApplicantEmail: "rb@example.com",
		}); err != nil {
			return err
		}
		return store.ErrDuplicate
	})
	require.ErrorIs(t, err, store.ErrDuplicate)

	all, err := NewJobApplicationStore(db, SQLite, nil).ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestJobApplicationStore_WithTransaction(t *testing.T) {
	db := setupSQLite(t)
	listingID := mustCreateListing(t, NewJobListingStore(db, SQLite, nil), nil, "Support Engineer")

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		apps := NewJobApplicationStore(tx, SQLite, nil)
		mustCreateApplication(t, apps, listingID, "Samir")

		got, err := apps.ListByJobListingID(context.Background(), listingID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	got, err := NewJobApplicationStore(db, SQLite, nil).ListByJobListingID(context.Background(), listingID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
