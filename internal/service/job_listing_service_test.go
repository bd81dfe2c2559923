package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/jobsearch-api/internal/domain"
	"github.com/phrazzld/jobsearch-api/internal/dto"
	"github.com/phrazzld/jobsearch-api/internal/mapper"
	"github.com/phrazzld/jobsearch-api/internal/mocks"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newJobListingFixture(t *testing.T) (*mocks.MockJobListingStore, JobListingService, *logger.TestLogBuffer) {
	t.Helper()
	buf, log := logger.NewTestLogger(t)
	listings := &mocks.MockJobListingStore{}
	svc, err := NewJobListingService(listings, mapper.New(), log)
	require.NoError(t, err)
	return listings, svc, buf
}

// requireOperationError asserts err is an *OperationError of the given kind
// and message, and that exactly one error-level entry was logged.
func requireOperationError(
	t *testing.T,
	err error,
	kind Kind,
	message string,
	buf *logger.TestLogBuffer,
) *OperationError {
	t.Helper()
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, kind, opErr.Kind)
	assert.Equal(t, message, opErr.Message)
	assert.Len(t, buf.EntriesAtLevel(t, "ERROR"), 1)
	return opErr
}

func TestNewJobListingService_NilDependencies(t *testing.T) {
	_, err := NewJobListingService(nil, mapper.New(), nil)
	assert.Error(t, err)

	_, err = NewJobListingService(&mocks.MockJobListingStore{}, nil, nil)
	assert.Error(t, err)

	svc, err := NewJobListingService(&mocks.MockJobListingStore{}, mapper.New(), nil)
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJobListingService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns every listing in order", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		listings.On("ListAll", ctx).Return([]*domain.JobListing{
			{ID: 1, Title: "Go Engineer"},
			{ID: 2, Title: "SRE"},
		}, nil).Once()

		out, err := svc.List(ctx)

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, int64(1), out[0].ID)
		assert.Equal(t, "SRE", out[1].Title)
		assert.Empty(t, buf.EntriesAtLevel(t, "ERROR"))
		listings.AssertNumberOfCalls(t, "ListAll", 1)
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		listings, svc, _ := newJobListingFixture(t)
		listings.On("ListAll", ctx).Return([]*domain.JobListing{}, nil)

		out, err := svc.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("returns the mapper output", func(t *testing.T) {
		listings := &mocks.MockJobListingStore{}
		m := &mocks.MockJobListingMapper{}
		_, log := logger.NewTestLogger(t)
		svc, err := NewJobListingService(listings, m, log)
		require.NoError(t, err)

		entities := []*domain.JobListing{{ID: 9}}
		mapped := []dto.JobListing{{ID: 9, Title: "mapped"}}
		listings.On("ListAll", ctx).Return(entities, nil)
		m.On("JobListingsToDTO", entities).Return(mapped)

		out, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, mapped, out)
		m.AssertExpectations(t)
	})

	t.Run("repository failure keeps the exact cause", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		dbErr := errors.New("connection refused")
		listings.On("ListAll", ctx).Return(nil, dbErr)

		out, err := svc.List(ctx)

		assert.Nil(t, out)
		opErr := requireOperationError(t, err, KindRepositoryFailure,
			"An error occurred while retrieving job listings", buf)
		assert.Same(t, dbErr, opErr.Err)
	})

	t.Run("context cancellation surfaces as repository failure", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		listings.On("ListAll", cctx).Return(nil, context.Canceled)

		_, err := svc.List(cctx)

		requireOperationError(t, err, KindRepositoryFailure,
			"An error occurred while retrieving job listings", buf)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestJobListingService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		listings, svc, _ := newJobListingFixture(t)
		listings.On("GetByID", ctx, int64(1)).Return(&domain.JobListing{ID: 1, Title: "Go Engineer"}, nil)

		out, err := svc.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), out.ID)
		assert.Equal(t, "Go Engineer", out.Title)
	})

	t.Run("store not found", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		listings.On("GetByID", ctx, int64(1)).Return(nil, store.ErrJobListingNotFound)

		out, err := svc.GetByID(ctx, 1)

		assert.Nil(t, out)
		opErr := requireOperationError(t, err, KindNotFound,
			"An error occurred while retrieving the job listing", buf)
		var nf *NotFoundError
		require.ErrorAs(t, opErr.Err, &nf)
		assert.Equal(t, "job listing", nf.Resource)
		assert.Equal(t, int64(1), nf.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nil result counts as not found", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		listings.On("GetByID", ctx, int64(7)).Return(nil, nil)

		_, err := svc.GetByID(ctx, 7)

		requireOperationError(t, err, KindNotFound,
			"An error occurred while retrieving the job listing", buf)
	})

	t.Run("repository failure", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		dbErr := errors.New("timeout")
		listings.On("GetByID", ctx, int64(1)).Return(nil, dbErr)

		_, err := svc.GetByID(ctx, 1)

		opErr := requireOperationError(t, err, KindRepositoryFailure,
			"An error occurred while retrieving the job listing", buf)
		assert.Same(t, dbErr, opErr.Err)
	})
}

func TestJobListingService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the id reported by the store", func(t *testing.T) {
		listings := &mocks.MockJobListingStore{}
		m := &mocks.MockJobListingMapper{}
		buf, log := logger.NewTestLogger(t)
		svc, err := NewJobListingService(listings, m, log)
		require.NoError(t, err)

		payload := &dto.CreateJobListing{Title: "Go Engineer"}
		entity := &domain.JobListing{Title: "Go Engineer", EmploymentType: domain.EmploymentFullTime}
		m.On("JobListingFromCreate", payload).Return(entity)
		listings.On("Create", ctx, mock.MatchedBy(func(l *domain.JobListing) bool {
			return l == entity
		})).Return(int64(42), nil).Once()

		id, err := svc.Add(ctx, payload)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		listings.AssertExpectations(t)
		m.AssertExpectations(t)
		assert.Len(t, buf.EntriesAtLevel(t, "INFO"), 1)
	})

	t.Run("nil payload is rejected before the store", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)

		id, err := svc.Add(ctx, nil)

		assert.Zero(t, id)
		opErr := requireOperationError(t, err, KindInvalidInput,
			"An error occurred while creating the job listing", buf)
		assert.ErrorIs(t, opErr.Err, ErrInvalidInput)
		listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		dbErr := errors.New("disk full")
		listings.On("Create", ctx, mock.AnythingOfType("*domain.JobListing")).Return(int64(0), dbErr)

		_, err := svc.Add(ctx, &dto.CreateJobListing{Title: "x"})

		opErr := requireOperationError(t, err, KindRepositoryFailure,
			"An error occurred while creating the job listing", buf)
		assert.Same(t, dbErr, opErr.Err)
	})

	t.Run("store validation error stays a repository failure", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		listings.On("Create", ctx, mock.Anything).Return(int64(0), store.ErrInvalidEntity)

		_, err := svc.Add(ctx, &dto.CreateJobListing{Title: "x"})

		requireOperationError(t, err, KindRepositoryFailure,
			"An error occurred while creating the job listing", buf)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestJobListingService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overlays and persists the fetched entity", func(t *testing.T) {
		listings, svc, _ := newJobListingFixture(t)
		existing := &domain.JobListing{ID: 3, Title: "Old", Location: "Berlin"}
		listings.On("GetByID", ctx, int64(3)).Return(existing, nil)
		listings.On("Update", ctx, mock.MatchedBy(func(l *domain.JobListing) bool {
			return l == existing && l.Title == "New" && l.Location == "Berlin"
		})).Return(nil).Once()

		err := svc.Update(ctx, &dto.UpdateJobListing{ID: 3, Title: ptr("New")})

		require.NoError(t, err)
		listings.AssertExpectations(t)
	})

	t.Run("nil payload", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)

		err := svc.Update(ctx, nil)

		requireOperationError(t, err, KindInvalidInput,
			"An error occurred while updating the job listing", buf)
		listings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		listings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("absent target", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		listings.On("GetByID", ctx, int64(3)).Return(nil, store.ErrJobListingNotFound)

		err := svc.Update(ctx, &dto.UpdateJobListing{ID: 3, Title: ptr("New")})

		requireOperationError(t, err, KindNotFound,
			"An error occurred while updating the job listing", buf)
		listings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("repository failure on update", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		dbErr := errors.New("deadlock")
		listings.On("GetByID", ctx, int64(3)).Return(&domain.JobListing{ID: 3, Title: "Old"}, nil)
		listings.On("Update", ctx, mock.Anything).Return(dbErr)

		err := svc.Update(ctx, &dto.UpdateJobListing{ID: 3})

		opErr := requireOperationError(t, err, KindRepositoryFailure,
			"An error occurred while updating the job listing", buf)
		assert.Same(t, dbErr, opErr.Err)
	})
}

func TestJobListingService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("existing listing is deleted once", func(t *testing.T) {
		listings, svc, _ := newJobListingFixture(t)
		listings.On("GetByID", ctx, int64(1)).Return(&domain.JobListing{ID: 1, Title: "x"}, nil)
		listings.On("Delete", ctx, int64(1)).Return(nil).Once()

		require.NoError(t, svc.Delete(ctx, 1))
		listings.AssertNumberOfCalls(t, "Delete", 1)
	})

	t.Run("absent listing", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		listings.On("GetByID", ctx, int64(1)).Return(nil, store.ErrJobListingNotFound)

		err := svc.Delete(ctx, 1)

		requireOperationError(t, err, KindNotFound,
			"An error occurred while deleting the job listing", buf)
		listings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("repository failure on delete", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		dbErr := errors.New("constraint")
		listings.On("GetByID", ctx, int64(1)).Return(&domain.JobListing{ID: 1}, nil)
		listings.On("Delete", ctx, int64(1)).Return(dbErr)

		err := svc.Delete(ctx, 1)

		opErr := requireOperationError(t, err, KindRepositoryFailure,
			"An error occurred while deleting the job listing", buf)
		assert.Same(t, dbErr, opErr.Err)
	})
}

func TestJobListingService_UsesRequestLogger(t *testing.T) {
	listings, svc, serviceBuf := newJobListingFixture(t)
	requestBuf, requestLog := logger.NewTestLogger(t)
	ctx := logger.WithLogger(context.Background(), requestLog.With("trace_id", "abc"))
	listings.On("ListAll", ctx).Return(nil, errors.New("boom"))

	_, err := svc.List(ctx)

	require.Error(t, err)
	assert.Empty(t, serviceBuf.String())
	entries := requestBuf.EntriesAtLevel(t, "ERROR")
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["trace_id"])
	assert.Equal(t, "boom", entries[0]["error"])
}

func TestJobListingService_RowRemovedBeforeWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("update", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		listings.On("GetByID", ctx, int64(3)).Return(&domain.JobListing{ID: 3, Title: "Old"}, nil)
		listings.On("Update", ctx, mock.Anything).Return(store.ErrJobListingNotFound)

		err := svc.Update(ctx, &dto.UpdateJobListing{ID: 3, Title: ptr("New")})

		opErr := requireOperationError(t, err, KindNotFound,
			"An error occurred while updating the job listing", buf)
		assert.Same(t, store.ErrJobListingNotFound, opErr.Err)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		listings, svc, buf := newJobListingFixture(t)
		listings.On("GetByID", ctx, int64(3)).Return(&domain.JobListing{ID: 3}, nil)
		listings.On("Delete", ctx, int64(3)).Return(store.ErrJobListingNotFound)

		err := svc.Delete(ctx, 3)

		opErr := requireOperationError(t, err, KindNotFound,
			"An error occurred while deleting the job listing", buf)
		assert.Same(t, store.ErrJobListingNotFound, opErr.Err)
	})
}

func TestJobListingService_UpdateClearsCompany(t *testing.T) {
	ctx := context.Background()
	listings, svc, _ := newJobListingFixture(t)
	existing := &domain.JobListing{ID: 3, Title: "Old", CompanyID: ptr(int64(9))}
	listings.On("GetByID", ctx, int64(3)).Return(existing, nil)
	listings.On("Update", ctx, mock.MatchedBy(func(l *domain.JobListing) bool {
		return l == existing && l.CompanyID == nil && l.Title == "Old"
	})).Return(nil).Once()

	require.NoError(t, svc.Update(ctx, &dto.UpdateJobListing{ID: 3, ClearCompany: true}))
	listings.AssertExpectations(t)
}
