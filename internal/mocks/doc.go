// Package mocks provides centralized mock implementations for testing.
//
// Store and mapper mocks are built on testify's mock.Mock so tests can assert
// exactly which calls were made and with which arguments. Service mocks use
// function fields, which keeps HTTP handler tests short:
//
//	svc := &mocks.MockJobListingService{
//	    GetByIDFn: func(ctx context.Context, id int64) (*dto.JobListing, error) {
//	        return &dto.JobListing{ID: id}, nil
//	    },
//	}
//
// When adding a new mock to this package, create a file named after the
// interface being mocked.
package mocks
