package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/jobsearch-api/internal/store"
)

// Sentinel errors that callers can match with errors.Is on any error
// returned by a service.
var (
	// ErrInvalidInput is the cause category for rejected arguments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is the cause category for an id that does not resolve to an entity.
	ErrNotFound = errors.New("resource not found")

	// ErrNilPayload is returned (wrapped in an OperationError) when a create
	// or update payload is nil.
	ErrNilPayload = fmt.Errorf("%w: payload cannot be nil", ErrInvalidInput)
)

// Kind classifies the cause of an OperationError.
type Kind int

// Error kinds reported by the services.
const (
	KindRepositoryFailure Kind = iota
	KindInvalidInput
	KindNotFound
)

// String returns the kind's log and wire name.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	default:
		return "repository_failure"
	}
}

// Operation names a CRUD verb.
type Operation string

// Supported operations.
const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpAdd    Operation = "add"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// NotFoundError reports that no entity of Resource exists with ID.
// Err holds the store error that signalled the absence, if any.
type NotFoundError struct {
	Resource string
	ID       int64
	Err      error
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Unwrap returns the store error behind the absence.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// OperationError is the single error type returned by every service method.
// Message is safe to show to API clients; Err is the original cause.
type OperationError struct {
	Resource string
	Op       Operation
	Kind     Kind
	Message  string
	Err      error
}

// Error implements the error interface for OperationError.
func (e *OperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %s: %v", e.Resource, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed: %s", e.Resource, e.Op, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err. Errors that did not come from a service
// are classified from their cause chain.
func KindOf(err error) Kind {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return classify(err)
}

// classify treats a store not-found as NotFound too, so a row removed
// between resolve and the write is still reported as absent.
func classify(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrNotFound), store.IsNotFoundError(err):
		return KindNotFound
	default:
		return KindRepositoryFailure
	}
}

// resource carries the names used in messages for one entity family.
type resource struct {
	singular string
	plural   string
}

var (
	jobListingResource     = resource{singular: "job listing", plural: "job listings"}
	jobApplicationResource = resource{singular: "job application", plural: "job applications"}
	companyResource        = resource{singular: "company", plural: "companies"}
)

// message returns the client-facing message for a failed op.
func (r resource) message(op Operation) string {
	switch op {
	case OpList:
		return "An error occurred while retrieving " + r.plural
	case OpGet:
		return "An error occurred while retrieving the " + r.singular
	case OpAdd:
		return "An error occurred while creating the " + r.singular
	case OpUpdate:
		return "An error occurred while updating the " + r.singular
	case OpDelete:
		return "An error occurred while deleting the " + r.singular
	default:
		return "An error occurred while processing the " + r.singular
	}
}

// fail logs err once at error level and wraps it for the caller.
func fail(log *slog.Logger, res resource, op Operation, err error, attrs ...any) error {
	opErr := &OperationError{
		Resource: res.singular,
		Op:       op,
		Kind:     classify(err),
		Message:  res.message(op),
		Err:      err,
	}

	args := append([]any{
		slog.String("error", err.Error()),
		slog.String("operation", string(op)),
		slog.String("kind", opErr.Kind.String()),
	}, attrs...)
	log.Error(fmt.Sprintf("failed to %s %s", op, res.singular), args...)

	return opErr
}

// resolve fetches the entity with id, reporting both a store not-found error
// and a nil result as a *NotFoundError. Other errors pass through unchanged.
func resolve[T any](
	ctx context.Context,
	res resource,
	id int64,
	get func(context.Context, int64) (*T, error),
) (*T, error) {
	entity, err := get(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, &NotFoundError{Resource: res.singular, ID: id, Err: err}
		}
		return nil, err
	}
	if entity == nil {
		return nil, &NotFoundError{Resource: res.singular, ID: id}
	}
	return entity, nil
}

func errNilDependency(name string) error {
	return fmt.Errorf("%s cannot be nil", name)
}
