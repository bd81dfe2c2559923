// Package service contains the application-specific use cases for job
// listings, job applications and companies. It orchestrates interactions
// between the stores (defined in internal/store) and the mapper to fulfil
// CRUD requests from the API layer.
//
// Every service method follows the same pipeline: reject nil payloads,
// resolve id-addressed entities before acting on them, delegate to the store,
// and report any failure as a single *OperationError carrying a
// human-readable message and the original cause. Failures are logged once at
// error level where they are normalized.
package service
