// Package store defines interfaces for data persistence operations on job
// listings, job applications and companies, together with the sentinel
// errors every implementation reports. Implementations live under
// internal/platform.
package store
