// Package domain defines the job search entities (companies, job listings and
// job applications) and their validation rules. It has no dependencies on
// storage or transport.
package domain
