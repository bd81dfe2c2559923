// Package testdb provides database helpers for tests.
//
// OpenSQLite returns a migrated in-memory database and never skips.
// OpenPostgres connects to the database named by DATABASE_URL or
// JOBSEARCH_TEST_DB_URL, migrates it up and rolls every migration back
// when the test finishes. Outside CI it skips when no URL is set; in CI a
// missing URL fails the test so a misconfigured pipeline is visible.
//
// WithTx runs a test body inside a transaction that is always rolled back.
package testdb
