// Package database opens the SQL connection pool for the configured driver
// and applies the embedded schema migrations with goose.
//
// Two drivers are supported: "postgres" (through the pgx stdlib adapter) and
// "sqlite" (through modernc.org/sqlite). Each has its own migration directory
// under migrations/ since the DDL differs between the two.
package database
