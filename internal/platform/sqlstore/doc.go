// Package sqlstore provides the database/sql implementations of the store
// interfaces defined in internal/store. Queries are built with squirrel so
// the same store code runs against PostgreSQL and SQLite; the Dialect picks
// the placeholder style. Driver errors are translated into store sentinels
// by MapError before they leave the package.
package sqlstore
