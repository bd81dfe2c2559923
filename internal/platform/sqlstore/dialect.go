package sqlstore

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Dialect carries the statement builder configured for one SQL backend.
type Dialect struct {
	name    string
	builder sq.StatementBuilderType
}

// Postgres uses $n placeholders.
var Postgres = Dialect{
	name:    "postgres",
	builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
}

// SQLite uses ? placeholders.
var SQLite = Dialect{
	name:    "sqlite",
	builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
}

// DialectFor returns the dialect matching a configured database driver.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case Postgres.name:
		return Postgres, nil
	case SQLite.name:
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported SQL dialect %q", driver)
	}
}

// Name returns the driver name the dialect was selected by.
func (d Dialect) Name() string {
	return d.name
}
