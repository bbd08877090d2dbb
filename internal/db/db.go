package db

import "database/sql"

// DB wraps the shared *sql.DB so packages depend on this type
// instead of database/sql directly.
type DB struct {
	*sql.DB
}
