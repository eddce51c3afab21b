package db

import "database/sql"

// DB wraps the standard sql.DB so internal packages depend on a
// single local type instead of database/sql directly.
type DB struct {
	*sql.DB
}
