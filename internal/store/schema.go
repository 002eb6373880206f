// Package store exports benchmark runs into a DuckDB file for ad-hoc SQL
// analysis. It is an analysis artifact only: the oracle itself never reads
// from it.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
)

// schemaDDL holds the DuckDB schema definition.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the schema DDL used for initializing export databases.
func SchemaDDL() string {
	return schemaDDL
}

// EnsureSchema applies the schema DDL to the provided database connection.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("store: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}
