// Copyright (c) 2026 İhsan At Ekipmanları <destek@ihsan.tack>
// All rights reserved. See LICENSE for details.

// Package store provides database access for all catalog entities. Each
// store struct wraps a *sql.DB and exposes one typed method per documented
// query; no queries are composed dynamically.
//
// During initial deployment the schema may not exist yet (migrations still
// pending). Reads in that window fail with a Postgres undefined-table error;
// IsNotReady lets callers detect that condition and substitute an explicit
// empty default instead of failing the request.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes that indicate the schema is not initialized.
const (
	codeUndefinedTable  = "42P01"
	codeInvalidCatalog  = "3D000"
	codeUndefinedColumn = "42703"
)

// IsNotReady reports whether err results from querying a schema that has
// not been migrated yet.
func IsNotReady(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case codeUndefinedTable, codeInvalidCatalog, codeUndefinedColumn:
		return true
	}
	return false
}

// OrEmpty substitutes the empty sequence when the schema is not ready.
// Any other error passes through. Callers use it to make the degradation
// policy visible at the call site:
//
//	categories, err := store.OrEmpty(s.ListActive(6))
func OrEmpty[T any](items []T, err error) ([]T, error) {
	if err != nil && IsNotReady(err) {
		return nil, nil
	}
	return items, err
}
