package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
)

const (
	uniqueViolation           = "23505"
	noDataFound               = "P0002"
	invalidTextRepresentation = "22P02"
)

// IsUniqueViolation reports whether err is a postgres unique constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsNoDataFound reports whether err was raised by a function with ERRCODE P0002
func IsNoDataFound(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == noDataFound
}

// IsInvalidTextRepresentation reports whether postgres rejected a value for its
// column type, such as a malformed uuid
func IsInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}

// ExpectAffected returns onZero when result touched no rows
func ExpectAffected(result sql.Result, onZero error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return onZero
	}
	return nil
}
