package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a lookup or a single-row mutation matches
// no row.
var ErrNotFound = errors.New("not found")

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
