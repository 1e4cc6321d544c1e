package store

import (
	"errors"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists in the
	// database.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecordNotFound is returned when an owner-scoped lookup, update, or
	// delete matches no row. A record that exists but belongs to a different
	// owner is deliberately indistinguishable from one that does not exist,
	// so cross-owner probing cannot reveal record existence.
	ErrRecordNotFound = errors.New("record not found or unauthorized")

	// ErrNothingCreated is returned when an INSERT completes without a
	// driver error but produces no returned row, indicating that no record
	// was actually persisted.
	ErrNothingCreated = errors.New("record was not created")

	// ErrNoFieldsToUpdate is returned when a partial update carries no
	// fields at all; the stored record is left untouched.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrCategoryNotEmpty is returned when a bookmark category cannot be
	// deleted because bookmarks still reference it.
	ErrCategoryNotEmpty = errors.New("category still has bookmarks")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
