package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrContactNotSaved is returned when an INSERT of one or more contacts
	// completes without error but the number of affected rows is zero,
	// indicating that no data was actually persisted.
	ErrContactNotSaved = errors.New("contact was not saved")

	// ErrContactNotFound is returned when a query or update targets a contact
	// (identified by client_side_id and user_id) that does not exist in the
	// database.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrContactAlreadyExists is returned when an upload collides with a
	// record that is already stored under the same client_side_id.
	ErrContactAlreadyExists = errors.New("contact already exists")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the client does not match the current version
	// stored in the database, meaning another device has modified the record
	// since the client last synchronized.
	ErrVersionConflict = errors.New("contact version conflict occurred")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
