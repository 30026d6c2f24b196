// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrInvalidID indicates a malformed object id supplied by the caller.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrUserNotFound indicates no user document matched.
	ErrUserNotFound = errors.New("user not found")

	// ErrCategoryNotFound indicates the user/category filter matched nothing.
	// The match count cannot tell a missing user from a missing category,
	// so both collapse into this one.
	ErrCategoryNotFound = errors.New("user or category not found")

	// ErrItemNotFound indicates the targeted item was not removed.
	ErrItemNotFound = errors.New("no items were found")

	// ErrNotModified indicates the write matched but changed nothing.
	ErrNotModified = errors.New("not modified")

	// ErrAlreadyExists indicates a uniqueness violation (username or email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStoreUnavailable indicates the document store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)
