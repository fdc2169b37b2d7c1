package birds

import "errors"

var (
	// ErrInvalidInput is returned for requests rejected before reaching the catalog.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable wraps every catalog failure, including timeouts.
	ErrStoreUnavailable = errors.New("bird catalog unavailable")
)
