package errs

import "errors"

// Not-found sentinels shared by commands and queries so callers can match
// either layer with one errors.Is.
var (
	ErrBookNotFound     = errors.New("book not found")
	ErrRouteNotFound    = errors.New("route not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
)
