package catalog

import "errors"

// ErrInvalidReference is returned when an operation names an album that was
// never added to the catalog.
var ErrInvalidReference = errors.New("invalid album name")
