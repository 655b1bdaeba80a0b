package generator

import "github.com/speakeasy-api/openapi/errors"

const (
	// ErrLoadSurface is returned when the metadata source fails to load the API surface.
	ErrLoadSurface errors.Error = "failed to load API surface"
	// ErrInvalidHTTPMethod is returned for methods served under an HTTP method OpenAPI can't describe.
	ErrInvalidHTTPMethod errors.Error = "invalid HTTP method"
	// ErrDuplicateOperation is returned when two methods are served under the same path and HTTP method.
	ErrDuplicateOperation errors.Error = "duplicate operation"
	// ErrProcessOperation is returned when an operation processor fails.
	ErrProcessOperation errors.Error = "failed to process operation"
)
