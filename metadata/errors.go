package metadata

import "github.com/speakeasy-api/openapi/errors"

const (
	// ErrMultipleMultiTags is returned when a method carries more than one MultiTag declaration.
	ErrMultipleMultiTags errors.Error = "method has more than one multi-tag declaration"
	// ErrHandlerNotFound is returned when a route names a method its controller does not have.
	ErrHandlerNotFound errors.Error = "handler method not found"
	// ErrInvalidRoute is returned when a route is missing required information.
	ErrInvalidRoute errors.Error = "invalid route"
	// ErrUnnamedController is returned for controllers of anonymous types.
	ErrUnnamedController errors.Error = "controller type has no name"
)
