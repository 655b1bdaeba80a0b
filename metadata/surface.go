package metadata

import (
	"context"
	"iter"
)

// Source provides the API surface to generate a document from.
type Source interface {
	Load(ctx context.Context) (*Surface, error)
}

// Surface is the ordered set of controller types a Source exposes.
type Surface struct {
	Types []*Type
}

// Type is a controller type owning one or more handler methods.
type Type struct {
	// Name is the declaring type name, used as the fallback tag of its methods.
	Name string
	// Tags are type-level tag declarations. Those with AddToDocument set are registered with the document.
	Tags []SingleTag
	// Methods are the handler methods exposed as operations, in declaration order.
	Methods []*Method
}

// Method is a handler method exposed as a single API operation.
type Method struct {
	// DeclaringType is the name of the type the method is declared on.
	DeclaringType string
	// Name is the name of the handler method.
	Name string

	// HTTPMethod is the HTTP method the operation is served under, e.g. "get".
	HTTPMethod string
	// Path is the templated route of the operation, e.g. "/pets/{id}".
	Path string

	OperationID string
	Summary     string
	Description string
	Deprecated  bool
	Responses   []Response

	// Declarations are the tag declarations attached to the method, in metadata order.
	Declarations []Declaration
}

// Response is a documented response of an operation.
type Response struct {
	Status      string
	Description string
}

// Methods iterates over every method of every type, in surface order.
func (s *Surface) Methods() iter.Seq[*Method] {
	return func(yield func(*Method) bool) {
		if s == nil {
			return
		}
		for _, t := range s.Types {
			for _, m := range t.Methods {
				if !yield(m) {
					return
				}
			}
		}
	}
}

// Len returns the number of methods across all types. nil safe.
func (s *Surface) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, t := range s.Types {
		n += len(t.Methods)
	}
	return n
}
