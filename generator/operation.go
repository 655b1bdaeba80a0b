package generator

import (
	"context"
	"strings"

	"github.com/speakeasy-api/openapi-gen/metadata"
	"github.com/speakeasy-api/openapi/openapi"
	"github.com/speakeasy-api/openapi/pointer"
	"github.com/speakeasy-api/openapi/sequencedmap"
)

// DefaultResponseDescription describes the response added to operations that document none.
const DefaultResponseDescription = "Default response"

// OperationInfoProcessor copies the descriptive fields of a method onto its operation:
// operation ID, summary, description, deprecation and responses.
type OperationInfoProcessor struct{}

var _ OperationProcessor = OperationInfoProcessor{}

// Process fills the operation from its method metadata. It never excludes an operation.
func (OperationInfoProcessor) Process(_ context.Context, _ *Document, opCtx *OperationContext) (bool, error) {
	method := opCtx.Method
	op := opCtx.Operation

	operationID := method.OperationID
	if operationID == "" {
		operationID = DefaultOperationID(method)
	}
	op.OperationID = pointer.From(operationID)

	if method.Summary != "" {
		op.Summary = pointer.From(method.Summary)
	}
	if method.Description != "" {
		op.Description = pointer.From(method.Description)
	}
	if method.Deprecated {
		op.Deprecated = pointer.From(true)
	}

	if op.Responses.Len() == 0 && op.Responses.Default == nil {
		if len(method.Responses) == 0 {
			op.Responses.Default = newResponse(DefaultResponseDescription)
		}

		if op.Responses.Map == nil {
			op.Responses.Map = sequencedmap.New[string, *openapi.ReferencedResponse]()
		}
		for _, r := range method.Responses {
			if r.Status == "default" {
				op.Responses.Default = newResponse(r.Description)
				continue
			}
			op.Responses.Set(r.Status, newResponse(r.Description))
		}
	}

	return true, nil
}

// DefaultOperationID returns the operation ID used for methods that don't declare one:
// the declaring type name without its "Controller" suffix, an underscore, then the method name.
func DefaultOperationID(m *metadata.Method) string {
	prefix := strings.TrimSuffix(m.DeclaringType, "Controller")
	if prefix == "" {
		prefix = m.DeclaringType
	}
	return prefix + "_" + m.Name
}

func newResponse(description string) *openapi.ReferencedResponse {
	return &openapi.ReferencedResponse{
		Object: &openapi.Response{Description: description},
	}
}
