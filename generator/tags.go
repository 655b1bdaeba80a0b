package generator

import (
	"context"
	"slices"

	"github.com/speakeasy-api/openapi-gen/internal/ctxlog"
	"github.com/speakeasy-api/openapi-gen/metadata"
	"github.com/speakeasy-api/openapi/jsonschema/oas3"
	"github.com/speakeasy-api/openapi/openapi"
	"github.com/speakeasy-api/openapi/pointer"
)

// OperationTagsProcessor applies the tag declarations of a handler method to its operation.
//
// The names of the method's multi-tag declaration are applied first, followed by its single-tag
// declarations in metadata order; names already on the operation are skipped. Declarations with
// AddToDocument set are also registered with the document. An operation left without tags is
// tagged with the name of its declaring type.
type OperationTagsProcessor struct{}

var _ OperationProcessor = OperationTagsProcessor{}

// Process resolves the operation's tags and always keeps the operation.
func (OperationTagsProcessor) Process(ctx context.Context, doc *Document, opCtx *OperationContext) (bool, error) {
	method := opCtx.Method
	op := opCtx.Operation

	multi, singles, err := metadata.ReadTags(method)
	if err != nil {
		return false, err
	}

	if multi != nil {
		for _, name := range multi.Names {
			addOperationTag(op, name)

			if multi.AddToDocument {
				doc.Tags.Ensure(&openapi.Tag{Name: name})
			}
		}
	}

	for _, single := range singles {
		addOperationTag(op, single.Name)

		if single.AddToDocument {
			doc.Tags.Ensure(NewTag(single))
		}
	}

	if len(op.Tags) == 0 {
		op.Tags = append(op.Tags, method.DeclaringType)
		doc.metrics.fallbackTagApplied()

		ctxlog.FromContext(ctx).Debug("no tags declared, using declaring type",
			"type", method.DeclaringType,
			"method", method.Name,
		)
	}

	return true, nil
}

func addOperationTag(op *openapi.Operation, name string) {
	if slices.Contains(op.Tags, name) {
		return
	}
	op.Tags = append(op.Tags, name)
}

// NewTag converts a single-tag declaration to a document tag.
func NewTag(decl metadata.SingleTag) *openapi.Tag {
	tag := &openapi.Tag{Name: decl.Name}

	if decl.Description != "" {
		tag.Description = pointer.From(decl.Description)
	}

	if decl.ExternalDocs != nil && decl.ExternalDocs.URL != "" {
		tag.ExternalDocs = &oas3.ExternalDocumentation{URL: decl.ExternalDocs.URL}
		if decl.ExternalDocs.Description != "" {
			tag.ExternalDocs.Description = pointer.From(decl.ExternalDocs.Description)
		}
	}

	return tag
}
