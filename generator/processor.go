package generator

import (
	"context"

	"github.com/speakeasy-api/openapi-gen/metadata"
	"github.com/speakeasy-api/openapi/openapi"
)

// Document is the document under construction, handed to every processor.
// Processors register document-level tags through Tags rather than writing OpenAPI.Tags directly,
// as operations may be processed concurrently.
type Document struct {
	OpenAPI *openapi.OpenAPI
	Tags    *TagRegistry

	metrics *Metrics
}

// NewDocument wraps api for use by processors.
func NewDocument(api *openapi.OpenAPI) *Document {
	return newDocument(api, nil)
}

func newDocument(api *openapi.OpenAPI, metrics *Metrics) *Document {
	tags := NewTagRegistry(api)
	tags.metrics = metrics

	return &Document{
		OpenAPI: api,
		Tags:    tags,
		metrics: metrics,
	}
}

// OperationContext is the operation being built for a single handler method.
type OperationContext struct {
	Method    *metadata.Method
	Operation *openapi.Operation
}

// OperationProcessor populates an operation from its method metadata.
// Returning false excludes the operation from the document.
type OperationProcessor interface {
	Process(ctx context.Context, doc *Document, opCtx *OperationContext) (bool, error)
}

// OperationProcessorFunc adapts a function to an OperationProcessor.
type OperationProcessorFunc func(ctx context.Context, doc *Document, opCtx *OperationContext) (bool, error)

// Process calls f.
func (f OperationProcessorFunc) Process(ctx context.Context, doc *Document, opCtx *OperationContext) (bool, error) {
	return f(ctx, doc, opCtx)
}

// DocumentProcessor populates document-level information from the whole API surface.
// Document processors run before any operation is processed.
type DocumentProcessor interface {
	Process(ctx context.Context, doc *Document, surface *metadata.Surface) error
}

// DefaultOperationProcessors returns the operation processors used when none are configured.
func DefaultOperationProcessors() []OperationProcessor {
	return []OperationProcessor{
		OperationInfoProcessor{},
		OperationTagsProcessor{},
	}
}

// DefaultDocumentProcessors returns the document processors used when none are configured.
func DefaultDocumentProcessors() []DocumentProcessor {
	return []DocumentProcessor{
		DocumentTagsProcessor{},
	}
}
