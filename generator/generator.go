// Package generator builds OpenAPI documents from the API surface exposed by a metadata.Source.
//
// Generation runs document processors over the whole surface, then operation processors over each
// handler method, and finally attaches the included operations to the document's paths in surface
// order. The default processors populate operation info and resolve operation tags.
package generator

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/openapi-gen/internal/ctxlog"
	"github.com/speakeasy-api/openapi-gen/metadata"
	"github.com/speakeasy-api/openapi/openapi"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("github.com/speakeasy-api/openapi-gen/generator")

// Generator builds OpenAPI documents. A Generator is safe to reuse across calls to Generate.
type Generator struct {
	info                openapi.Info
	documentProcessors  []DocumentProcessor
	operationProcessors []OperationProcessor
	concurrency         int
	metrics             *Metrics
}

// New returns a Generator using the default processors, configured by opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		info: openapi.Info{
			Title:   "API",
			Version: "1.0.0",
		},
		documentProcessors:  DefaultDocumentProcessors(),
		operationProcessors: DefaultOperationProcessors(),
		concurrency:         1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate loads the API surface from source and builds a document describing it.
func (g *Generator) Generate(ctx context.Context, source metadata.Source) (*openapi.OpenAPI, error) {
	ctx, span := tracer.Start(ctx, "openapi-gen.generate")
	defer span.End()

	api, err := g.generate(ctx, source)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("openapi.paths", api.Paths.Len()),
		attribute.Int("openapi.tags", len(api.Tags)),
	)
	return api, nil
}

func (g *Generator) generate(ctx context.Context, source metadata.Source) (*openapi.OpenAPI, error) {
	logger := ctxlog.FromContext(ctx)

	surface, err := source.Load(ctx)
	if err != nil {
		return nil, ErrLoadSurface.Wrap(err)
	}

	api := &openapi.OpenAPI{
		OpenAPI: openapi.Version,
		Info:    g.info,
		Paths:   openapi.NewPaths(),
	}
	doc := newDocument(api, g.metrics)

	for _, p := range g.documentProcessors {
		if err := p.Process(ctx, doc, surface); err != nil {
			return nil, err
		}
	}

	opCtxs := make([]*OperationContext, 0, surface.Len())
	for m := range surface.Methods() {
		if !openapi.IsStandardMethod(m.HTTPMethod) {
			return nil, ErrInvalidHTTPMethod.Wrap(fmt.Errorf("%s.%s: %q", m.DeclaringType, m.Name, m.HTTPMethod))
		}
		opCtxs = append(opCtxs, &OperationContext{Method: m, Operation: &openapi.Operation{}})
	}

	included := make([]bool, len(opCtxs))
	if err := g.processOperations(ctx, doc, opCtxs, included); err != nil {
		return nil, err
	}

	operations := 0
	for i, opCtx := range opCtxs {
		if !included[i] {
			continue
		}
		if err := addOperation(api.Paths, opCtx); err != nil {
			return nil, err
		}
		operations++
	}

	logger.Info("generated document",
		"title", api.Info.Title,
		"operations", operations,
		"excluded", len(opCtxs)-operations,
		"tags", len(api.Tags),
	)

	return api, nil
}

func (g *Generator) processOperations(ctx context.Context, doc *Document, opCtxs []*OperationContext, included []bool) error {
	if g.concurrency <= 1 {
		for i, opCtx := range opCtxs {
			if err := ctx.Err(); err != nil {
				return err
			}

			ok, err := g.processOperation(ctx, doc, opCtx)
			if err != nil {
				return err
			}
			included[i] = ok
		}
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)

	for i, opCtx := range opCtxs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			ok, err := g.processOperation(egCtx, doc, opCtx)
			if err != nil {
				return err
			}
			included[i] = ok
			return nil
		})
	}

	return eg.Wait()
}

func (g *Generator) processOperation(ctx context.Context, doc *Document, opCtx *OperationContext) (bool, error) {
	method := opCtx.Method

	ctx, span := tracer.Start(ctx, "openapi-gen.operation", trace.WithAttributes(
		attribute.String("openapi.type", method.DeclaringType),
		attribute.String("openapi.method", method.Name),
		attribute.String("http.method", method.HTTPMethod),
		attribute.String("http.route", method.Path),
	))
	defer span.End()

	included := true
	for _, p := range g.operationProcessors {
		ok, err := p.Process(ctx, doc, opCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return false, ErrProcessOperation.Wrap(fmt.Errorf("%s.%s: %w", method.DeclaringType, method.Name, err))
		}
		if !ok {
			included = false
			break
		}
	}

	g.metrics.operationProcessed(included)
	span.SetAttributes(
		attribute.Bool("openapi.included", included),
		attribute.StringSlice("openapi.tags", opCtx.Operation.Tags),
	)

	ctxlog.FromContext(ctx).Debug("processed operation",
		"operation", opCtx.Operation.GetOperationID(),
		"method", method.HTTPMethod,
		"path", method.Path,
		"tags", opCtx.Operation.Tags,
		"included", included,
	)

	return included, nil
}

func addOperation(paths *openapi.Paths, opCtx *OperationContext) error {
	method := opCtx.Method

	item, ok := paths.Get(method.Path)
	switch {
	case !ok || item == nil:
		item = &openapi.ReferencedPathItem{Object: openapi.NewPathItem()}
		paths.Set(method.Path, item)
	case item.Object == nil:
		item.Object = openapi.NewPathItem()
	}

	httpMethod := openapi.HTTPMethod(method.HTTPMethod)
	if item.Object.Has(httpMethod) {
		return ErrDuplicateOperation.Wrap(fmt.Errorf("%s %s (%s.%s)", method.HTTPMethod, method.Path, method.DeclaringType, method.Name))
	}
	item.Object.Set(httpMethod, opCtx.Operation)

	return nil
}
