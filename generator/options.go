package generator

import "github.com/speakeasy-api/openapi/openapi"

// Option configures a Generator.
type Option func(g *Generator)

// WithInfo sets the info object of generated documents.
func WithInfo(info openapi.Info) Option {
	return func(g *Generator) {
		g.info = info
	}
}

// WithConcurrency processes up to n operations in parallel. Values below 1 are treated as 1.
// With n > 1 the order of document tags follows the order operations finish in.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		g.concurrency = max(n, 1)
	}
}

// WithOperationProcessors replaces the operation processors, which run in the order given.
func WithOperationProcessors(processors ...OperationProcessor) Option {
	return func(g *Generator) {
		g.operationProcessors = processors
	}
}

// WithDocumentProcessors replaces the document processors, which run in the order given.
func WithDocumentProcessors(processors ...DocumentProcessor) Option {
	return func(g *Generator) {
		g.documentProcessors = processors
	}
}

// WithMetrics records generation metrics to m.
func WithMetrics(m *Metrics) Option {
	return func(g *Generator) {
		g.metrics = m
	}
}
