package generator

import (
	"context"

	"github.com/speakeasy-api/openapi-gen/metadata"
)

// DocumentTagsProcessor registers the type-level tag declarations that have AddToDocument set.
// Types are visited in surface order and the first registration of a name wins.
type DocumentTagsProcessor struct{}

var _ DocumentProcessor = DocumentTagsProcessor{}

// Process registers the type-level tags of surface with doc.
func (DocumentTagsProcessor) Process(ctx context.Context, doc *Document, surface *metadata.Surface) error {
	for _, t := range surface.Types {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, decl := range t.Tags {
			if !decl.AddToDocument {
				continue
			}
			doc.Tags.Ensure(NewTag(decl))
		}
	}
	return nil
}
