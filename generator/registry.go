package generator

import (
	"slices"
	"sync"

	"github.com/speakeasy-api/openapi/openapi"
)

// TagRegistry is the document-level tag catalog backed by OpenAPI.Tags.
// Tags are unique by name and the first registration of a name wins.
// TagRegistry is safe for concurrent use.
type TagRegistry struct {
	mu      sync.Mutex
	doc     *openapi.OpenAPI
	metrics *Metrics
}

// NewTagRegistry returns a registry writing to the tags of doc.
func NewTagRegistry(doc *openapi.OpenAPI) *TagRegistry {
	return &TagRegistry{doc: doc}
}

// Ensure adds tag to the document unless a tag with the same name is already registered,
// in which case the existing entry is left untouched. The document's tag list is allocated on
// first insert. Ensure reports whether tag was added.
func (r *TagRegistry) Ensure(tag *openapi.Tag) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(tag.GetName()) >= 0 {
		return false
	}

	if r.doc.Tags == nil {
		r.doc.Tags = make([]*openapi.Tag, 0, 1)
	}
	r.doc.Tags = append(r.doc.Tags, tag)
	r.metrics.documentTagRegistered()

	return true
}

// Get returns the registered tag with the given name.
func (r *TagRegistry) Get(name string) (*openapi.Tag, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, false
	}
	return r.doc.Tags[i], true
}

// Names returns the names of the registered tags in registration order.
func (r *TagRegistry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.doc.Tags))
	for _, tag := range r.doc.Tags {
		names = append(names, tag.GetName())
	}
	return names
}

func (r *TagRegistry) indexOf(name string) int {
	return slices.IndexFunc(r.doc.Tags, func(t *openapi.Tag) bool {
		return t.GetName() == name
	})
}
