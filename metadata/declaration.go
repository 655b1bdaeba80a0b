// Package metadata describes the API surface that documents are generated from:
// controller types, their handler methods and the tag declarations attached to them.
package metadata

// Declaration is a unit of tag metadata attached to a handler method.
// It is always either a SingleTag or a MultiTag.
type Declaration interface {
	isDeclaration()
}

// ExternalDocs points at documentation hosted outside the generated document.
type ExternalDocs struct {
	URL         string
	Description string
}

// SingleTag declares a single tag for an operation.
type SingleTag struct {
	// Name of the tag.
	Name string
	// Description used when the tag is registered with the document.
	Description string
	// ExternalDocs used when the tag is registered with the document.
	ExternalDocs *ExternalDocs
	// AddToDocument also registers the tag in the document's top-level tag list.
	AddToDocument bool
}

// MultiTag declares an ordered list of tags for an operation.
type MultiTag struct {
	// Names of the tags, in the order they should be applied.
	Names []string
	// AddToDocument also registers every tag in the document's top-level tag list.
	AddToDocument bool
}

func (SingleTag) isDeclaration() {}

func (MultiTag) isDeclaration() {}

var (
	_ Declaration = SingleTag{}
	_ Declaration = MultiTag{}
)
