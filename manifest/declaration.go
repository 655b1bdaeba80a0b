package manifest

import (
	"fmt"

	"github.com/speakeasy-api/openapi-gen/metadata"
	"github.com/speakeasy-api/openapi/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrInvalidManifest is returned when a manifest can't be decoded or is incomplete.
	ErrInvalidManifest errors.Error = "invalid manifest"
	// ErrInvalidDeclaration is returned for declarations that are neither a single nor a multi tag declaration.
	ErrInvalidDeclaration errors.Error = "invalid tag declaration"
)

// Declaration is a tag declaration of an operation. A mapping with a tag key decodes to a
// metadata.SingleTag and a mapping with a tags key decodes to a metadata.MultiTag.
type Declaration struct {
	metadata.Declaration
}

type rawDeclaration struct {
	Tag           *string       `yaml:"tag"`
	Tags          *[]string     `yaml:"tags"`
	Description   string        `yaml:"description"`
	ExternalDocs  *ExternalDocs `yaml:"externalDocs"`
	AddToDocument bool          `yaml:"addToDocument"`
}

// UnmarshalYAML decodes a single or multi tag declaration from a mapping node.
func (d *Declaration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return declarationError(node, "expected a mapping")
	}

	var raw rawDeclaration
	if err := node.Decode(&raw); err != nil {
		return ErrInvalidDeclaration.Wrap(err)
	}

	switch {
	case raw.Tag != nil && raw.Tags != nil:
		return declarationError(node, "tag and tags are mutually exclusive")
	case raw.Tag != nil:
		d.Declaration = metadata.SingleTag{
			Name:          *raw.Tag,
			Description:   raw.Description,
			ExternalDocs:  raw.ExternalDocs.toMetadata(),
			AddToDocument: raw.AddToDocument,
		}
	case raw.Tags != nil:
		if raw.Description != "" || raw.ExternalDocs != nil {
			return declarationError(node, "description and externalDocs are only supported on single tag declarations")
		}
		d.Declaration = metadata.MultiTag{
			Names:         *raw.Tags,
			AddToDocument: raw.AddToDocument,
		}
	default:
		return declarationError(node, "one of tag or tags is required")
	}

	return nil
}

func declarationError(node *yaml.Node, msg string) error {
	return ErrInvalidDeclaration.Wrap(fmt.Errorf("line %d column %d: %s", node.Line, node.Column, msg))
}

// Responses are the documented responses of an operation, keyed by status code in manifest order.
type Responses []metadata.Response

// UnmarshalYAML decodes a mapping of status code to description, keeping key order.
func (r *Responses) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d column %d: responses must be a mapping of status code to description", node.Line, node.Column)
	}

	responses := make(Responses, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d column %d: response %q must have a description", value.Line, value.Column, key.Value)
		}
		responses = append(responses, metadata.Response{Status: key.Value, Description: value.Value})
	}

	*r = responses
	return nil
}
