package testutils

import (
	"testing"

	"github.com/speakeasy-api/openapi/openapi"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestCreateYamlNodes_Success(t *testing.T) {
	t.Parallel()

	key := CreateStringYamlNode("tag", 2, 3)
	value := CreateStringYamlNode("pets", 2, 8)
	node := CreateMapYamlNode([]*yaml.Node{key, value}, 2, 3)

	assert.Equal(t, yaml.MappingNode, node.Kind)
	assert.Equal(t, "!!map", node.Tag)
	assert.Equal(t, 2, node.Line)
	assert.Len(t, node.Content, 2)

	assert.Equal(t, "42", CreateIntYamlNode(42, 1, 1).Value)
	assert.Equal(t, "true", CreateBoolYamlNode(true, 1, 1).Value)
	assert.Equal(t, yaml.SequenceNode, CreateSeqYamlNode(nil, 1, 1).Kind)
}

func TestDocumentHelpers_Success(t *testing.T) {
	t.Parallel()

	op := &openapi.Operation{Tags: []string{"pets", "animals"}}
	item := openapi.NewPathItem()
	item.Set(openapi.HTTPMethodGet, op)

	paths := openapi.NewPaths()
	paths.Set("/pets", &openapi.ReferencedPathItem{Object: item})
	paths.Set("/store", &openapi.ReferencedPathItem{Object: openapi.NewPathItem()})

	doc := &openapi.OpenAPI{
		Tags:  []*openapi.Tag{{Name: "pets"}, {Name: "animals"}},
		Paths: paths,
	}

	assert.Equal(t, []string{"pets", "animals"}, TagNames(doc))
	assert.Equal(t, []string{"/pets", "/store"}, PathKeys(doc))
	assert.Equal(t, []string{"pets", "animals"}, OperationTags(doc, "/pets", openapi.HTTPMethodGet))
	assert.Nil(t, OperationTags(doc, "/pets", openapi.HTTPMethodPost))
	assert.Nil(t, OperationTags(doc, "/missing", openapi.HTTPMethodGet))
	assert.Empty(t, PathKeys(&openapi.OpenAPI{}))
}
