// Package testutils holds helpers shared by tests across packages.
package testutils

import (
	"fmt"

	"github.com/speakeasy-api/openapi/openapi"
	"gopkg.in/yaml.v3"
)

func CreateStringYamlNode(value string, line, column int) *yaml.Node {
	return &yaml.Node{
		Value:  value,
		Kind:   yaml.ScalarNode,
		Tag:    "!!str",
		Line:   line,
		Column: column,
	}
}

func CreateIntYamlNode(value int, line, column int) *yaml.Node {
	return &yaml.Node{
		Value:  fmt.Sprintf("%d", value),
		Kind:   yaml.ScalarNode,
		Tag:    "!!int",
		Line:   line,
		Column: column,
	}
}

func CreateBoolYamlNode(value bool, line, column int) *yaml.Node {
	return &yaml.Node{
		Value:  fmt.Sprintf("%t", value),
		Kind:   yaml.ScalarNode,
		Tag:    "!!bool",
		Line:   line,
		Column: column,
	}
}

func CreateMapYamlNode(contents []*yaml.Node, line, column int) *yaml.Node {
	return &yaml.Node{
		Content: contents,
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Line:    line,
		Column:  column,
	}
}

func CreateSeqYamlNode(contents []*yaml.Node, line, column int) *yaml.Node {
	return &yaml.Node{
		Content: contents,
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Line:    line,
		Column:  column,
	}
}

// TagNames returns the names of the document's tags in document order.
func TagNames(doc *openapi.OpenAPI) []string {
	names := make([]string, 0, len(doc.Tags))
	for _, tag := range doc.Tags {
		names = append(names, tag.GetName())
	}
	return names
}

// PathKeys returns the document's paths in document order.
func PathKeys(doc *openapi.OpenAPI) []string {
	var paths []string
	if doc.Paths == nil {
		return paths
	}
	for path := range doc.Paths.Keys() {
		paths = append(paths, path)
	}
	return paths
}

// OperationTags returns the tags of the operation served at path and method, or nil if there is none.
func OperationTags(doc *openapi.OpenAPI, path string, method openapi.HTTPMethod) []string {
	if doc.Paths == nil {
		return nil
	}
	item, ok := doc.Paths.Get(path)
	if !ok || item == nil || item.Object == nil {
		return nil
	}
	op := item.Object.GetOperation(method)
	if op == nil {
		return nil
	}
	return op.Tags
}
