package manifest_test

import (
	"testing"

	"github.com/speakeasy-api/openapi-gen/internal/testutils"
	"github.com/speakeasy-api/openapi-gen/manifest"
	"github.com/speakeasy-api/openapi-gen/metadata"
	"github.com/speakeasy-api/openapi/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDeclaration_UnmarshalYAML_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		node     *yaml.Node
		expected metadata.Declaration
	}{
		{
			name: "single tag",
			node: testutils.CreateMapYamlNode([]*yaml.Node{
				testutils.CreateStringYamlNode("tag", 1, 3),
				testutils.CreateStringYamlNode("pets", 1, 8),
				testutils.CreateStringYamlNode("description", 2, 3),
				testutils.CreateStringYamlNode("Everything about your pets", 2, 16),
				testutils.CreateStringYamlNode("addToDocument", 3, 3),
				testutils.CreateBoolYamlNode(true, 3, 18),
			}, 1, 3),
			expected: metadata.SingleTag{Name: "pets", Description: "Everything about your pets", AddToDocument: true},
		},
		{
			name: "multi tag",
			node: testutils.CreateMapYamlNode([]*yaml.Node{
				testutils.CreateStringYamlNode("tags", 1, 3),
				testutils.CreateSeqYamlNode([]*yaml.Node{
					testutils.CreateStringYamlNode("pets", 1, 10),
					testutils.CreateStringYamlNode("animals", 1, 16),
				}, 1, 9),
			}, 1, 3),
			expected: metadata.MultiTag{Names: []string{"pets", "animals"}},
		},
		{
			name: "empty multi tag",
			node: testutils.CreateMapYamlNode([]*yaml.Node{
				testutils.CreateStringYamlNode("tags", 1, 3),
				testutils.CreateSeqYamlNode(nil, 1, 9),
			}, 1, 3),
			expected: metadata.MultiTag{Names: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d manifest.Declaration
			require.NoError(t, d.UnmarshalYAML(tt.node))
			assert.Equal(t, tt.expected, d.Declaration)
		})
	}
}

func TestDeclaration_UnmarshalYAML_Error(t *testing.T) {
	t.Parallel()

	var d manifest.Declaration
	err := d.UnmarshalYAML(testutils.CreateStringYamlNode("pets", 4, 7))
	require.Error(t, err)
	assert.True(t, errors.Is(err, manifest.ErrInvalidDeclaration))
	assert.Contains(t, err.Error(), "line 4 column 7: expected a mapping")
}

func TestResponses_UnmarshalYAML_Success(t *testing.T) {
	t.Parallel()

	node := testutils.CreateMapYamlNode([]*yaml.Node{
		testutils.CreateStringYamlNode("404", 1, 1),
		testutils.CreateStringYamlNode("Not found", 1, 6),
		testutils.CreateIntYamlNode(200, 2, 1),
		testutils.CreateStringYamlNode("OK", 2, 6),
	}, 1, 1)

	var r manifest.Responses
	require.NoError(t, r.UnmarshalYAML(node))
	assert.Equal(t, manifest.Responses{
		{Status: "404", Description: "Not found"},
		{Status: "200", Description: "OK"},
	}, r, "manifest order is kept")
}
