package generator_test

import (
	"testing"

	"github.com/speakeasy-api/openapi-gen/generator"
	"github.com/speakeasy-api/openapi-gen/metadata"
	"github.com/speakeasy-api/openapi/errors"
	"github.com/speakeasy-api/openapi/openapi"
	"github.com/speakeasy-api/openapi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processTags(t *testing.T, doc *generator.Document, declaringType string, declarations ...metadata.Declaration) *openapi.Operation {
	t.Helper()

	opCtx := &generator.OperationContext{
		Method: &metadata.Method{
			DeclaringType: declaringType,
			Name:          "Handle",
			HTTPMethod:    "get",
			Path:          "/",
			Declarations:  declarations,
		},
		Operation: &openapi.Operation{},
	}

	ok, err := generator.OperationTagsProcessor{}.Process(t.Context(), doc, opCtx)
	require.NoError(t, err)
	require.True(t, ok, "tag resolution never excludes an operation")

	return opCtx.Operation
}

func TestOperationTagsProcessor_Process_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		declarations     []metadata.Declaration
		expectedTags     []string
		expectedDocument []string
	}{
		{
			name:         "no declarations falls back to declaring type",
			expectedTags: []string{"PetController"},
		},
		{
			name: "multi tag registered with document",
			declarations: []metadata.Declaration{
				metadata.MultiTag{Names: []string{"pets", "animals"}, AddToDocument: true},
			},
			expectedTags:     []string{"pets", "animals"},
			expectedDocument: []string{"pets", "animals"},
		},
		{
			name: "duplicate single tags collapse",
			declarations: []metadata.Declaration{
				metadata.SingleTag{Name: "pets"},
				metadata.SingleTag{Name: "pets"},
			},
			expectedTags: []string{"pets"},
		},
		{
			name: "single tag repeating a multi tag name contributes nothing",
			declarations: []metadata.Declaration{
				metadata.MultiTag{Names: []string{"pets"}},
				metadata.SingleTag{Name: "pets"},
			},
			expectedTags: []string{"pets"},
		},
		{
			name: "multi tag names come before single tags regardless of metadata order",
			declarations: []metadata.Declaration{
				metadata.SingleTag{Name: "store"},
				metadata.MultiTag{Names: []string{"pets", "animals"}},
				metadata.SingleTag{Name: "animals"},
				metadata.SingleTag{Name: "admin"},
			},
			expectedTags: []string{"pets", "animals", "store", "admin"},
		},
		{
			name: "only declarations asking for it are registered",
			declarations: []metadata.Declaration{
				metadata.MultiTag{Names: []string{"pets"}},
				metadata.SingleTag{Name: "store", AddToDocument: true},
				metadata.SingleTag{Name: "admin"},
			},
			expectedTags:     []string{"pets", "store", "admin"},
			expectedDocument: []string{"store"},
		},
		{
			name: "tag names are case sensitive",
			declarations: []metadata.Declaration{
				metadata.SingleTag{Name: "Pets"},
				metadata.SingleTag{Name: "pets"},
			},
			expectedTags: []string{"Pets", "pets"},
		},
		{
			name: "empty multi tag still falls back",
			declarations: []metadata.Declaration{
				metadata.MultiTag{AddToDocument: true},
			},
			expectedTags: []string{"PetController"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := openapi.NewOpenAPI()
			doc := generator.NewDocument(api)

			op := processTags(t, doc, "PetController", tt.declarations...)

			assert.Equal(t, tt.expectedTags, op.Tags)
			if tt.expectedDocument == nil {
				assert.Nil(t, api.Tags, "document tags should stay unallocated")
			} else {
				assert.Equal(t, tt.expectedDocument, doc.Tags.Names())
			}
		})
	}
}

func TestOperationTagsProcessor_Process_KeepsExistingTags(t *testing.T) {
	t.Parallel()

	doc := generator.NewDocument(openapi.NewOpenAPI())
	opCtx := &generator.OperationContext{
		Method: &metadata.Method{
			DeclaringType: "PetController",
			Name:          "List",
			Declarations:  []metadata.Declaration{metadata.SingleTag{Name: "pets"}, metadata.SingleTag{Name: "beta"}},
		},
		Operation: &openapi.Operation{Tags: []string{"beta"}},
	}

	_, err := generator.OperationTagsProcessor{}.Process(t.Context(), doc, opCtx)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "pets"}, opCtx.Operation.Tags)
}

func TestOperationTagsProcessor_Process_FirstRegistrationWins(t *testing.T) {
	t.Parallel()

	api := openapi.NewOpenAPI()
	doc := generator.NewDocument(api)

	processTags(t, doc, "PetController", metadata.SingleTag{
		Name:          "pets",
		Description:   "Everything about pets",
		ExternalDocs:  &metadata.ExternalDocs{URL: "https://example.com/pets", Description: "More"},
		AddToDocument: true,
	})
	processTags(t, doc, "AnimalController", metadata.SingleTag{
		Name:          "pets",
		Description:   "Something else",
		AddToDocument: true,
	})
	processTags(t, doc, "AnimalController", metadata.MultiTag{
		Names:         []string{"pets", "animals"},
		AddToDocument: true,
	})

	require.Len(t, api.Tags, 2)
	assert.Equal(t, "pets", api.Tags[0].GetName())
	assert.Equal(t, "Everything about pets", api.Tags[0].GetDescription())
	assert.Equal(t, "https://example.com/pets", api.Tags[0].GetExternalDocs().GetURL())
	assert.Equal(t, "More", api.Tags[0].GetExternalDocs().GetDescription())
	assert.Equal(t, "animals", api.Tags[1].GetName())
	assert.Nil(t, api.Tags[1].Description)
}

func TestOperationTagsProcessor_Process_ExistingDocumentTagWins(t *testing.T) {
	t.Parallel()

	api := openapi.NewOpenAPI()
	api.Tags = []*openapi.Tag{{Name: "pets", Description: pointer.From("Declared up front")}}
	doc := generator.NewDocument(api)

	processTags(t, doc, "PetController", metadata.SingleTag{Name: "pets", Description: "Later", AddToDocument: true})

	require.Len(t, api.Tags, 1)
	assert.Equal(t, "Declared up front", api.Tags[0].GetDescription())
}

func TestOperationTagsProcessor_Process_Error(t *testing.T) {
	t.Parallel()

	doc := generator.NewDocument(openapi.NewOpenAPI())
	opCtx := &generator.OperationContext{
		Method: &metadata.Method{
			DeclaringType: "PetController",
			Name:          "List",
			Declarations: []metadata.Declaration{
				metadata.MultiTag{Names: []string{"pets"}},
				metadata.MultiTag{Names: []string{"animals"}},
			},
		},
		Operation: &openapi.Operation{},
	}

	ok, err := generator.OperationTagsProcessor{}.Process(t.Context(), doc, opCtx)
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, metadata.ErrMultipleMultiTags))
	assert.Empty(t, opCtx.Operation.Tags)
}

func TestNewTag(t *testing.T) {
	t.Parallel()

	tag := generator.NewTag(metadata.SingleTag{Name: "pets"})
	assert.Equal(t, "pets", tag.Name)
	assert.Nil(t, tag.Description)
	assert.Nil(t, tag.ExternalDocs)

	tag = generator.NewTag(metadata.SingleTag{Name: "pets", ExternalDocs: &metadata.ExternalDocs{Description: "no url"}})
	assert.Nil(t, tag.ExternalDocs, "external docs without a URL are dropped")

	tag = generator.NewTag(metadata.SingleTag{Name: "pets", ExternalDocs: &metadata.ExternalDocs{URL: "https://example.com"}})
	require.NotNil(t, tag.ExternalDocs)
	assert.Equal(t, "https://example.com", tag.ExternalDocs.URL)
	assert.Nil(t, tag.ExternalDocs.Description)
}
