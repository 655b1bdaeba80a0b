// Package manifest loads an API surface description from a YAML manifest.
//
// A manifest lists controller types, the operations their handler methods serve and the tag
// declarations attached to those handlers:
//
//	info:
//	  title: Petstore
//	  version: 1.0.0
//	controllers:
//	  - name: PetController
//	    tags:
//	      - name: pets
//	        description: Everything about your pets
//	        addToDocument: true
//	    operations:
//	      - handler: List
//	        method: get
//	        path: /pets
//	        responses:
//	          "200": A list of pets
//	        declarations:
//	          - tags: [pets, animals]
//	            addToDocument: true
//	          - tag: store
package manifest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/speakeasy-api/openapi-gen/metadata"
	"github.com/speakeasy-api/openapi/errors"
	"github.com/speakeasy-api/openapi/openapi"
	"github.com/speakeasy-api/openapi/pointer"
	"gopkg.in/yaml.v3"
)

// Manifest is a decoded manifest document.
type Manifest struct {
	Info        Info         `yaml:"info"`
	Controllers []Controller `yaml:"controllers"`
}

var _ metadata.Source = (*Manifest)(nil)

// Info holds the document info of the generated document.
type Info struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Summary     string `yaml:"summary"`
	Description string `yaml:"description"`
}

// Controller describes a controller type and its operations.
type Controller struct {
	Name       string      `yaml:"name"`
	Tags       []Tag       `yaml:"tags"`
	Operations []Operation `yaml:"operations"`
}

// Tag is a type-level tag declaration.
type Tag struct {
	Name          string        `yaml:"name"`
	Description   string        `yaml:"description"`
	ExternalDocs  *ExternalDocs `yaml:"externalDocs"`
	AddToDocument bool          `yaml:"addToDocument"`
}

// ExternalDocs points at documentation hosted outside the generated document.
type ExternalDocs struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// Operation describes an operation served by a controller's handler method.
type Operation struct {
	Handler      string        `yaml:"handler"`
	Method       string        `yaml:"method"`
	Path         string        `yaml:"path"`
	OperationID  string        `yaml:"operationId"`
	Summary      string        `yaml:"summary"`
	Description  string        `yaml:"description"`
	Deprecated   bool          `yaml:"deprecated"`
	Responses    Responses     `yaml:"responses"`
	Declarations []Declaration `yaml:"declarations"`
}

// Load decodes a manifest from r. Unknown fields are rejected.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrInvalidManifest.Wrap(errors.New("manifest is empty"))
		}
		return nil, ErrInvalidManifest.Wrap(err)
	}

	return &m, nil
}

// LoadFile decodes the manifest stored at path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load converts the manifest into an API surface, checking every controller and operation is
// fully described.
func (m *Manifest) Load(ctx context.Context) (*metadata.Surface, error) {
	surface := &metadata.Surface{}

	for i, c := range m.Controllers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if c.Name == "" {
			return nil, ErrInvalidManifest.Wrap(fmt.Errorf("controllers[%d]: name is required", i))
		}

		t := &metadata.Type{Name: c.Name}
		for _, tag := range c.Tags {
			t.Tags = append(t.Tags, tag.toSingleTag())
		}

		for j, op := range c.Operations {
			if op.Handler == "" || op.Method == "" || op.Path == "" {
				return nil, ErrInvalidManifest.Wrap(fmt.Errorf("%s.operations[%d]: handler, method and path are required", c.Name, j))
			}

			method := &metadata.Method{
				DeclaringType: c.Name,
				Name:          op.Handler,
				HTTPMethod:    strings.ToLower(op.Method),
				Path:          op.Path,
				OperationID:   op.OperationID,
				Summary:       op.Summary,
				Description:   op.Description,
				Deprecated:    op.Deprecated,
				Responses:     op.Responses,
			}
			for _, d := range op.Declarations {
				method.Declarations = append(method.Declarations, d.Declaration)
			}

			t.Methods = append(t.Methods, method)
		}

		surface.Types = append(surface.Types, t)
	}

	return surface, nil
}

// OpenAPIInfo returns the info object for the generated document.
func (m *Manifest) OpenAPIInfo() openapi.Info {
	info := openapi.Info{
		Title:   m.Info.Title,
		Version: m.Info.Version,
	}
	if info.Title == "" {
		info.Title = "API"
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}
	if m.Info.Summary != "" {
		info.Summary = pointer.From(m.Info.Summary)
	}
	if m.Info.Description != "" {
		info.Description = pointer.From(m.Info.Description)
	}
	return info
}

func (t Tag) toSingleTag() metadata.SingleTag {
	return metadata.SingleTag{
		Name:          t.Name,
		Description:   t.Description,
		ExternalDocs:  t.ExternalDocs.toMetadata(),
		AddToDocument: t.AddToDocument,
	}
}

func (e *ExternalDocs) toMetadata() *metadata.ExternalDocs {
	if e == nil {
		return nil
	}
	return &metadata.ExternalDocs{URL: e.URL, Description: e.Description}
}
