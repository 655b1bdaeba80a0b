package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/speakeasy-api/openapi-gen/cmd/openapi-gen/commands/cmdutil"
	"github.com/speakeasy-api/openapi-gen/generator"
	"github.com/speakeasy-api/openapi-gen/manifest"
	"github.com/speakeasy-api/openapi/openapi"
	"github.com/speakeasy-api/openapi/yml"
)

// ManifestProcessor handles the common steps of turning a manifest into an OpenAPI document.
type ManifestProcessor struct {
	InputFile     string
	OutputFile    string
	ReadFromStdin bool
	WriteToStdout bool
	Format        yml.OutputFormat
	Concurrency   int

	// Optional overrides for testing, when nil os.Stdin/os.Stdout/os.Stderr are used.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (p *ManifestProcessor) stdin() io.Reader {
	if p.Stdin != nil {
		return p.Stdin
	}
	return os.Stdin
}

func (p *ManifestProcessor) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

func (p *ManifestProcessor) stderr() io.Writer {
	if p.Stderr != nil {
		return p.Stderr
	}
	return os.Stderr
}

// NewManifestProcessor creates a processor reading inputFile and writing outputFile in the given format.
// Pass "-" as inputFile to read from stdin and an empty outputFile to write to stdout.
func NewManifestProcessor(inputFile, outputFile string, format yml.OutputFormat) (*ManifestProcessor, error) {
	switch format {
	case "":
		format = yml.OutputFormatYAML
	case yml.OutputFormatYAML, yml.OutputFormatJSON:
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	return &ManifestProcessor{
		InputFile:     inputFile,
		OutputFile:    outputFile,
		ReadFromStdin: cmdutil.IsStdin(inputFile),
		WriteToStdout: outputFile == "",
		Format:        format,
		Concurrency:   1,
	}, nil
}

// LoadManifest decodes the manifest from the input file or stdin.
func (p *ManifestProcessor) LoadManifest() (*manifest.Manifest, error) {
	if p.ReadFromStdin {
		fmt.Fprintf(p.stderr(), "Processing manifest from stdin\n")
		return manifest.Load(p.stdin())
	}

	cleanInputFile := filepath.Clean(p.InputFile)
	fmt.Fprintf(p.stderr(), "Processing manifest: %s\n", cleanInputFile)

	return manifest.LoadFile(cleanInputFile)
}

// GenerateDocument builds the OpenAPI document described by m.
func (p *ManifestProcessor) GenerateDocument(ctx context.Context, m *manifest.Manifest) (*openapi.OpenAPI, error) {
	g := generator.New(
		generator.WithInfo(m.OpenAPIInfo()),
		generator.WithConcurrency(p.Concurrency),
	)

	doc, err := g.Generate(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}
	return doc, nil
}

// WriteDocument writes the generated document to the output destination.
func (p *ManifestProcessor) WriteDocument(ctx context.Context, doc *openapi.OpenAPI) error {
	cfg := *yml.GetDefaultConfig()
	cfg.OutputFormat = p.Format
	doc.GetCore().SetConfig(&cfg)

	if p.WriteToStdout {
		return openapi.Marshal(ctx, doc, p.stdout())
	}

	cleanOutputFile := filepath.Clean(p.OutputFile)
	outFile, err := os.Create(cleanOutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if err := openapi.Marshal(ctx, doc, outFile); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	fmt.Fprintf(p.stderr(), "📄 Document written to: %s\n", cleanOutputFile)

	return nil
}

// Run loads the manifest, generates the document and writes it out.
func (p *ManifestProcessor) Run(ctx context.Context) error {
	m, err := p.LoadManifest()
	if err != nil {
		return err
	}

	doc, err := p.GenerateDocument(ctx, m)
	if err != nil {
		return err
	}
	if doc == nil {
		return errors.New("failed to generate document: document is nil")
	}

	if err := p.WriteDocument(ctx, doc); err != nil {
		return err
	}

	p.PrintSuccess(fmt.Sprintf("Generated %d operations and %d tags", countOperations(doc), len(doc.Tags)))

	return nil
}

// PrintSuccess prints a success message to stderr.
func (p *ManifestProcessor) PrintSuccess(message string) {
	fmt.Fprintf(p.stderr(), "✅ %s\n", message)
}

// PrintInfo prints an info message to stderr.
func (p *ManifestProcessor) PrintInfo(message string) {
	fmt.Fprintf(p.stderr(), "📋 %s\n", message)
}

// PrintWarning prints a warning message to stderr.
func (p *ManifestProcessor) PrintWarning(message string) {
	fmt.Fprintf(p.stderr(), "⚠️  Warning: %s\n", message)
}

func countOperations(doc *openapi.OpenAPI) int {
	count := 0
	for _, item := range doc.Paths.All() {
		if item == nil || item.Object == nil {
			continue
		}
		for range item.Object.All() {
			count++
		}
	}
	return count
}
