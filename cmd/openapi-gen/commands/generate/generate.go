package generate

import (
	"context"
	"errors"
	"sync"

	"github.com/speakeasy-api/openapi-gen/cmd/openapi-gen/commands/cmdutil"
	"github.com/speakeasy-api/openapi-gen/manifest"
	"github.com/speakeasy-api/openapi/yml"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [manifest] [output-file]",
	Short: "Generate an OpenAPI document from a manifest",
	Long: `Generate an OpenAPI document from a manifest describing controllers and their operations.

Every operation is tagged from its tag declarations:
- A multi tag declaration contributes its names first, in order
- Single tag declarations follow, skipping names already present
- Operations without any tag are tagged with their controller name

Tags declared with addToDocument are also added to the document's tag list.
The first registration of a tag name wins, later descriptions are ignored.

Output options:
- No output file specified: writes to stdout (pipe-friendly)
- Output file specified: writes to the specified file
- --watch: regenerates the output file whenever the manifest changes

Pass "-" or pipe data to read the manifest from stdin.`,
	Args: cmdutil.StdinOrFileArgs(1, 2),
	Run:  runGenerate,
}

var (
	format      string
	concurrency int
	watch       bool
)

func init() {
	generateCmd.Flags().StringVarP(&format, "format", "f", string(yml.OutputFormatYAML), "output format (yaml or json)")
	generateCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 1, "number of operations processed in parallel")
	generateCmd.Flags().BoolVar(&watch, "watch", false, "regenerate the document whenever the manifest changes")
}

func runGenerate(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	processor, err := NewManifestProcessor(cmdutil.InputFileFromArgs(args), cmdutil.ArgAt(args, 1, ""), yml.OutputFormat(format))
	if err != nil {
		cmdutil.Die(err)
	}
	processor.Concurrency = concurrency

	if watch {
		err = watchManifest(ctx, processor)
	} else {
		err = processor.Run(ctx)
	}
	if err != nil {
		cmdutil.Die(err)
	}
}

func watchManifest(ctx context.Context, processor *ManifestProcessor) error {
	if processor.ReadFromStdin {
		return errors.New("cannot use --watch flag when reading from stdin")
	}
	if processor.WriteToStdout {
		return errors.New("--watch flag requires an output file")
	}

	var mu sync.Mutex
	regenerate := func() {
		mu.Lock()
		defer mu.Unlock()

		if err := processor.Run(ctx); err != nil {
			processor.PrintWarning(err.Error())
		}
	}

	regenerate()
	processor.PrintInfo("Watching " + processor.InputFile + " for changes, press Ctrl+C to stop")

	return manifest.Watch(ctx, processor.InputFile, regenerate)
}

// GetGenerateCommand returns the generate command for external use
func GetGenerateCommand() *cobra.Command {
	return generateCmd
}

// Apply adds the generation commands to rootCmd.
func Apply(rootCmd *cobra.Command) {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tagsCmd)
}
