package generate

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/speakeasy-api/openapi-gen/cmd/openapi-gen/commands/cmdutil"
	"github.com/speakeasy-api/openapi/openapi"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [manifest]",
	Short: "Show the tags resolved for each operation in a manifest",
	Long: `Show the tags resolved for each operation in a manifest, followed by the
document tag list, without writing a document.`,
	Args: cmdutil.StdinOrFileArgs(1, 1),
	Run:  runTags,
}

func runTags(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	processor, err := NewManifestProcessor(cmdutil.InputFileFromArgs(args), "", "")
	if err != nil {
		cmdutil.Die(err)
	}

	m, err := processor.LoadManifest()
	if err != nil {
		cmdutil.Die(err)
	}

	doc, err := processor.GenerateDocument(ctx, m)
	if err != nil {
		cmdutil.Die(err)
	}

	if err := printTags(os.Stdout, doc); err != nil {
		cmdutil.Die(err)
	}
}

func printTags(w io.Writer, doc *openapi.OpenAPI) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "OPERATION\tMETHOD\tPATH\tTAGS")
	for path, item := range doc.Paths.All() {
		if item == nil || item.Object == nil {
			continue
		}
		for method, op := range item.Object.All() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.GetOperationID(), strings.ToUpper(string(method)), path, strings.Join(op.Tags, ", "))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nDocument tags (%d):\n", len(doc.Tags))
	for _, tag := range doc.Tags {
		if desc := tag.GetDescription(); desc != "" {
			fmt.Fprintf(w, "  %s: %s\n", tag.GetName(), desc)
			continue
		}
		fmt.Fprintf(w, "  %s\n", tag.GetName())
	}

	return nil
}
