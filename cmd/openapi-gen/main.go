package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/speakeasy-api/openapi-gen/cmd/openapi-gen/commands/cmdutil"
	generateCmd "github.com/speakeasy-api/openapi-gen/cmd/openapi-gen/commands/generate"
	"github.com/speakeasy-api/openapi-gen/internal/ctxlog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// getVersionInfo returns version information, prioritizing ldflags values over build info
func getVersionInfo() (string, string, string) {
	if version != "dev" || commit != "none" || date != "unknown" {
		return version, commit, date
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}

	moduleVersion := version
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		moduleVersion = buildInfo.Main.Version
	}

	vcsCommit := commit
	vcsTime := date

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) >= 7 {
				vcsCommit = setting.Value[:7] // Short commit hash
			} else {
				vcsCommit = setting.Value
			}
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	return moduleVersion, vcsCommit, vcsTime
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "openapi-gen",
	Short: "Generate OpenAPI documents from controller manifests",
	Long: `Generate OpenAPI documents from manifests describing controllers, their
handler methods and the tags declared on them.

Operations are grouped by tags: a multi tag declaration, then single tag
declarations, falling back to the controller name when nothing is declared.
Tags marked with addToDocument are listed in the document's tags section.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), cmdutil.NewLogger(os.Stderr, verbose)))
	},
}

func init() {
	currentVersion, currentCommit, currentDate := getVersionInfo()

	rootCmd.Version = currentVersion

	var versionTemplate strings.Builder
	versionTemplate.WriteString(`{{printf "%s" .Version}}`)

	if currentCommit != "none" && currentCommit != "" {
		versionTemplate.WriteString("\nBuild: " + currentCommit)
	}

	if currentDate != "unknown" && currentDate != "" {
		versionTemplate.WriteString("\nBuilt: " + currentDate)
	}

	rootCmd.SetVersionTemplate(versionTemplate.String())

	generateCmd.Apply(rootCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
