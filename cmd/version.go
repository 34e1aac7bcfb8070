package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadmazumder/jsonscrub/internal/version"
)

var versionFormat string

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for jsonscrub including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  jsonscrub version               # Show short version
  jsonscrub version --format json # Output as JSON`,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.GetBuildInfo()
	out := cmd.OutOrStdout()

	switch versionFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	default:
		fmt.Fprintln(out, version.Short())
		fmt.Fprintf(out, "  go version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  platform:   %s\n", info.Platform)
		if !info.BuildTime.IsZero() {
			fmt.Fprintf(out, "  built:      %s\n", info.BuildTime.Format("2006-01-02 15:04:05 MST"))
		}
	}
	return nil
}
