package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "fnswitch",
	Short: "Property-function dispatcher CLI",
	Long: `fnswitch is a thin CLI around an in-process property-function
dispatcher: a fast, reflection-free resolver for well-known intrinsic
functions (String, Path, Math, Version, Guid, Regex, Intrinsic, ...)
used by a build-expression evaluator.

This binary exists to inspect and exercise the dispatcher's frozen
function tables, not to replace the library's Go API.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "fnswitch.yaml", "path to an optional fnswitch.yaml")
}
