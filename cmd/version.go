package cmd

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qerope/resume-ats/internal/ai/gemini"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build details",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeVersion(cmd.OutOrStdout(), viper.ConfigFileUsed(), viper.GetString("ai.gemini.model"))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// writeVersion prints the version with the config file in use and the Gemini
// model job analysis would call.
func writeVersion(w io.Writer, configFile, model string) error {
	if configFile == "" {
		configFile = "none (looked for " + app + ".yaml)"
	}
	if model = strings.TrimSpace(model); model == "" {
		model = gemini.DefaultModel
	}

	_, err := fmt.Fprintf(w, "%s version: %s\ngo: %s\nconfig: %s\ngemini model: %s\n",
		app, version, runtime.Version(), configFile, model)
	return err
}
