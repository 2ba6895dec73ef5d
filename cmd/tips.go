package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qerope/resume-ats/internal/ats"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Print tips for writing ATS friendly resumes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if viper.GetString("output") == outputJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ats.Tips())
		}
		return writeTips(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(tipsCmd)
}

func writeTips(w io.Writer) error {
	for i, tip := range ats.Tips() {
		if _, err := fmt.Fprintf(w, "%d. %s\n   %s\n", i+1, tip.Title, tip.Description); err != nil {
			return err
		}
	}
	return nil
}
