package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qerope/resume-ats/internal/keywords"
	"github.com/qerope/resume-ats/internal/resume"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print the sample resume or example job keywords",
	RunE: func(cmd *cobra.Command, _ []string) error {
		showKeywords, _ := cmd.Flags().GetBool("keywords")
		jobName, _ := cmd.Flags().GetString("job-name")

		if !showKeywords && jobName == "" {
			_, err := cmd.OutOrStdout().Write(resume.ExampleJSON())
			return err
		}

		list := keywords.DefaultExample
		if jobName != "" {
			list = keywords.ForJob(jobName)
		}

		if viper.GetString("output") == outputJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(list)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(list, ", "))
		return err
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)

	exampleCmd.Flags().Bool("keywords", false, "print example job keywords instead of the sample resume")
	exampleCmd.Flags().String("job-name", "", "job name for generated keywords, e.g. resume_frontend_developer")
}
