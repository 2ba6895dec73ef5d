package cmd

import (
	"context"
	"encoding/json"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qerope/resume-ats/internal/posting"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze-job [file|url|-]",
	Short: "Extract company, title, requirements and keywords from a job posting with AI",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyzeJob(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeJob(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, config, err := setup()
	if err != nil {
		log.Fatal(err)
	}

	source := "-"
	if len(args) > 0 {
		source = args[0]
	}

	text, err := posting.New(logger).Load(ctx, source)
	if err != nil {
		logger.Fatal("loading job posting", zap.Error(err), zap.String("source", source))
	}

	analyzer, err := newAnalyzer(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("creating job analyzer", zap.Error(err))
	}

	analysis, err := analyzer.Analyze(ctx, text)
	if err != nil {
		logger.Fatal("analyzing job posting", zap.Error(err))
	}

	logger.Info("job posting analyzed",
		zap.String("shortname", analysis.Shortname),
		zap.Int("keywords", len(analysis.KeywordList())),
	)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(analysis); err != nil {
		logger.Fatal("writing analysis", zap.Error(err))
	}
}
