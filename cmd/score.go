package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/qerope/resume-ats/internal/ats"
	"github.com/qerope/resume-ats/internal/keywords"
	"github.com/qerope/resume-ats/internal/logger"
	"github.com/qerope/resume-ats/internal/posting"
	"github.com/qerope/resume-ats/internal/resume"
)

const (
	PromptSections     = "Show section scores"
	PromptMatches      = "Show keyword matches"
	PromptSuggestions  = "Show suggestions"
	PromptOverlap      = "Show skills overlap"
	PromptTips         = "Show ATS tips"
	PromptResultToFile = "Dump result to file"
	PromptBack         = "back"
	PromptExit         = "Exit"

	maxParallelScoring = 4
)

var errExit = errors.New("exit requested")

var scoreCmd = &cobra.Command{
	Use:   "score [resume.json ...]",
	Short: "Score JSON Resume files (stdin when no file or - is given)",
	Run: func(cmd *cobra.Command, args []string) {
		score(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringArrayP("keywords", "k", nil, "job keywords, comma separated. Can be repeated.")
	scoreCmd.Flags().String("keywords-file", "", "file with job keywords, one or more per line")
	scoreCmd.Flags().StringP("exclude-file", "e", "", "file with keywords to ignore, one per line")
	scoreCmd.Flags().String("job", "", "job posting (file, URL or -) analyzed with AI to obtain keywords")
	scoreCmd.Flags().String("job-name", "", "generate example keywords for a job name, e.g. resume_data_engineer")
	scoreCmd.Flags().BoolP("interactive", "i", false, "explore the result in an interactive menu")

	viper.BindPFlag("keywords.exclude-file", scoreCmd.Flags().Lookup("exclude-file"))
}

// scored is one scored resume.
type scored struct {
	Source string           `json:"resume"`
	Doc    *resume.Document `json:"-"`
	Result *ats.Result      `json:"result"`
}

// keywordSources are the places score collects job keywords from.
type keywordSources struct {
	Inline  []string
	File    string
	Job     string
	JobName string
}

// score is the main command for the cli.
func score(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, config, err := setup()
	if err != nil {
		log.Fatal(err)
	}

	sources := keywordSources{
		Inline:  stringArrayFlag(cmd, "keywords"),
		File:    cmd.Flag("keywords-file").Value.String(),
		Job:     cmd.Flag("job").Value.String(),
		JobName: cmd.Flag("job-name").Value.String(),
	}

	raw, err := collectKeywords(ctx, sources, config, logger)
	if err != nil {
		logger.Fatal("collecting job keywords", zap.Error(err))
	}

	list, err := keywords.Prepare(ctx, config.Keywords, logger, raw...)
	if err != nil {
		logger.Fatal("preparing job keywords", zap.Error(err))
	}

	logger.Debug("job keywords prepared", zap.Strings("keywords", list))

	if len(args) == 0 {
		args = []string{"-"}
	}

	results, err := scoreAll(args, list)
	if err != nil {
		logger.Fatal("scoring resumes", zap.Error(err))
	}

	for _, r := range results {
		logger.Info("resume scored", scoreLogFields(r, list)...)
	}

	if err := writeResults(cmd.OutOrStdout(), config.Output, results); err != nil {
		logger.Fatal("writing results", zap.Error(err))
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if !interactive {
		return
	}

	if err := explore(cmd.OutOrStdout(), logger, results, list); err != nil && !errors.Is(err, errExit) {
		logger.Fatal("exiting", zap.Error(err))
	}
}

func stringArrayFlag(cmd *cobra.Command, name string) []string {
	values, err := cmd.Flags().GetStringArray(name)
	if err != nil {
		return nil
	}
	return values
}

func scoreLogFields(r *scored, list []string) []zap.Field {
	return logger.ScoreFields(r.Source, r.Result.OverallScore, len(list), len(r.Result.KeywordMatches))
}

// collectKeywords gathers raw keyword strings from every configured source.
// Splitting and filtering happen later in keywords.Prepare.
func collectKeywords(ctx context.Context, src keywordSources, config *Config, log *zap.Logger) ([]string, error) {
	raw := append([]string{}, src.Inline...)

	if src.File != "" {
		lines, err := readKeywordsFile(src.File)
		if err != nil {
			return nil, err
		}
		raw = append(raw, lines...)
	}

	if src.JobName != "" {
		raw = append(raw, keywords.ForJob(src.JobName)...)
	}

	if src.Job != "" {
		text, err := posting.New(log).Load(ctx, src.Job)
		if err != nil {
			return nil, err
		}

		analyzer, err := newAnalyzer(ctx, config.AI, log)
		if err != nil {
			return nil, fmt.Errorf("creating job analyzer: %w", err)
		}

		analysis, err := analyzer.Analyze(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("analyzing job posting: %w", err)
		}

		log.Info("job posting analyzed",
			zap.String("company", analysis.Company),
			zap.String("title", analysis.Title),
			zap.String("shortname", analysis.Shortname),
		)

		raw = append(raw, analysis.KeywordList()...)
	}

	return raw, nil
}

// readKeywordsFile returns the non-empty, non-comment lines of path.
func readKeywordsFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading keywords file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading keywords file: %w", err)
	}

	return lines, nil
}

// scoreAll loads and scores every resume concurrently. Results keep the
// order of paths.
func scoreAll(paths []string, list []string) ([]*scored, error) {
	results := make([]*scored, len(paths))

	var g errgroup.Group
	g.SetLimit(maxParallelScoring)

	for i, path := range paths {
		g.Go(func() error {
			doc, err := resume.Load(path)
			if err != nil {
				return err
			}
			results[i] = &scored{Source: path, Doc: doc, Result: ats.Score(doc, list)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeResults prints results as text reports or JSON. A single resume is
// printed as a bare result.
func writeResults(w io.Writer, format string, results []*scored) error {
	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0].Result)
		}
		return enc.Encode(results)
	}

	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "== %s ==\n", r.Source); err != nil {
				return err
			}
		}
		if err := r.Result.Report(w); err != nil {
			return err
		}
	}
	return nil
}

// explore runs the interactive menu. With several resumes the user picks one
// first.
func explore(w io.Writer, logger *zap.Logger, results []*scored, list []string) error {
	if len(results) == 1 {
		return actionLoop(w, logger, results[0], list, false)
	}

	items := make([]string, 0, len(results)+1)
	for _, r := range results {
		items = append(items, fmt.Sprintf("%s (%d%%)", r.Source, r.Result.OverallScore))
	}

	for {
		resumePrompt := promptui.Select{
			Label: "Choose a resume and press ENTER",
			Items: append(items, PromptExit),
		}

		idx, selected, err := resumePrompt.Run()
		if err != nil {
			return err
		}
		if selected == PromptExit {
			return errExit
		}

		if err := actionLoop(w, logger, results[idx], list, true); err != nil {
			return err
		}
	}
}

func actionLoop(w io.Writer, logger *zap.Logger, r *scored, list []string, withBack bool) error {
	items := []string{PromptSections, PromptMatches, PromptSuggestions, PromptOverlap, PromptTips, PromptResultToFile}
	if withBack {
		items = append(items, PromptBack)
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("%s: ATS score %d%%. Proceed?", r.Source, r.Result.OverallScore),
		Items: append(items, PromptExit),
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}
		if action == PromptBack {
			return nil
		}

		if err := handleAction(action, w, logger, r, list); err != nil {
			return err
		}
	}
}

func handleAction(action string, w io.Writer, logger *zap.Logger, r *scored, list []string) error {
	switch action {
	case PromptSections:
		return r.Result.ReportSections(w)
	case PromptMatches:
		if len(r.Result.KeywordMatches) == 0 {
			_, err := fmt.Fprintln(w, "No job keywords matched.")
			return err
		}
		return r.Result.ReportMatches(w)
	case PromptSuggestions:
		if len(r.Result.Suggestions) == 0 {
			_, err := fmt.Fprintln(w, "No suggestions.")
			return err
		}
		for _, s := range r.Result.Suggestions {
			if _, err := fmt.Fprintf(w, "  - %s\n", s); err != nil {
				return err
			}
		}
		return nil
	case PromptOverlap:
		overlap := ats.SkillsOverlap(r.Doc, list)
		_, err := fmt.Fprintf(w, "Skills overlap: %d of %d job keywords (%d%%)\n", overlap.Count, overlap.Total, overlap.Percentage)
		return err
	case PromptTips:
		return writeTips(w)
	case PromptResultToFile:
		filename, err := r.Result.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
