package keywords

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

type splitFilter struct{}

// NewSplit creates a step that splits comma separated inputs into single keywords.
func NewSplit() Filter {
	return &splitFilter{}
}

func (f *splitFilter) Name() string { return "split" }

func (f *splitFilter) Disable(string) {}

func (f *splitFilter) IsEnabled() bool { return true }

func (f *splitFilter) Validate(*Config) error { return nil }

func (f *splitFilter) Apply(_ context.Context, _ Deps, in []string) ([]string, Step, error) {
	var out []string
	for _, raw := range in {
		out = append(out, Split(raw)...)
	}
	// Counts inputs against produced keywords, so Dropped may be negative when
	// a single input expands into several keywords.
	return out, Step{Initial: len(in), Dropped: len(in) - len(out), Left: len(out)}, nil
}

func (f *splitFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true}
}

type excludeFilter struct {
	words map[string]struct{}
}

// NewExclude creates a step that removes keywords listed in the config.
func NewExclude() Filter {
	return &excludeFilter{}
}

func (f *excludeFilter) Name() string { return "exclude" }

func (f *excludeFilter) Disable(string) {}

func (f *excludeFilter) IsEnabled() bool { return true }

func (f *excludeFilter) Validate(cfg *Config) error {
	f.words = make(map[string]struct{})
	if cfg == nil {
		return nil
	}
	for _, w := range cfg.Exclude {
		if w = normalize(w); w != "" {
			f.words[w] = struct{}{}
		}
	}
	return nil
}

func (f *excludeFilter) Apply(_ context.Context, deps Deps, in []string) ([]string, Step, error) {
	out, removed := exclude(in, f.words)
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding keywords by config",
			zap.Strings("excluded_keywords", removed),
			zap.Int("keywords_left", len(out)),
		)
	}
	return out, Step{Initial: len(in), Dropped: len(removed), Left: len(out)}, nil
}

func (f *excludeFilter) Status() Status {
	details := map[string]string{}
	if len(f.words) > 0 {
		details["count"] = fmt.Sprint(len(f.words))
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a step that removes keywords listed in an exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, in []string) ([]string, Step, error) {
	if f.path == "" {
		return in, Step{Initial: len(in), Dropped: 0, Left: len(in)}, nil
	}

	words, err := readExcludeFile(f.path)
	if err != nil {
		return in, Step{}, fmt.Errorf("getting excluded keywords from file: %w", err)
	}

	out, removed := exclude(in, words)
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding keywords based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_keywords", removed),
			zap.Int("keywords_left", len(out)),
		)
	}

	return out, Step{Initial: len(in), Dropped: len(removed), Left: len(out)}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type dedupeFilter struct {
	enabled bool
	reason  string
}

// NewDedupe creates a step that drops repeated keywords, keeping the first spelling.
func NewDedupe() Filter {
	return &dedupeFilter{enabled: true}
}

func (f *dedupeFilter) Name() string { return "dedupe" }

func (f *dedupeFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *dedupeFilter) IsEnabled() bool { return f.enabled }

func (f *dedupeFilter) Validate(*Config) error { return nil }

func (f *dedupeFilter) Apply(_ context.Context, _ Deps, in []string) ([]string, Step, error) {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, k := range in {
		key := normalize(k)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, k)
	}
	return out, Step{Initial: len(in), Dropped: len(in) - len(out), Left: len(out)}, nil
}

func (f *dedupeFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: f.reason}
}

func exclude(in []string, words map[string]struct{}) ([]string, []string) {
	if len(words) == 0 {
		return in, nil
	}
	out := make([]string, 0, len(in))
	var removed []string
	for _, k := range in {
		if _, ok := words[normalize(k)]; ok {
			removed = append(removed, k)
			continue
		}
		out = append(out, k)
	}
	return out, removed
}

// readExcludeFile reads one keyword per line. Blank lines and lines starting
// with # are skipped.
func readExcludeFile(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[normalize(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return words, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
