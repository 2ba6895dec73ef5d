package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "key")
	if err := os.WriteFile(file, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	t.Setenv("RESUME_ATS_TEST_KEY", "from-env")

	tests := []struct {
		name string
		src  Source
		want string
	}{
		{"file wins", Source{File: file, Value: "inline", Env: []string{"RESUME_ATS_TEST_KEY"}}, "from-file"},
		{"value over env", Source{Value: " inline ", Env: []string{"RESUME_ATS_TEST_KEY"}}, "inline"},
		{"env fallback", Source{Env: []string{"RESUME_ATS_TEST_UNSET", "RESUME_ATS_TEST_KEY"}}, "from-env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write empty file: %v", err)
	}

	tests := []struct {
		name    string
		src     Source
		wantMsg string
	}{
		{"missing file", Source{Name: "gemini api key", File: filepath.Join(dir, "nope")}, "reading gemini api key from file"},
		{"empty file", Source{Name: "gemini api key", File: empty}, "is empty"},
		{"nothing configured", Source{}, "secret is not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}
