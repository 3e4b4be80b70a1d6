package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestReadInput_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.jsonl")
	if err := os.WriteFile(path, []byte("{\"a\":1}\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	raw, source, err := readInput(&cobra.Command{}, []string{path})
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if raw != "{\"a\":1}\n" {
		t.Fatalf("unexpected raw %q", raw)
	}
	if source != "sample.jsonl" {
		t.Fatalf("expected base name as source, got %q", source)
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	_, _, err := readInput(&cobra.Command{}, []string{filepath.Join(t.TempDir(), "nope.json")})
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "nope.json") {
		t.Fatalf("expected file name in error, got %v", err)
	}
}

func TestReadInput_PipedStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(`{"b": 2}`))

	raw, source, err := readInput(cmd, nil)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if raw != `{"b": 2}` {
		t.Fatalf("unexpected raw %q", raw)
	}
	if source != "stdin" {
		t.Fatalf("expected stdin source, got %q", source)
	}
}

func TestReadInput_InteractiveStdinFails(t *testing.T) {
	// /dev/null is a character device, which is how readInput recognizes a
	// terminal with nothing piped in.
	f, err := os.Open(os.DevNull)
	if err != nil {
		t.Skipf("open %s: %v", os.DevNull, err)
	}
	defer f.Close()

	cmd := &cobra.Command{}
	cmd.SetIn(f)

	_, _, err = readInput(cmd, nil)
	if err == nil {
		t.Fatalf("expected error for interactive stdin with no file argument")
	}
	if !strings.Contains(err.Error(), "no input") {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestReadInput_DashMeansStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("null"))

	raw, source, err := readInput(cmd, []string{"-"})
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if raw != "null" || source != "stdin" {
		t.Fatalf("expected stdin read for %q, got %q/%q", "-", raw, source)
	}
}

func TestRootCmd_RejectsBadTruncateLimit(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--truncate-limit", "0", "whatever.json"})
	cmd.SetErr(&strings.Builder{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for truncate-limit < 1")
	}
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"a.json", "b.json"})
	cmd.SetErr(&strings.Builder{})
	cmd.SetOut(&strings.Builder{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for more than one positional argument")
	}
}
