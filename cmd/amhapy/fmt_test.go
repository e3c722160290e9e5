package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFmtCommandRequiresPath(t *testing.T) {
	err := fmtCommand(nil)
	if err == nil {
		t.Fatalf("expected path required error")
	}
	if !strings.Contains(err.Error(), "path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFmtCommandCheckDetectsUnformattedFiles(t *testing.T) {
	path := writeAmhaFile(t, "ከሆነ x:  \n\tአሳይ x \n")
	err := fmtCommand([]string{"-check", path})
	if err == nil {
		t.Fatalf("expected formatting check failure")
	}
	if !strings.Contains(err.Error(), "need formatting") {
		t.Fatalf("unexpected check error: %v", err)
	}
}

func TestFmtCommandWriteFormatsFileInPlace(t *testing.T) {
	path := writeAmhaFile(t, "ከሆነ x:  \n\tአሳይ x \n")
	if err := fmtCommand([]string{"-w", path}); err != nil {
		t.Fatalf("fmt -w failed: %v", err)
	}

	updated, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read formatted file: %v", err)
	}
	if got := string(updated); got != "ከሆነ x:\n    አሳይ x\n" {
		t.Fatalf("unexpected formatted output: %q", got)
	}
}

func TestFmtCommandPrintsFormattedOutput(t *testing.T) {
	path := writeAmhaFile(t, "x = 1\r\nአሳይ x  \n\n\n")
	out, err := captureStdout(t, func() error {
		return fmtCommand([]string{path})
	})
	if err != nil {
		t.Fatalf("fmt command failed: %v", err)
	}
	if out != "x = 1\nአሳይ x\n" {
		t.Fatalf("unexpected stdout output: %q", out)
	}
}

func TestFmtCommandFormatsDirectories(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "a.amha")
	second := filepath.Join(root, "nested", "b.amha")
	ignored := filepath.Join(root, "notes.txt")
	if err := os.MkdirAll(filepath.Dir(second), 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	if err := os.WriteFile(first, []byte("x = 1  \n"), 0o644); err != nil {
		t.Fatalf("write first file: %v", err)
	}
	if err := os.WriteFile(second, []byte("y = 2\t\n"), 0o644); err != nil {
		t.Fatalf("write second file: %v", err)
	}
	if err := os.WriteFile(ignored, []byte("keep me  \n"), 0o644); err != nil {
		t.Fatalf("write ignored file: %v", err)
	}

	if err := fmtCommand([]string{"-w", root}); err != nil {
		t.Fatalf("fmt directory failed: %v", err)
	}
	if err := fmtCommand([]string{"-check", root}); err != nil {
		t.Fatalf("expected no formatting diffs after write, got %v", err)
	}

	untouched, err := os.ReadFile(ignored)
	if err != nil {
		t.Fatalf("read ignored file: %v", err)
	}
	if string(untouched) != "keep me  \n" {
		t.Fatalf("non-.amha file was rewritten: %q", untouched)
	}
}

func TestFormatAmhaSourceTabExpansion(t *testing.T) {
	cases := [][2]string{
		{"\tx = 1\n", "    x = 1\n"},
		{" \tx = 1\n", "    x = 1\n"},
		{"\t\tx = 1\n", "        x = 1\n"},
		{"x = \"a\tb\"\n", "x = \"a\tb\"\n"}, // tab after content stays
	}
	for _, c := range cases {
		if got := formatAmhaSource(c[0]); got != c[1] {
			t.Fatalf("formatAmhaSource(%q) = %q, want %q", c[0], got, c[1])
		}
	}
}

func TestFormatAmhaSourceTrailingNewlines(t *testing.T) {
	if got := formatAmhaSource("x = 1"); got != "x = 1\n" {
		t.Fatalf("missing trailing newline: %q", got)
	}
	if got := formatAmhaSource("x = 1\n\n\n"); got != "x = 1\n" {
		t.Fatalf("extra trailing newlines kept: %q", got)
	}
}

func writeAmhaFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.amha")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write program file: %v", err)
	}
	return path
}
