package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `<svg viewBox="0 0 10 10"><path d="M1 1 L9 1 9 9 Z"/></svg>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDryRun(t *testing.T) {
	svg := writeFile(t, "square.svg", square)
	var stdout, stderr bytes.Buffer

	err := run([]string{"--dry-run", "--dest", "0,0,100,100", svg}, &stdout, &stderr)
	require.NoError(t, err)

	want := "path: " + svg + "\n" +
		"SVG's width: 10, height: 10\n" +
		"release\n" +
		"move 10.00 10.00\n" +
		"press\n" +
		"move 90.00 10.00\n" +
		"move 90.00 90.00\n" +
		"move 90.00 90.00\n" +
		"press\n" +
		"move 90.00 90.00\n" +
		"move 10.00 10.00\n" +
		"release\n" +
		"1 of 1 shapes drawn\n"
	assert.Equal(t, want, stdout.String())
}

func TestDryRunUsesConfigDestination(t *testing.T) {
	svg := writeFile(t, "square.svg", square)
	cfg := writeFile(t, "svgbot.toml", "[destination]\nleft = 0\ntop = 0\nright = 20\nbottom = 20\n")
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-c", cfg, "--dry-run", svg}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "move 18.00 18.00\n")
}

func TestRunErrors(t *testing.T) {
	svg := writeFile(t, "square.svg", square)
	for name, args := range map[string][]string{
		"no file":             {"--dry-run"},
		"dry run needs dest":  {"--dry-run", svg},
		"bad dest":            {"--dry-run", "--dest", "1,2,3", svg},
		"missing svg":         {"--dry-run", "--dest", "0,0,1,1", filepath.Join(t.TempDir(), "none.svg")},
		"unknown flag":        {"--bogus", svg},
		"bad config":          {"-c", writeFile(t, "bad.toml", "[device"), svg},
		"bad button override": {"--button", "0", "--dry-run", "--dest", "0,0,1,1", svg},
	} {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Error(t, run(args, &stdout, &stderr))
		})
	}
}
