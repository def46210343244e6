package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulatmain/desrete-analysis-labs/internal/collector"
	gradepkg "github.com/bulatmain/desrete-analysis-labs/internal/grade"
	"github.com/bulatmain/desrete-analysis-labs/internal/testfile"
)

func TestRun_BuiltinMatcherPasses(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "run.jsonl")
	code := run(context.Background(), []string{
		"--exec", "builtin",
		"--max-letter", "1000000",
		"--seed", "42",
		"--runs", "2",
		"--threads", "1",
		"--test-file", filepath.Join(dir, "test"),
		"--result-file", filepath.Join(dir, "result"),
		"--report", report,
	}, &bytes.Buffer{})
	require.Equal(t, exitOK, code)

	raw, err := os.ReadFile(report)
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, rows, 2)
	var r collector.Report
	require.NoError(t, json.Unmarshal([]byte(rows[1]), &r))
	assert.Equal(t, 1, r.Run)
	assert.True(t, r.Passed)
	assert.Equal(t, 167, r.TextSize)
	assert.Equal(t, 10, r.Placed)
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "patgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(strings.Join([]string{
		"pattern_size: 3",
		"occurrence_count: 4",
		"occurrence_rate: 0.5",
		"max_letter: 1000000",
		"exec: builtin",
		"test_file: " + filepath.Join(dir, "test"),
		"result_file: " + filepath.Join(dir, "result"),
		"seed: 5",
	}, "\n")), 0o644))

	var out bytes.Buffer
	code := run(context.Background(), []string{"generate", "--config", cfg, "--count", "6"}, &out)
	require.Equal(t, exitOK, code)

	// the flag wins over the file
	want, err := gradepkg.ParseResult(&out)
	require.NoError(t, err)
	assert.Len(t, want, 6)

	f, err := testfile.ReadFile(filepath.Join(dir, "test"))
	require.NoError(t, err)
	assert.Len(t, f.Pattern, 3)
	assert.Len(t, f.Text(), 36)
}

func TestRun_InvalidRateFailsBeforeGenerating(t *testing.T) {
	dir := t.TempDir()
	testPath := filepath.Join(dir, "test")
	code := run(context.Background(), []string{
		"generate", "--rate", "1.5", "--test-file", testPath,
	}, &bytes.Buffer{})
	assert.Equal(t, exitUsage, code)
	_, err := os.Stat(testPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_BadFlag(t *testing.T) {
	assert.Equal(t, exitUsage, run(context.Background(), []string{"--no-such-flag"}, &bytes.Buffer{}))
	assert.Equal(t, exitUsage, run(context.Background(), []string{"--alphabet", "greek"}, &bytes.Buffer{}))
}

func TestRun_MissingMatcherFails(t *testing.T) {
	dir := t.TempDir()
	code := run(context.Background(), []string{
		"--exec", filepath.Join(dir, "no-such-matcher"),
		"--seed", "1",
		"--test-file", filepath.Join(dir, "test"),
		"--result-file", filepath.Join(dir, "result"),
	}, &bytes.Buffer{})
	assert.Equal(t, exitFailed, code)
}
