package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spoilsweep/neighbor"
)

// runCLI executes run and returns exit code, stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Defaults(t *testing.T) {
	code, out, _ := runCLI(t, "-seed", "1")
	require.Equal(t, 0, code)

	assert.True(t, strings.HasPrefix(out, "5x5 with 4 mines\n"))
	board := out[strings.Index(out, "Adjacency rule set"):]
	lines := strings.Split(strings.TrimSpace(board), "\n")
	grid := lines[len(lines)-5:]
	for _, line := range grid {
		assert.Equal(t, 10, strings.Count(line, "||"), line)
	}
	assert.Equal(t, 4, strings.Count(out, "||:boom:||"))
}

func TestRun_SeedIsReproducible(t *testing.T) {
	_, a, _ := runCLI(t, "-seed", "7", "-a", "3", "-rules=false")
	_, b, _ := runCLI(t, "-seed", "7", "-anti-mines", "3", "-rules=false")
	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(strings.TrimSpace(a), "\n"), 5)
	assert.Equal(t, 3, strings.Count(a, ":rosette:"))
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"TooManyMines", []string{"-W", "2", "-H", "2", "-m", "4"}, 1, "More mines than grid slots!"},
		{"TooLarge", []string{"-W", "10", "-H", "10"}, 1, "use -no-limits to override"},
		{"BadRule", []string{"-c", "bishop"}, 2, "unknown count rule"},
		{"NegativeMines", []string{"-m", "-1"}, 2, "non-negative"},
		{"Positional", []string{"extra"}, 2, "unexpected arguments"},
		{"MissingConfig", []string{"-config", "/nonexistent/spoilsweep.yaml"}, 2, "Load"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Empty(t, out, "no board is printed on error")
			assert.Contains(t, errOut, tc.msg)
		})
	}
}

func TestRun_NoLimits(t *testing.T) {
	code, out, _ := runCLI(t, "-W", "10", "-H", "10", "-no-limits", "-rules=false", "-seed", "3")
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 10)
}

func TestRun_ConfigFileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"width: 4\nheight: 3\nmine_count: 2\ncount_rule: knight\nspoiler_str: \"!!\"\nseed: 4\n"), 0o600))

	code, out, _ := runCLI(t, "-config", path, "-m", "5")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "4x3 with 5 mines\n")
	assert.Contains(t, out, "Adjacency rule set: Knight\n")
	assert.Equal(t, 5, strings.Count(out, "!!:boom:!!"))
}

func TestRun_Help(t *testing.T) {
	code, out, errOut := runCLI(t, "-h")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "-count-rules")
}

func TestRun_DebugLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "-seed", "2", "-log-level", "debug", "-rules=false")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "board generated")
	assert.Contains(t, errOut, "board ready")
}

func TestParseArgs_RuleAliases(t *testing.T) {
	cfg, _, err := parseArgs([]string{"-count-rules", "knight"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, neighbor.Knight, cfg.CountRule)
	assert.Nil(t, cfg.Seed, "seed stays unset unless given")
}
