package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(name string) string { return filepath.Join("testdata", name) }

// execute runs the CLI and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, args)

	return out.String(), err
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "want *ExitError, got %v", err)
	assert.Equal(t, code, exitErr.Code)
}

func TestRun_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "contract")
}

func TestRun_BadLogFlags(t *testing.T) {
	_, err := execute(t, "--log-format", "xml", "stats", fixture("triangle_tail.txt"))
	requireExitCode(t, err, 2)

	_, err = execute(t, "--log-level", "loud", "stats", fixture("triangle_tail.txt"))
	requireExitCode(t, err, 2)
}

func TestStats(t *testing.T) {
	out, err := execute(t, "--log-level", "debug", "--log-format", "json", "stats", fixture("triangle_tail.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, "order:      4\n")
	assert.Contains(t, out, "size:       4\n")
	assert.Contains(t, out, "max degree: 3\n")
	assert.Contains(t, out, "components: 1\n")
	assert.Contains(t, out, "cyclic:     true\n")
}

func TestStats_MissingFile(t *testing.T) {
	_, err := execute(t, "stats", fixture("nope.txt"))
	requireExitCode(t, err, 1)
}

func TestContract_SinglePlan(t *testing.T) {
	out, err := execute(t, "contract", fixture("seven.txt"), "--plan", fixture("seven.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "total: 204\norder: 1\nsize:  0\n", out)
}

func TestContract_Cheapest(t *testing.T) {
	out, err := execute(t, "contract", fixture("triangle_tail.txt"),
		"--plan", fixture("tail_first.yaml"), "--plan", fixture("tail_last.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "best:  "+fixture("tail_last.yaml")+"\n")
	assert.Contains(t, out, "total: 16\n")
}

func TestContract_Errors(t *testing.T) {
	_, err := execute(t, "contract", fixture("triangle_tail.txt"))
	require.Error(t, err, "--plan is required")

	_, err = execute(t, "contract", fixture("triangle_tail.txt"), "--plan", fixture("missing.yaml"))
	requireExitCode(t, err, 2)

	// seven.yaml names vertices 5..7, absent from the tail graph.
	_, err = execute(t, "contract", fixture("triangle_tail.txt"), "--plan", fixture("seven.yaml"))
	requireExitCode(t, err, 1)

	_, err = execute(t, "contract", fixture("triangle_tail.txt"),
		"--plan", fixture("tail_first.yaml"), "--plan", fixture("seven.yaml"))
	requireExitCode(t, err, 2)
}

func TestRandom(t *testing.T) {
	out, err := execute(t, "random", fixture("seven.txt"), "--seed", "3", "--trials", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "steps:     5\n")
	assert.Contains(t, out, "order:     2\n")
	assert.Contains(t, out, "size:      1\n")

	again, err := execute(t, "random", fixture("seven.txt"), "--seed", "3", "--trials", "5")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same run")
}

func TestRandom_Errors(t *testing.T) {
	_, err := execute(t, "random", fixture("seven.txt"), "--combine", "max")
	requireExitCode(t, err, 2)

	_, err = execute(t, "random", fixture("seven.txt"), "--until", "0")
	requireExitCode(t, err, 2)

	_, err = execute(t, "random", fixture("seven.txt"), "--trials", "0")
	requireExitCode(t, err, 2)
}

func TestSearch(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"bfs to target", []string{"--from", "1", "--to", "2"}, "1 2\n"},
		{"bfs component", []string{"--from", "1"}, "1 2 3 4\n"},
		{"dfs to target", []string{"--from", "1", "--to", "4", "--algo", "dfs"}, "1 2 3 4\n"},
		{"dfs component", []string{"--from", "3", "--algo", "dfs"}, "3 2 1 4\n"},
		{"loop only", []string{"--from", "9"}, "9\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"search", fixture("pendant.txt")}, tc.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestSearch_Errors(t *testing.T) {
	_, err := execute(t, "search", fixture("pendant.txt"), "--from", "1", "--to", "9")
	requireExitCode(t, err, 1)

	_, err = execute(t, "search", fixture("pendant.txt"), "--from", "42")
	requireExitCode(t, err, 1)

	_, err = execute(t, "search", fixture("pendant.txt"), "--from", "1", "--algo", "astar")
	requireExitCode(t, err, 2)
}

func TestGen(t *testing.T) {
	out, err := execute(t, "gen", "cycle", "--n", "4")
	require.NoError(t, err)
	assert.Equal(t, "1 2 1\n2 3 1\n3 4 1\n1 4 1\n", out)

	out, err = execute(t, "gen", "grid", "--rows", "2", "--cols", "2", "--offset", "0")
	require.NoError(t, err)
	assert.Equal(t, "0 1 1\n0 2 1\n1 3 1\n2 3 1\n", out)

	_, err = execute(t, "gen", "cycle", "--n", "2")
	requireExitCode(t, err, 2)

	_, err = execute(t, "gen", "torus")
	requireExitCode(t, err, 2)

	_, err = execute(t, "gen", "path", "--min-weight", "5", "--max-weight", "1")
	requireExitCode(t, err, 2)
}

// TestGen_RoundTrip feeds generated output back through the loader.
func TestGen_RoundTrip(t *testing.T) {
	out, err := execute(t, "gen", "random", "--n", "12", "--p", "0.4", "--seed", "5", "--max-weight", "9")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	stats, err := execute(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, stats, "loops:      0\n")
}

func TestMST(t *testing.T) {
	out, err := execute(t, "mst", fixture("triangle_tail.txt"))
	require.NoError(t, err)
	assert.Equal(t, "1 3 3\n2 3 4\n2 4 7\nweight: 14\n", out)

	_, err = execute(t, "mst", fixture("pendant.txt"))
	requireExitCode(t, err, 1)
}
