package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavepaths/config"
)

const referenceMap = `start-A
start-b
A-c
A-b
b-d
A-end
b-end
`

// run executes the CLI against an in-memory filesystem holding files.
func run(t *testing.T, files map[string]string, args ...string) (string, error) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0o644))
	}
	prev := appFs
	appFs = fs
	t.Cleanup(func() { appFs = prev })

	var out bytes.Buffer
	root := newRootCmd(nil)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestCountBothPolicies(t *testing.T) {
	out, err := run(t, map[string]string{"caves.txt": referenceMap}, "count", "caves.txt")
	require.NoError(t, err)
	assert.Equal(t, "10\n36\n", out)
}

func TestCountSinglePolicy(t *testing.T) {
	files := map[string]string{"caves.txt": referenceMap}

	out, err := run(t, files, "count", "--policy", "single", "caves.txt")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	out, err = run(t, files, "count", "--policy", "2", "--workers", "3", "caves.txt")
	require.NoError(t, err)
	assert.Equal(t, "36\n", out)
}

func TestCountFromConfig(t *testing.T) {
	files := map[string]string{
		"caves.txt": "in-A\nA-out\nA-b\nb-out\n",
		"run.yaml":  "policy: single-visit\nstart: in\nend: out\n",
	}
	out, err := run(t, files, "count", "--config", "run.yaml", "caves.txt")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	// Flags win over the file.
	out, err = run(t, files, "count", "--config", "run.yaml", "--policy", "both", "caves.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestCountUsesCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	files := map[string]string{"caves.txt": referenceMap}

	for i := 0; i < 2; i++ {
		out, err := run(t, files, "count", "--cache-dir", dir, "caves.txt")
		require.NoError(t, err)
		assert.Equal(t, "10\n36\n", out, "run %d", i)
	}
}

func TestCountErrors(t *testing.T) {
	_, err := run(t, nil, "count", "missing.txt")
	require.Error(t, err)

	_, err = run(t, map[string]string{"bad.txt": "start-end\nno_dash\n"}, "count", "bad.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = run(t, map[string]string{"c.txt": referenceMap}, "count", "--policy", "thrice", "c.txt")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, map[string]string{"c.txt": "start-A\nA-b\n"}, "count", "c.txt")
	require.Error(t, err)
}

func TestPathsCommand(t *testing.T) {
	out, err := run(t, map[string]string{"caves.txt": referenceMap},
		"paths", "--policy", "single-visit", "caves.txt")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines, "start,A,c,A,b,A,end")

	out, err = run(t, map[string]string{"caves.txt": referenceMap}, "paths", "caves.txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# single-visit\n"))
	assert.Contains(t, out, "# one-extra-visit\n")
	assert.Equal(t, 10+36+2, strings.Count(out, "\n"))
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, map[string]string{"caves.txt": referenceMap}, "inspect", "caves.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "caves:       6 (1 big, 5 small)")
	assert.Contains(t, out, "passages:    7")
	assert.Contains(t, out, "stride:      4")
	assert.Contains(t, out, "reachable:   yes (2 passages min)")
	assert.Contains(t, out, "shortest:    start,A,end\n")
	assert.Contains(t, out, "layer 0      start\n")
	assert.Contains(t, out, "layer 1      A,b\n")
	assert.Contains(t, out, "layer 2      c,end,d\n")
	assert.Contains(t, out, "big-big:     none")

	out, err = run(t, map[string]string{"loop.txt": "start-A\nA-B\nB-end\n"}, "inspect", "loop.txt")
	require.ErrorIs(t, err, errBigBig)
	assert.Contains(t, out, "big-big:     A-B")

	out, err = run(t, map[string]string{"split.txt": "start-a\nend-b\n"}, "inspect", "split.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "reachable:   no")
	assert.NotContains(t, out, "shortest:")
	assert.Contains(t, out, "layer 1      a\n")
}
