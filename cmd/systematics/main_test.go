package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/systematics/graph"
)

// run executes the CLI with a private config file so user and project configs
// on the host are ignored.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("build:\n  language: canonical\n"), 0644))

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "systematics version "+Version)
}

func TestBuild_JSON(t *testing.T) {
	out, err := run(t, "build", "--json", "3")
	require.NoError(t, err)

	var stats graph.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 1, stats.Orders)
	assert.Equal(t, 3, stats.Lines)
	assert.Equal(t, 3, stats.Tagged)
}

func TestBuild_Table(t *testing.T) {
	out, err := run(t, "build", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "canonical: orders [1 2]")
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "location")
}

func TestBuild_BadOrder(t *testing.T) {
	_, err := run(t, "build", "13")
	assert.Error(t, err)

	_, err = run(t, "build", "three")
	assert.ErrorContains(t, err, "not an order number or system name")

	_, err = run(t, "slice", "3", "first")
	assert.ErrorContains(t, err, "not a number")
}

func TestOrdersByName(t *testing.T) {
	out, err := run(t, "summary", "triad", "Ennead")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Triad")
	assert.Contains(t, lines[2], "Ennead")

	out, err = run(t, "build", "--json", "DYAD", "3")
	require.NoError(t, err)
	var stats graph.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 2, stats.Orders)

	out, err = run(t, "connectives", "triad", "1", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Act3")

	out, err = run(t, "slice", "tetrad", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Ideal")
}

func TestSummary(t *testing.T) {
	out, err := run(t, "summary", "3", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Triad")
	assert.Contains(t, out, "Dynamism")
	assert.Contains(t, out, "Impulses")
	assert.Contains(t, out, "Ennead")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[2], none), "order 9 has no designations: %q", lines[2])
}

func TestConnectives(t *testing.T) {
	out, err := run(t, "connectives", "3", "1", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Act3")
	assert.NotContains(t, out, "Act1")

	out, err = run(t, "connectives", "3")
	require.NoError(t, err)
	for _, act := range []string{"Act1", "Act2", "Act3"} {
		assert.Contains(t, out, act)
	}
}

func TestSlice(t *testing.T) {
	out, err := run(t, "slice", "3", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "loc_3_1")
	assert.Contains(t, out, "Will")
	assert.Contains(t, out, "Red")
	assert.Contains(t, out, "connectives: 2")

	_, err = run(t, "slice", "3", "4")
	assert.Error(t, err)
}

func TestQuery(t *testing.T) {
	out, err := run(t, "query", "--orders", "3", `kind == "term"`)
	require.NoError(t, err)
	assert.Contains(t, out, "term_3_1")
	assert.Contains(t, out, "term_3_3")
	assert.NotContains(t, out, "loc_3_1")

	out, err = run(t, "query", "--links", "--orders", "4", `tagged && tag == "Technical Power"`)
	require.NoError(t, err)
	assert.Contains(t, out, "conn_loc_4_2_loc_4_4")

	_, err = run(t, "query", "kind ==")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triad.nt")
	_, err := run(t, "export", "--orders", "3", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<https://systematics.dev/entity/term_3_1>")
	assert.NotContains(t, string(data), "@prefix", "extension selects N-Triples")

	out, err := run(t, "export", "--orders", "1", "--format", "turtle")
	require.NoError(t, err)
	assert.Contains(t, out, "@prefix systematics:")

	_, err = run(t, "export", "--format", "rdfxml")
	assert.Error(t, err)
}

func TestSnapshotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.db")
	out, err := run(t, "snapshot", "save", "--orders", "3,4", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "saved")

	out, err = run(t, "snapshot", "load", "--file", path)
	require.NoError(t, err)

	var stats graph.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 2, stats.Orders)

	_, err = run(t, "snapshot", "load")
	assert.Error(t, err)

	_, err = run(t, "snapshot", "load", "not-a-uuid")
	assert.Error(t, err)
}

func TestWatch_NeedsDirectory(t *testing.T) {
	_, err := run(t, "watch")
	assert.ErrorContains(t, err, "vocabulary directory")
}

func TestFlags_Language(t *testing.T) {
	out, err := run(t, "--language", "energy", "query", "--orders", "3", `kind == "character"`)
	require.NoError(t, err)
	assert.Contains(t, out, "Affirming")

	_, err = run(t, "--language", "klingon", "build")
	assert.Error(t, err)

	_, err = run(t, "--language", "society", "build")
	assert.Error(t, err, "society has no vocabulary")
}

func TestFlags_Layout(t *testing.T) {
	out, err := run(t, "--layout", "diagram", "slice", "3", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "(1.0000, 0.0000, 0.0000)")
}
