package catalog_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kevinlinxc/pokerogue-biomes/catalog"
	"github.com/kevinlinxc/pokerogue-biomes/core"
)

func quiet() catalog.Option {
	return catalog.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDefault_Biomes(t *testing.T) {
	c, err := catalog.Default(context.Background(), quiet())
	require.NoError(t, err)

	assert.Equal(t, "pokerogue", c.Name)
	assert.Equal(t, "Town", c.Root)
	assert.Equal(t, catalog.SourceEmbedded, c.Source)
	assert.Equal(t, 34, c.Graph.NodeCount())
	assert.Equal(t, 65, c.Graph.EdgeCount())

	nodes := c.Graph.Nodes()
	assert.Equal(t, "Abyss", nodes[0])
	assert.Equal(t, "Wasteland", nodes[len(nodes)-1])

	var order []string
	for _, e := range c.Graph.Neighbors("Plains") {
		order = append(order, e.To)
	}
	assert.Equal(t, []string{"Grassy Field", "Metropolis", "Lake"}, order)

	nb := c.Graph.Neighbors("Mountain")
	require.Len(t, nb, 3)
	assert.Equal(t, "Space", nb[0].To)
	assert.InDelta(t, 0.33, nb[0].Probability, 1e-12)
}

func TestDefault_Validates(t *testing.T) {
	c, err := catalog.Default(context.Background(), quiet())
	require.NoError(t, err)

	rep, err := c.Validate()
	require.NoError(t, err)
	assert.True(t, rep.OK(), "violations: %v", rep.Violations)
	assert.Equal(t, 34, rep.Visited)
}

func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not yaml", "version: [1"},
		{"wrong version", "version: 2\nroot: A\nbiomes: [A]\n"},
		{"missing root", "version: 1\nbiomes: [A]\n"},
		{"no biomes", "version: 1\nroot: A\n"},
		{"duplicate biome", "version: 1\nroot: A\nbiomes: [A, A]\n"},
		{"empty biome", "version: 1\nroot: A\nbiomes: [A, '']\n"},
		{"transitions not a mapping", "version: 1\nroot: A\nbiomes: [A]\ntransitions: [A]\n"},
		{"duplicate source", "version: 1\nroot: A\nbiomes: [A, B]\ntransitions:\n  A:\n    - {to: B, probability: 1}\n  A:\n    - {to: B, probability: 1}\n"},
		{"zero probability", "version: 1\nroot: A\nbiomes: [A, B]\ntransitions:\n  A:\n    - {to: B, probability: 0}\n"},
		{"probability above one", "version: 1\nroot: A\nbiomes: [A, B]\ntransitions:\n  A:\n    - {to: B, probability: 1.5}\n"},
		{"missing target", "version: 1\nroot: A\nbiomes: [A, B]\ntransitions:\n  A:\n    - {probability: 1}\n"},
		{"self loop", "version: 1\nroot: A\nbiomes: [A]\ntransitions:\n  A:\n    - {to: A, probability: 1}\n"},
		{"parallel edge", "version: 1\nroot: A\nbiomes: [A, B]\ntransitions:\n  A:\n    - {to: B, probability: 1}\n    - {to: B, probability: 0.5}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Parse(context.Background(), []byte(tc.doc), quiet())
			require.ErrorIs(t, err, catalog.ErrInvalidDocument)
		})
	}
}

func TestParse_LoopsOption(t *testing.T) {
	doc := "version: 1\nroot: A\nbiomes: [A]\ntransitions:\n  A:\n    - {to: A, probability: 0.5}\n"
	c, err := catalog.Parse(context.Background(), []byte(doc), quiet(), catalog.WithGraphOptions(core.WithLoops()))
	require.NoError(t, err)
	assert.True(t, c.Graph.Looped())
}

// A structurally defective graph still loads; Validate reports it.
func TestParse_DefectiveGraphLoads(t *testing.T) {
	doc := `
version: 1
root: A
biomes: [A, B, C]
transitions:
  A:
    - {to: B, probability: 1}
    - {to: Z, probability: 0.5}
`
	c, err := catalog.Parse(context.Background(), []byte(doc), quiet())
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceInline, c.Source)

	rep, err := c.Validate()
	require.NoError(t, err)
	assert.False(t, rep.OK())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, catalog.DefaultYAML(), 0o600))

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	c, err := catalog.Load(context.Background(), path, catalog.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, path, c.Source)
	assert.Equal(t, 34, c.Graph.NodeCount())
	assert.Contains(t, buf.String(), `"msg":"biome catalog loaded"`)
	assert.Contains(t, buf.String(), `"edge_count":65`)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := catalog.Load(context.Background(), filepath.Join(dir, "missing.yaml"), quiet())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = catalog.Load(context.Background(), dir, quiet())
	require.Error(t, err)

	big := filepath.Join(dir, "big.yaml")
	require.NoError(t, os.WriteFile(big, []byte(strings.Repeat("#", catalog.MaxYAMLFileSize+1)), 0o600))
	_, err = catalog.Load(context.Background(), big, quiet())
	assert.ErrorIs(t, err, catalog.ErrFileTooLarge)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	tiny := "version: 1\nname: tiny\nroot: A\nbiomes: [A, B]\ntransitions:\n  A:\n    - {to: B, probability: 1}\n  B:\n    - {to: A, probability: 1}\n"
	require.NoError(t, os.WriteFile(path, []byte(tiny), 0o600))

	t.Setenv(catalog.EnvGraphPath, "")
	c, err := catalog.Resolve(context.Background(), "", quiet())
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceEmbedded, c.Source)

	t.Setenv(catalog.EnvGraphPath, path)
	c, err = catalog.Resolve(context.Background(), "", quiet())
	require.NoError(t, err)
	assert.Equal(t, "tiny", c.Name)

	c, err = catalog.Resolve(context.Background(), path, quiet())
	require.NoError(t, err)
	assert.Equal(t, path, c.Source)

	t.Setenv(catalog.EnvGraphPath, filepath.Join(dir, "missing.yaml"))
	_, err = catalog.Resolve(context.Background(), "", quiet())
	assert.Error(t, err)
}

func TestAdjacency_RoundTrip(t *testing.T) {
	var doc catalog.Document
	require.NoError(t, yaml.Unmarshal(catalog.DefaultYAML(), &doc))
	assert.Equal(t, 65, doc.Transitions.EdgeCount())

	out, err := yaml.Marshal(&doc)
	require.NoError(t, err)

	var again catalog.Document
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, doc, again)
}
