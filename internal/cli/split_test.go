package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqslice/geojson"
	"github.com/katalvlaran/eqslice/geom"
	"github.com/katalvlaran/eqslice/partition"
)

// quietCtx returns a context whose logger swallows everything, keeping test
// output readable.
func quietCtx() context.Context {
	return withLogger(context.Background(), newLogger(io.Discard, log.FatalLevel))
}

// runSplitCmd executes a fresh split command with args and returns its
// stdout.
func runSplitCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newSplitCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(quietCtx())

	return buf.String(), err
}

// TestParseRect covers the dimension parser.
func TestParseRect(t *testing.T) {
	w, h, err := parseRect("4x2.5")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
	assert.Equal(t, 2.5, h)

	for _, bad := range []string{"", "4", "x2", "4x", "fourxtwo", "4×2"} {
		_, _, err := parseRect(bad)
		assert.Error(t, err, "parseRect(%q)", bad)
	}
}

// TestRenderText pins the text format down to the byte.
func TestRenderText(t *testing.T) {
	p := geom.Polygon{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4)}
	cuts := []geom.Segment{geom.Seg(geom.Pt(2, 0), geom.Pt(2, 4))}

	want := "polygon: 4 vertices, area 16\ncut 0: (2, 0)─(2, 4)\n"
	assert.Equal(t, want, string(renderText(p, cuts)))
}

// TestSplit_Rect quarters a 4×2 rectangle parallel to its bottom edge. All
// values stay exact, so the whole output can be matched literally.
func TestSplit_Rect(t *testing.T) {
	out, err := runSplitCmd(t, "--rect", "4x2", "-n", "4")
	require.NoError(t, err)

	want := "polygon: 4 vertices, area 8\n" +
		"cut 0: (4, 0.5)─(0, 0.5)\n" +
		"cut 1: (4, 1)─(0, 1)\n" +
		"cut 2: (4, 1.5)─(0, 1.5)\n"
	assert.Equal(t, want, out)
}

// TestSplit_GeoJSONRoundTrip feeds a GeoJSON file in and asks for GeoJSON
// out via -o, then decodes the written file to close the loop.
func TestSplit_GeoJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "plot.geojson")
	outPath := filepath.Join(dir, "cuts.geojson")
	require.NoError(t, os.WriteFile(in, []byte(`{
	  "type": "Feature",
	  "properties": {},
	  "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [4, 0], [4, 4], [0, 4], [0, 0]]]}
	}`), 0o644))

	stdout, err := runSplitCmd(t, in, "-n", "2", "-f", "geojson", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout, "-o must divert output away from stdout")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"LineString"`)

	p, err := geojson.Decode(data)
	require.NoError(t, err)
	assert.Len(t, p, 4)
}

// TestSplit_ConfigPrecedence checks the three-way precedence: explicit flag
// beats config file beats built-in default.
func TestSplit_ConfigPrecedence(t *testing.T) {
	cfg := writeConfig(t, `regions = 5`)

	// Config alone: 5 regions, 4 cuts.
	out, err := runSplitCmd(t, "--rect", "4x4", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "cut "))

	// Explicit -n beats the file: 3 regions, 2 cuts.
	out, err = runSplitCmd(t, "--rect", "4x4", "--config", cfg, "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "cut "))

	// No config, no flag: built-in default of 2 regions, 1 cut.
	out, err = runSplitCmd(t, "--rect", "4x4")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "cut "))
}

// TestSplit_Errors sweeps the refusal paths.
func TestSplit_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{}, "provide an input file"},
		{"both inputs", []string{"some.geojson", "--rect", "4x4"}, "not both"},
		{"bad format", []string{"--rect", "4x4", "-f", "yaml"}, "unknown format"},
		{"bad rect", []string{"--rect", "4"}, "expected WxH"},
		{"missing file", []string{"no-such-file.geojson"}, "no-such-file"},
		{"missing config", []string{"--rect", "4x4", "--config", "no-such.toml"}, "no-such.toml"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := runSplitCmd(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestSplit_NonConvexInput surfaces the partitioner's sentinel unchanged.
func TestSplit_NonConvexInput(t *testing.T) {
	in := filepath.Join(t.TempDir(), "chevron.geojson")
	require.NoError(t, os.WriteFile(in, []byte(`{"type": "Polygon",
	  "coordinates": [[[0, 0], [2, 1], [4, 0], [4, 3], [0, 3], [0, 0]]]}`), 0o644))

	_, err := runSplitCmd(t, in, "-n", "2", "-e", "4")
	assert.ErrorIs(t, err, partition.ErrNotConvex)
}
