package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eqslice/builder"
	"github.com/katalvlaran/eqslice/frame"
	"github.com/katalvlaran/eqslice/geojson"
	"github.com/katalvlaran/eqslice/geom"
	"github.com/katalvlaran/eqslice/partition"
)

// Output formats accepted by --format.
const (
	formatText    = "text"
	formatGeoJSON = "geojson"
)

// splitOpts holds the command-line flags for the split command.
type splitOpts struct {
	input     string  // GeoJSON input path (positional argument)
	rect      string  // WxH rectangle instead of an input file
	edge      int     // index of the edge the cuts run parallel to
	regions   int     // number of equal-area regions
	tolerance float64 // equal-area tolerance, fraction of total area
	format    string  // output format: text or geojson
	output    string  // output path (stdout if empty)
	config    string  // TOML config path
}

// newSplitCmd creates the split command.
//
// Default options:
//   - regions: 2
//   - edge: 0 (the first edge of the decoded ring)
//   - format: text
func newSplitCmd() *cobra.Command {
	opts := splitOpts{regions: 2, format: formatText}

	cmd := &cobra.Command{
		Use:   "split [input.geojson]",
		Short: "Split a convex polygon into equal-area regions",
		Long: `Split a convex polygon into regions of equal area with straight cuts
parallel to a chosen edge.

The polygon comes from a GeoJSON file (FeatureCollection, Feature, or bare
geometry; the first polygonal outer ring wins) or from --rect WxH. Edge
indices refer to the decoded counter-clockwise ring: edge i connects vertex i
to vertex i+1.

Examples:
  eqslice split field.geojson -n 4                 # quarter a field
  eqslice split field.geojson -n 3 -e 2 -f geojson # cuts parallel to edge 2
  eqslice split --rect 4x2 -n 4                    # no input file needed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			return runSplit(c, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.rect, "rect", "", "use a WxH rectangle instead of an input file")
	cmd.Flags().IntVarP(&opts.regions, "regions", "n", opts.regions, "number of equal-area regions")
	cmd.Flags().IntVarP(&opts.edge, "edge", "e", 0, "index of the edge the cuts run parallel to")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 0, "equal-area tolerance as a fraction of total area (0 = library default)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text or geojson")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file with defaults")

	return cmd
}

// runSplit executes the full pipeline: load, canonicalize, partition, map
// back, render.
func runSplit(cmd *cobra.Command, opts *splitOpts) error {
	logger := loggerFromContext(cmd.Context())

	if opts.config != "" {
		cfg, err := loadConfig(opts.config)
		if err != nil {
			return err
		}
		opts.applyConfig(cmd, cfg)
		logger.Debugf("config %s applied", opts.config)
	}
	if opts.format != formatText && opts.format != formatGeoJSON {
		return fmt.Errorf("unknown format %q (want %q or %q)", opts.format, formatText, formatGeoJSON)
	}

	p, err := readPolygon(opts)
	if err != nil {
		return err
	}
	logger.Debugf("polygon loaded: %d vertices, area %g", len(p), p.Area())

	canonical, tr, err := frame.ToCanonical(p, opts.edge, nil)
	if err != nil {
		return err
	}
	logger.Debugf("canonicalized around edge %d (rotated by %.4f rad)", opts.edge, -tr.Angle())

	popts := partition.DefaultOptions()
	if opts.tolerance != 0 {
		popts.Tolerance = opts.tolerance
	}
	cuts, err := partition.Partition(canonical, opts.regions, &popts)
	if err != nil {
		return err
	}
	back := frame.FromCanonical(cuts, tr)
	logger.Infof("split into %d regions with %d cuts", opts.regions, len(back))

	out, err := render(opts.format, p, back)
	if err != nil {
		return err
	}

	return writeOutput(cmd, opts.output, out)
}

// applyConfig fills flags the user left untouched from the config file.
func (o *splitOpts) applyConfig(cmd *cobra.Command, cfg config) {
	f := cmd.Flags()
	if !f.Changed("regions") && cfg.Regions != 0 {
		o.regions = cfg.Regions
	}
	if !f.Changed("edge") && cfg.Edge != 0 {
		o.edge = cfg.Edge
	}
	if !f.Changed("tolerance") && cfg.Tolerance != 0 {
		o.tolerance = cfg.Tolerance
	}
	if !f.Changed("format") && cfg.Format != "" {
		o.format = cfg.Format
	}
}

// readPolygon loads the input polygon from --rect or the input file.
func readPolygon(opts *splitOpts) (geom.Polygon, error) {
	switch {
	case opts.rect != "" && opts.input != "":
		return nil, errors.New("provide either an input file or --rect, not both")
	case opts.rect != "":
		w, h, err := parseRect(opts.rect)
		if err != nil {
			return nil, err
		}

		return builder.Rectangle(w, h)
	case opts.input != "":
		data, err := os.ReadFile(opts.input)
		if err != nil {
			return nil, err
		}

		return geojson.Decode(data)
	default:
		return nil, errors.New("provide an input file or --rect WxH")
	}
}

// parseRect parses a WxH dimension string such as "4x2" or "10.5x3".
func parseRect(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --rect %q: expected WxH", s)
	}
	if w, err = strconv.ParseFloat(ws, 64); err != nil {
		return 0, 0, fmt.Errorf("invalid --rect width %q: %w", ws, err)
	}
	if h, err = strconv.ParseFloat(hs, 64); err != nil {
		return 0, 0, fmt.Errorf("invalid --rect height %q: %w", hs, err)
	}

	return w, h, nil
}

// render serializes the result in the requested format.
func render(format string, p geom.Polygon, cuts []geom.Segment) ([]byte, error) {
	if format == formatGeoJSON {
		return geojson.Encode(p, cuts)
	}

	return renderText(p, cuts), nil
}

// renderText writes one line per cut after a polygon summary.
func renderText(p geom.Polygon, cuts []geom.Segment) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "polygon: %d vertices, area %g\n", len(p), p.Area())
	for i, s := range cuts {
		fmt.Fprintf(&b, "cut %d: %v\n", i, s)
	}

	return []byte(b.String())
}

// writeOutput sends data to the -o file or the command's stdout.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
