package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eqslice/geom"
	"github.com/katalvlaran/eqslice/partition"
)

// samplePolygon returns the 9-vertex demonstration polygon: already in
// canonical position, with interpolated sweep events on both chains and tie
// events near the right end.
func samplePolygon() geom.Polygon {
	return geom.Polygon{
		geom.Pt(0, 0), geom.Pt(0.5, -1), geom.Pt(1.5, -1.5), geom.Pt(2.5, -1.5),
		geom.Pt(3.5, -1), geom.Pt(3.5, 3), geom.Pt(2.5, 3.5), geom.Pt(1, 3), geom.Pt(0, 1),
	}
}

// newDemoCmd creates the demo command: the sample polygon partitioned into
// every region count from 2 through 9.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Partition the sample polygon into 2 through 9 regions",
		Long: `Partition a fixed 9-vertex sample polygon into every region count from 2
through 9 and print the cut segments, one region count per line. Useful as a
smoke test and as a quick look at how cut positions move as the region count
grows.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runDemo(c)
		},
	}
}

// runDemo partitions the sample polygon for each region count and prints
// the cuts.
func runDemo(cmd *cobra.Command) error {
	logger := loggerFromContext(cmd.Context())

	p := samplePolygon()
	logger.Debugf("sample polygon: %d vertices, area %g", len(p), p.Area())

	out := cmd.OutOrStdout()
	for n := 2; n <= 9; n++ {
		cuts, err := partition.Partition(p, n, nil)
		if err != nil {
			return fmt.Errorf("partition into %d regions: %w", n, err)
		}
		fmt.Fprintf(out, "n=%d: %v\n", n, cuts)
	}

	return nil
}
