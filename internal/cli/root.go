package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g. "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion records the build metadata displayed by --version. The main
// package calls this with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the eqslice CLI under ctx and returns the first command
// error.
//
// Logging:
//   - Default: info level (to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the command context and reachable from every
// subcommand via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "eqslice",
		Short: "eqslice splits convex polygons into equal-area regions",
		Long: `eqslice splits convex polygons into regions of equal area with straight
cuts parallel to a chosen edge, using one monotone sweep and closed-form cut
placement per region.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("eqslice %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSplitCmd())
	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(ctx)
}
