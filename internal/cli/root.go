// Package cli implements the geoloccheck command line interface.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// exit codes reported by Execute.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// errCheckFailed marks a completed run in which at least one document
// failed conformance. The report has already been written when it is
// returned.
var errCheckFailed = errors.New("conformance check failed")

// errUsage marks invalid flags or arguments.
var errUsage = errors.New("usage error")

var rootCmd = &cobra.Command{
	Use:   "geoloccheck",
	Short: "Conformance checker for GSIP position-interchange extension types",
	Long: `geoloccheck validates XML instance documents against the two extension
types of the GSIP geospatial position-interchange extension profile:

  point-wgs84e-3d   PointType_WGS84E_3D, a 3D point restricted to the
                    fixed WGS84 ellipsoidal-height CRS with an exclusive
                    pos/coordinates choice
  geoloc-instance   GEOLOCInstanceType, a location-instance extension
                    with at most one remarks property

It enforces the constraints the schema expresses (fixed enumerations,
restricted choices, cardinality) more precisely than a generic schema
validator, and reports every violation found in one pass.

Exit Codes:
  0 - All documents conform
  1 - At least one document fails, or a general error occurred
  2 - CLI usage error (invalid arguments or flags)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return exitOK
	}
	if errors.Is(err, errCheckFailed) {
		return exitFail
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
	if errors.Is(err, errUsage) {
		return exitUsage
	}
	return exitFail
}

func init() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
}

// exactArgs wraps cobra.ExactArgs so argument-count mistakes map to the
// usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}
