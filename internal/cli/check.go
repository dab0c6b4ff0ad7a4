package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	geoloc "github.com/tqwhitetech/geoloc"
)

var checkCmd = &cobra.Command{
	Use:   "check --type <type> <document.xml>",
	Short: "Check one XML document against an extension type",
	Long: `Check validates a single XML document against one of the declared
extension types and reports every violation found, in document order.

Examples:
  # Check a point geometry
  geoloccheck check --type point-wgs84e-3d point.xml

  # Check a location instance under the strict derivation reading
  geoloccheck check --type geoloc-instance --strict instance.xml`,
	Args: exactArgs(1),
	RunE: runCheck,
}

type checkFlagValues struct {
	typeName string
	strict   bool
}

var checkFlags checkFlagValues

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.typeName, "type", "t", "",
		"Extension type to check against: point-wgs84e-3d or geoloc-instance (required)")
	checkCmd.Flags().BoolVar(&checkFlags.strict, "strict", false,
		"Strict derivation-by-restriction reading: reject base-type content\n"+
			"the restriction does not re-permit")
}

func runCheck(cmd *cobra.Command, args []string) error {
	typeName, err := geoloc.ParseTypeName(checkFlags.typeName)
	if err != nil {
		return fmt.Errorf("%w: --type %q (want point-wgs84e-3d or geoloc-instance)", errUsage, checkFlags.typeName)
	}

	checker := newChecker(checkFlags.strict)
	if err := checkDocument(cmd, checker, args[0], typeName); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s validates\n", args[0])
	return nil
}

func newChecker(strict bool) *geoloc.Checker {
	var opts []geoloc.Option
	if strict {
		opts = append(opts, geoloc.WithStrictDerivation())
	}
	return geoloc.NewChecker(opts...)
}

// checkDocument checks one file, writing the violation report to stderr
// on failure and returning errCheckFailed.
func checkDocument(cmd *cobra.Command, checker *geoloc.Checker, path string, typeName geoloc.TypeName) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	verdict, err := checker.CheckReader(f, typeName)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	if verdict.OK {
		return nil
	}

	stderr := cmd.ErrOrStderr()
	for _, v := range verdict.Violations {
		fmt.Fprintln(stderr, v.Error())
	}
	fmt.Fprintf(stderr, "%s fails to validate\n", path)
	return errCheckFailed
}
