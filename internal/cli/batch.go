package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tqwhitetech/geoloc/internal/manifest"
)

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Check every document listed in a YAML manifest",
	Long: `Batch checks all documents listed in a YAML manifest. Relative
document paths resolve against the manifest's own directory.

Manifest format:
  documents:
    - path: point.xml
      type: point-wgs84e-3d
    - path: instance.xml
      type: geoloc-instance

All documents are checked even when earlier ones fail; the exit code is
1 if any document fails.`,
	Args: exactArgs(1),
	RunE: runBatch,
}

var batchStrict bool

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolVar(&batchStrict, "strict", false,
		"Strict derivation-by-restriction reading for all documents")
}

func runBatch(cmd *cobra.Command, args []string) error {
	m, err := manifest.LoadFile(args[0])
	if err != nil {
		return err
	}

	baseDir := filepath.Dir(args[0])
	checker := newChecker(batchStrict)

	failed := 0
	for _, entry := range m.Documents {
		path := entry.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if err := checkDocument(cmd, checker, path, entry.Type); err != nil {
			if !errors.Is(err, errCheckFailed) {
				return err
			}
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s validates\n", path)
	}

	if failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d documents fail to validate\n", failed, len(m.Documents))
		return errCheckFailed
	}
	return nil
}
