package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jihiggins/SemanticMergeRust/internal/discovery"
)

var (
	batchOutDir string
	batchQuiet  bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Convert every matching Rust file under a directory",
	Long: `Batch discovers Rust source files using the configured glob patterns
and writes one outline document per file, mirroring the directory layout
under the output directory with a .json extension.

Examples:
  # Convert a crate into ./outlines
  semantic-rust batch ./my-crate -o outlines

  # Without the progress bar
  semantic-rust batch ./my-crate -o outlines --quiet
`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutDir, "output", "o", "outlines", "Output directory")
	batchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "Disable the progress bar")
}

func runBatch(cmd *cobra.Command, args []string) error {
	rootDir := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	fd, err := discovery.New(rootDir, cfg.Paths.Code, cfg.Paths.Ignore)
	if err != nil {
		return err
	}
	files, err := fd.Discover()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No matching files found")
		return nil
	}

	conv := newConverter(cfg, logger)
	defer conv.Close()

	var bar *progressbar.ProgressBar
	if !batchQuiet {
		bar = progressbar.Default(int64(len(files)), "converting")
	}

	ctx := context.Background()
	failed := 0
	for _, file := range files {
		if err := convertInto(ctx, conv.ConvertFile, rootDir, file, batchOutDir); err != nil {
			logger.Error("conversion failed", "input", file, "error", err)
			failed++
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// convertInto converts one file and writes its document under outDir,
// mirroring the path relative to rootDir.
func convertInto(ctx context.Context, convert func(context.Context, string) ([]byte, error), rootDir, file, outDir string) error {
	doc, err := convert(ctx, file)
	if err != nil {
		return err
	}

	relPath, err := filepath.Rel(rootDir, file)
	if err != nil {
		relPath = filepath.Base(file)
	}
	outPath := filepath.Join(outDir, strings.TrimSuffix(relPath, filepath.Ext(relPath))+".json")

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, doc, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
