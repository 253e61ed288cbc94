package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jihiggins/SemanticMergeRust/internal/discovery"
	"github.com/jihiggins/SemanticMergeRust/internal/watcher"
)

var watchOutDir string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-convert Rust files as they change",
	Long: `Watch monitors a directory tree and re-converts matching Rust files
whenever they change, writing outline documents under the output
directory the same way batch does. Each change triggers a full
conversion of the changed file.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOutDir, "output", "o", "outlines", "Output directory")
}

func runWatch(cmd *cobra.Command, args []string) error {
	rootDir := args[0]

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nStopping watcher...")
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	fd, err := discovery.New(rootDir, cfg.Paths.Code, cfg.Paths.Ignore)
	if err != nil {
		return err
	}

	conv := newConverter(cfg, logger)
	defer conv.Close()

	onChange := func(ctx context.Context, paths []string) {
		for _, path := range paths {
			if err := convertInto(ctx, conv.ConvertFile, rootDir, path, watchOutDir); err != nil {
				logger.Error("conversion failed", "input", path, "error", err)
				continue
			}
			logger.Info("converted", "input", path)
		}
	}

	w, err := watcher.New(rootDir, fd, onChange, logger)
	if err != nil {
		return err
	}
	w.Start(ctx)
	defer w.Stop()

	logger.Info("watching for changes", "dir", rootDir)
	<-ctx.Done()
	return nil
}
