package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jihiggins/SemanticMergeRust/internal/driver"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [ready-flag-file]",
	Short: "Run the driver protocol session on stdin/stdout",
	Long: `Serve speaks the line-oriented control protocol on stdin/stdout:
each request is three lines (input path, encoding, output path), answered
with OK once the outline document is written, or KO on failure. A line
reading "end" closes the session.

The optional ready-flag-file is created once the session is initialized,
signalling the host process that requests may be sent.

Diagnostics go to stderr only; stdout belongs to the protocol.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	conv := newConverter(cfg, logger)
	defer conv.Close()

	if len(args) == 1 {
		if err := driver.WriteReadyFlag(args[0]); err != nil {
			return err
		}
	}

	session := driver.NewSession(os.Stdin, os.Stdout, conv.ConvertFile, logger)
	return session.Run(ctx)
}
