package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var convertOutput string

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input.rs>",
	Short: "Convert a single Rust file to its semantic outline",
	Long: `Convert parses one Rust source file and prints its outline document.

Examples:
  # Print the outline to stdout
  semantic-rust convert src/main.rs

  # Write the outline to a file
  semantic-rust convert src/main.rs -o main.json
`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	conv := newConverter(cfg, logger)
	defer conv.Close()

	doc, err := conv.ConvertFile(context.Background(), args[0])
	if err != nil {
		return err
	}

	if convertOutput == "" {
		_, err = os.Stdout.Write(doc)
		return err
	}
	if err := os.WriteFile(convertOutput, doc, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
