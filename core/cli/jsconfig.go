package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// JsconfigOptions holds the parsed flags and arguments for "jsconfig".
type JsconfigOptions struct {
	BaseDir    string
	Output     string
	ExtraRoots []string
}

// JsconfigRunFunc is the function signature for the jsconfig command
// handler. It is injected by the wiring layer (cmd/odoo-tools/main.go).
type JsconfigRunFunc func(ctx context.Context, opts JsconfigOptions) error

// NewJsconfigCmd creates the "jsconfig" subcommand.
func NewJsconfigCmd(runFunc JsconfigRunFunc) *cobra.Command {
	var opts JsconfigOptions

	cmd := &cobra.Command{
		Use:   "jsconfig [extra-roots...]",
		Short: "Generate the editor path-alias configuration",
		Long: "Generate jsconfig.json with an @module alias for every addon that ships static/src sources. " +
			"The community/addons and enterprise roots are always scanned; any extra addon roots passed as " +
			"arguments are scanned after them.",
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateJsconfigFlags(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ExtraRoots = args
			return runFunc(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.BaseDir, "base-dir", ".", "Checkout root containing community/addons and enterprise")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output path (default <base-dir>/jsconfig.json)")

	return cmd
}

func validateJsconfigFlags(opts JsconfigOptions) error {
	info, err := os.Stat(opts.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("base dir does not exist: %s", opts.BaseDir)
		}
		return fmt.Errorf("cannot access base dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("base dir is not a directory: %s", opts.BaseDir)
	}

	return nil
}
