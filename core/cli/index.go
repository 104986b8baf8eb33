package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// IndexOptions holds the parsed flags and arguments for "index".
type IndexOptions struct {
	Root       string
	Output     string
	Excludes   []string
	SimpleList bool
	InputList  string
}

// IndexRunFunc is the function signature for the index command handler.
// It is injected by the wiring layer (cmd/odoo-tools/main.go).
type IndexRunFunc func(ctx context.Context, opts IndexOptions) error

// NewIndexCmd creates the "index" subcommand.
func NewIndexCmd(runFunc IndexRunFunc) *cobra.Command {
	var opts IndexOptions

	cmd := &cobra.Command{
		Use:   "index [root]",
		Short: "Create an LLM-friendly index of a codebase",
		Long: "Index the codebase rooted at the given directory (default: current directory) into a single " +
			"markdown document, or into a plain path list with --simple-list. An input list restricts the " +
			"index to the paths it names.",
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Root = args[0]
			}
			return validateIndexFlags(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	opts.Root = "."
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file path (default codebase_index.md)")
	cmd.Flags().StringArrayVarP(&opts.Excludes, "exclude", "e", nil, "Additional patterns to exclude (can be used multiple times)")
	cmd.Flags().BoolVar(&opts.SimpleList, "simple-list", false, "Output a simple list of all files and folders, one per line")
	cmd.Flags().StringVar(&opts.InputList, "input-list", "", "Path to a file listing the files/folders to index, one per line")

	return cmd
}

func validateIndexFlags(opts IndexOptions) error {
	info, err := os.Stat(opts.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("root does not exist: %s", opts.Root)
		}
		return fmt.Errorf("cannot access root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root is not a directory: %s", opts.Root)
	}

	if opts.InputList != "" {
		if _, err := os.Stat(opts.InputList); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("input list does not exist: %s", opts.InputList)
			}
			return fmt.Errorf("cannot access input list: %w", err)
		}
	}

	return nil
}
