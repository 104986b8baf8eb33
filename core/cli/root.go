package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level odoo-tools command.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "odoo-tools",
		Short: "Developer productivity tools for a large addon checkout",
		Long:  "Odoo-tools generates editor path-alias configuration and LLM-friendly codebase indexes for an Odoo-style addon checkout.",
	}

	cmd.Version = version

	return cmd
}
