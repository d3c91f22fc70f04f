package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/diogo/clippysay/pkg/clippy"
)

// NewMascotCmd creates the mascot command
func NewMascotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mascot",
		Short: "Print the built-in mascot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), clippy.Mascot())
			return err
		},
	}
}
