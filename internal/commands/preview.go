package commands

import (
	"github.com/spf13/cobra"

	"github.com/diogo/clippysay/internal/render"
)

// NewPreviewCmd creates the interactive preview command
func NewPreviewCmd(opts *sayOptions, deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [text]",
		Short: "Type a message and watch it rendered live",
		Long: `Opens an editor with a live preview of the rendered message.

  ctrl+b   toggle bubble-only
  ctrl+s   accept and print the result
  esc      quit without printing`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro, rep, copyOut, err := resolveOptions(cmd, opts)
			if err != nil {
				return err
			}

			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}

			result, err := deps.Preview(initial, ro)
			if err != nil {
				return err
			}
			if !result.Accepted {
				rep.verbosef("preview cancelled")
				return nil
			}

			return emit(cmd, render.Message(result.Text, result.Options), "", copyOut, rep, deps)
		},
	}
}
