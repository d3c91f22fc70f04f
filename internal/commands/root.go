// Package commands provides CLI commands for clippysay.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = NewRootCmd(NewDependencies())

// NewRootCmd creates the base command with all subcommands attached
func NewRootCmd(deps *Dependencies) *cobra.Command {
	deps = deps.withDefaults()
	opts := &sayOptions{}

	cmd := &cobra.Command{
		Use:   "clippysay [text]",
		Short: "Print a message in a speech bubble next to a mascot",
		Long: `clippysay frames your text in a speech bubble and draws it next to
a paperclip mascot, sized to the text in terminal columns.

Examples:
  clippysay "It looks like you're writing a letter."
  clippysay -w 40 -f notes.txt          Wrap a file's text at 40 columns
  fortune | clippysay                   Read the message from stdin
  echo '{"msg":"hi"}' | clippysay -j msg
  clippysay -b "just the bubble"
  clippysay preview                     Type and watch the output live`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "clippysay %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return runSay(cmd, args, opts, deps)
		},
	}

	cmd.PersistentFlags().IntVarP(&opts.wrap, "wrap", "w", 0, "Word wrap the message at this column (0 disables)")
	cmd.PersistentFlags().BoolVarP(&opts.bubbleOnly, "bubble-only", "b", false, "Print only the speech bubble")
	cmd.PersistentFlags().StringVarP(&opts.mascotFile, "mascot-file", "m", "", "Use the art in this file as the mascot")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Print details to stderr")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the message from a file")
	cmd.Flags().StringVarP(&opts.jsonPath, "json-path", "j", "", "Treat input as JSON and say the value at this path")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the result to a file")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy the result to the clipboard")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(NewMascotCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewPreviewCmd(opts, deps))

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reporter{w: os.Stderr}.warnf("%v", err)
		os.Exit(1)
	}
}
