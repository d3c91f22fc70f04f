package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"golang.org/x/term"

	"github.com/diogo/clippysay/internal/config"
	apperrors "github.com/diogo/clippysay/internal/errors"
	"github.com/diogo/clippysay/internal/render"
	"github.com/diogo/clippysay/pkg/clippy"
)

// sayOptions holds the flag values of the root command
type sayOptions struct {
	wrap       int
	bubbleOnly bool
	mascotFile string
	verbose    bool
	file       string
	jsonPath   string
	output     string
	copy       bool
}

// resolveOptions merges config file, environment and flags, in increasing
// order of precedence. Only the values that win are validated, so a flag can
// stand in for a broken config or environment value.
func resolveOptions(cmd *cobra.Command, opts *sayOptions) (render.Options, reporter, bool, error) {
	cfg, err := config.LoadConfig()
	rep := reporter{w: cmd.ErrOrStderr(), verbose: opts.verbose || cfg.Verbose}
	if err != nil {
		rep.warnf("Ignoring config file: %v", err)
	}

	settings := render.ResolveSettings(cfg).WithBubbleOnly(opts.bubbleOnly)
	if cmd.Flags().Changed("wrap") {
		settings = settings.WithWrap(opts.wrap, "--wrap")
	}
	if opts.mascotFile != "" {
		settings = settings.WithMascotPath(opts.mascotFile)
	}

	ro, err := settings.Load()
	if err != nil {
		return ro, rep, false, err
	}

	return ro, rep, opts.copy || cfg.CopyToClipboard, nil
}

// runSay renders the message and writes it out
func runSay(cmd *cobra.Command, args []string, opts *sayOptions, deps *Dependencies) error {
	ro, rep, copyOut, err := resolveOptions(cmd, opts)
	if err != nil {
		return err
	}

	text, source, err := readInput(cmd, args, opts)
	if errors.Is(err, apperrors.ErrNoInput) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}
	rep.verbosef("read %d bytes from %s", len(text), source)

	if opts.jsonPath != "" {
		text, err = extractJSON(text, opts.jsonPath)
		if err != nil {
			return err
		}
		rep.verbosef("selected %q from JSON input", opts.jsonPath)
	}

	out := render.Message(text, ro)
	rep.verbosef("wrap=%d bubble-only=%t, output is %d rows, %d columns wide",
		ro.Wrap, ro.BubbleOnly, clippy.LineCount(out), clippy.LongestLineWidth(out))

	return emit(cmd, out, opts.output, copyOut, rep, deps)
}

// readInput returns the message text from --file, the argument, or piped
// stdin, in that order. ErrNoInput means stdin is a terminal and nothing
// else was given.
func readInput(cmd *cobra.Command, args []string, opts *sayOptions) (text, source string, err error) {
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", "", apperrors.NewInputError("file "+opts.file, err)
		}
		return string(data), opts.file, nil
	}

	if len(args) > 0 {
		return args[0], "argument", nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", "", apperrors.ErrNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", "", apperrors.NewInputError("stdin", err)
	}
	return string(data), "stdin", nil
}

// extractJSON selects the value at path from JSON input. Arrays are said
// one element per line.
func extractJSON(input, path string) (string, error) {
	if !gjson.Valid(input) {
		return "", apperrors.NewInputError("JSON input", errors.New("invalid JSON"))
	}

	result := gjson.Get(input, path)
	if !result.Exists() {
		return "", apperrors.NewJSONPathError(path)
	}

	if result.IsArray() {
		var lines []string
		for _, item := range result.Array() {
			lines = append(lines, item.String())
		}
		return strings.Join(lines, "\n"), nil
	}
	return result.String(), nil
}

// emit writes the rendered output to a file or stdout and optionally copies
// it to the clipboard. Output always ends with exactly one newline.
func emit(cmd *cobra.Command, out, outputPath string, copyOut bool, rep reporter, deps *Dependencies) error {
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	if copyOut {
		if err := deps.Clipboard(out); err != nil {
			// Log warning but don't fail
			rep.warnf("Failed to copy to clipboard: %v", err)
		} else {
			rep.successf("Copied to clipboard")
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		rep.successf("Saved to %s", outputPath)
		return nil
	}

	_, err := io.WriteString(cmd.OutOrStdout(), out)
	return err
}
