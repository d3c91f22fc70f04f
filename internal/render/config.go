package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/diogo/clippysay/internal/config"
	apperrors "github.com/diogo/clippysay/internal/errors"
	"github.com/diogo/clippysay/pkg/clippy"
)

// Environment variables that override config file values
const (
	EnvWrap   = "CLIPPYSAY_WRAP"
	EnvMascot = "CLIPPYSAY_MASCOT"
)

// Settings holds raw, unvalidated option values together with the name of
// the source each one came from. Later sources replace earlier ones; only the
// values left standing are checked by Load.
type Settings struct {
	Wrap       string
	WrapSource string
	MascotPath string
	BubbleOnly bool
}

// ResolveSettings starts from the config file values and applies environment
// overrides. Nothing is parsed or read from disk yet.
func ResolveSettings(cfg config.Config) Settings {
	s := Settings{
		Wrap:       strconv.Itoa(cfg.Wrap),
		WrapSource: "wrap",
		MascotPath: cfg.MascotPath,
	}

	if v := os.Getenv(EnvWrap); v != "" {
		s.Wrap = v
		s.WrapSource = EnvWrap
	}
	if v := os.Getenv(EnvMascot); v != "" {
		s.MascotPath = v
	}

	return s
}

// WithWrap returns Settings with the wrap column set by source.
func (s Settings) WithWrap(width int, source string) Settings {
	s.Wrap = strconv.Itoa(width)
	s.WrapSource = source
	return s
}

// WithMascotPath returns Settings with the specified mascot file.
func (s Settings) WithMascotPath(path string) Settings {
	s.MascotPath = path
	return s
}

// WithBubbleOnly returns Settings with the mascot enabled/disabled.
func (s Settings) WithBubbleOnly(enabled bool) Settings {
	s.BubbleOnly = enabled
	return s
}

// Load validates the winning values and builds Options. The mascot file is
// not read when only the bubble is drawn.
func (s Settings) Load() (Options, error) {
	opts := DefaultOptions().WithBubbleOnly(s.BubbleOnly)

	n, err := strconv.Atoi(strings.TrimSpace(s.Wrap))
	if err != nil || n < 0 {
		return opts, apperrors.NewConfigError(s.WrapSource, "must be a non-negative number")
	}
	opts.Wrap = n

	if s.BubbleOnly {
		return opts, nil
	}

	mascot, err := LoadMascot(s.MascotPath)
	if err != nil {
		return opts, err
	}
	opts.Mascot = mascot

	return opts, nil
}

// LoadOptionsFromConfig loads render options from user configuration.
// Environment variables take precedence over config file values.
func LoadOptionsFromConfig() (Options, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return DefaultOptions(), err
	}
	return ResolveSettings(cfg).Load()
}

// LoadMascot reads mascot art from path. An empty path selects the built-in
// mascot.
func LoadMascot(path string) (string, error) {
	if path == "" {
		return clippy.Mascot(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read mascot: %w", err)
	}

	art := Normalize(string(data))
	if strings.TrimSpace(art) == "" {
		return "", apperrors.NewMascotError(path, "file is empty")
	}
	return art, nil
}
