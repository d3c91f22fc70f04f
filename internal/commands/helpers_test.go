package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/diogo/clippysay/internal/config"
	"github.com/diogo/clippysay/internal/render"
	"github.com/diogo/clippysay/internal/tui"
)

// isolate points config and env overrides at an empty temp directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.HomeEnv, dir)
	t.Setenv(render.EnvWrap, "")
	t.Setenv(render.EnvMascot, "")
	return dir
}

// fakeClipboard records what was copied
type fakeClipboard struct {
	copied string
	err    error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = text
	return nil
}

func testDeps(clip *fakeClipboard, preview PreviewFunc) *Dependencies {
	if preview == nil {
		preview = func(string, render.Options) (tui.PreviewResult, error) {
			return tui.PreviewResult{}, nil
		}
	}
	return &Dependencies{Clipboard: clip.WriteAll, Preview: preview}
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes a fresh root command with the given stdin and arguments
func run(deps *Dependencies, stdin string, args ...string) result {
	cmd := NewRootCmd(deps)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}
