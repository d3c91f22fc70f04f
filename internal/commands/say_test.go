package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diogo/clippysay/internal/config"
	apperrors "github.com/diogo/clippysay/internal/errors"
	"github.com/diogo/clippysay/pkg/clippy"
)

func TestSay_Sources(t *testing.T) {
	dir := isolate(t)

	msgFile := filepath.Join(dir, "msg.txt")
	if err := os.WriteFile(msgFile, []byte("from a file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"argument", "", []string{"hello"}, clippy.Say("hello") + "\n"},
		{"stdin", "from a pipe\n", nil, clippy.Say("from a pipe\n") + "\n"},
		{"empty stdin", "", nil, clippy.Say("") + "\n"},
		{"file wins over argument", "", []string{"-f", msgFile, "ignored"}, clippy.Say("from a file\n") + "\n"},
		{"argument wins over stdin", "piped", []string{"arg"}, clippy.Say("arg") + "\n"},
		{"bubble only", "", []string{"-b", "x"}, clippy.Bubble("x")},
		{"wrap", "", []string{"-b", "-w", "5", "hello world"}, clippy.Bubble("hello\nworld")},
		{"tabs expanded", "", []string{"-b", "\tx"}, clippy.Bubble("    x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(testDeps(&fakeClipboard{}, nil), tt.stdin, tt.args...)
			if res.err != nil {
				t.Fatalf("unexpected error: %v", res.err)
			}
			if res.stdout != tt.want {
				t.Errorf("stdout mismatch\ngot:\n%s\nwant:\n%s", res.stdout, tt.want)
			}
		})
	}
}

func TestSay_OutputEndsWithOneNewline(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{{"a"}, {"-b", "a"}} {
		res := run(testDeps(&fakeClipboard{}, nil), "", args...)
		if !strings.HasSuffix(res.stdout, "\n") || strings.HasSuffix(res.stdout, "\n\n") {
			t.Errorf("args %v: output should end with exactly one newline, got %q", args, res.stdout)
		}
	}
}

func TestSay_MissingFile(t *testing.T) {
	dir := isolate(t)

	res := run(testDeps(&fakeClipboard{}, nil), "", "-f", filepath.Join(dir, "nope.txt"))
	if !errors.Is(res.err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", res.err)
	}
	var inputErr *apperrors.InputError
	if !errors.As(res.err, &inputErr) {
		t.Errorf("expected an InputError, got %T", res.err)
	}
}

func TestSay_NegativeWrap(t *testing.T) {
	isolate(t)

	res := run(testDeps(&fakeClipboard{}, nil), "", "--wrap=-2", "x")
	if !errors.Is(res.err, apperrors.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", res.err)
	}
}

func TestSay_JSONPath(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		stdin   string
		path    string
		want    string
		wantErr error
	}{
		{"nested field", `{"msg":{"text":"hi"}}`, "msg.text", clippy.Say("hi") + "\n", nil},
		{"number", `{"count":42}`, "count", clippy.Say("42") + "\n", nil},
		{"array joined by lines", `{"lines":["a","b"]}`, "lines", clippy.Say("a\nb") + "\n", nil},
		{"missing path", `{"msg":"hi"}`, "nope", "", apperrors.ErrJSONPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(testDeps(&fakeClipboard{}, nil), tt.stdin, "-j", tt.path)
			if tt.wantErr != nil {
				if !errors.Is(res.err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, res.err)
				}
				return
			}
			if res.err != nil {
				t.Fatalf("unexpected error: %v", res.err)
			}
			if res.stdout != tt.want {
				t.Errorf("stdout mismatch\ngot:\n%s\nwant:\n%s", res.stdout, tt.want)
			}
		})
	}
}

func TestExtractJSON_Invalid(t *testing.T) {
	_, err := extractJSON("{broken", "a")
	var inputErr *apperrors.InputError
	if !errors.As(err, &inputErr) {
		t.Errorf("expected an InputError for invalid JSON, got %v", err)
	}
}

func TestSay_OutputFile(t *testing.T) {
	dir := isolate(t)
	outPath := filepath.Join(dir, "out.txt")

	res := run(testDeps(&fakeClipboard{}, nil), "", "-o", outPath, "saved")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.stdout != "" {
		t.Errorf("stdout should be empty when writing to a file, got %q", res.stdout)
	}
	if !strings.Contains(res.stderr, "Saved to "+outPath) {
		t.Errorf("stderr = %q, want a saved message", res.stderr)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != clippy.Say("saved")+"\n" {
		t.Errorf("file content mismatch:\n%s", data)
	}
}

func TestSay_Copy(t *testing.T) {
	isolate(t)

	clip := &fakeClipboard{}
	res := run(testDeps(clip, nil), "", "-c", "copy me")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if clip.copied != res.stdout {
		t.Error("clipboard should receive exactly what was printed")
	}
	if !strings.Contains(res.stderr, "Copied to clipboard") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestSay_CopyFromConfig(t *testing.T) {
	isolate(t)
	if err := config.SaveConfig(config.Config{CopyToClipboard: true}); err != nil {
		t.Fatal(err)
	}

	clip := &fakeClipboard{}
	res := run(testDeps(clip, nil), "", "x")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if clip.copied == "" {
		t.Error("copy_to_clipboard in config should copy the output")
	}
}

func TestSay_CopyFailureIsAWarning(t *testing.T) {
	isolate(t)

	clip := &fakeClipboard{err: errors.New("no display")}
	res := run(testDeps(clip, nil), "", "-c", "x")
	if res.err != nil {
		t.Fatalf("clipboard failure should not fail the command: %v", res.err)
	}
	if res.stdout == "" {
		t.Error("output should still be printed")
	}
	if !strings.Contains(res.stderr, "Failed to copy to clipboard: no display") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestSay_MascotFile(t *testing.T) {
	dir := isolate(t)
	art := filepath.Join(dir, "cat.txt")
	if err := os.WriteFile(art, []byte("=^.^="), 0o600); err != nil {
		t.Fatal(err)
	}

	res := run(testDeps(&fakeClipboard{}, nil), "", "-m", art, "meow")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.stdout != clippy.DecorateWith("=^.^=", "meow")+"\n" {
		t.Errorf("unexpected output:\n%s", res.stdout)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	res = run(testDeps(&fakeClipboard{}, nil), "", "-m", empty, "meow")
	if !errors.Is(res.err, apperrors.ErrInvalidMascot) {
		t.Errorf("expected ErrInvalidMascot, got %v", res.err)
	}
}

func TestSay_ConfigWrapAndFlagOverride(t *testing.T) {
	isolate(t)
	if err := config.SaveConfig(config.Config{Wrap: 5}); err != nil {
		t.Fatal(err)
	}

	res := run(testDeps(&fakeClipboard{}, nil), "", "-b", "hello world")
	if res.stdout != clippy.Bubble("hello\nworld") {
		t.Errorf("config wrap not applied:\n%s", res.stdout)
	}

	res = run(testDeps(&fakeClipboard{}, nil), "", "-b", "-w", "0", "hello world")
	if res.stdout != clippy.Bubble("hello world") {
		t.Errorf("--wrap 0 should disable the config wrap:\n%s", res.stdout)
	}
}

func TestSay_Verbose(t *testing.T) {
	isolate(t)

	res := run(testDeps(&fakeClipboard{}, nil), "", "--verbose", "hi")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if !strings.Contains(res.stderr, "read 2 bytes from argument") {
		t.Errorf("stderr = %q, want verbose details", res.stderr)
	}

	quiet := run(testDeps(&fakeClipboard{}, nil), "", "hi")
	if quiet.stderr != "" {
		t.Errorf("stderr should be empty without --verbose, got %q", quiet.stderr)
	}
}

func TestSay_FlagsOverrideBrokenSettings(t *testing.T) {
	dir := isolate(t)
	if err := config.SaveConfig(config.Config{MascotPath: filepath.Join(dir, "gone.txt")}); err != nil {
		t.Fatal(err)
	}

	res := run(testDeps(&fakeClipboard{}, nil), "", "-b", "hi")
	if res.err != nil {
		t.Fatalf("--bubble-only should not read the configured mascot: %v", res.err)
	}
	if res.stdout != clippy.Bubble("hi") {
		t.Errorf("unexpected output:\n%s", res.stdout)
	}

	art := filepath.Join(dir, "cat.txt")
	if err := os.WriteFile(art, []byte("=^.^="), 0o600); err != nil {
		t.Fatal(err)
	}
	res = run(testDeps(&fakeClipboard{}, nil), "", "-m", art, "hi")
	if res.err != nil {
		t.Fatalf("--mascot-file should replace the configured mascot: %v", res.err)
	}
	if res.stdout != clippy.DecorateWith("=^.^=", "hi")+"\n" {
		t.Errorf("unexpected output:\n%s", res.stdout)
	}

	t.Setenv("CLIPPYSAY_WRAP", "wide")
	res = run(testDeps(&fakeClipboard{}, nil), "", "-b", "--wrap", "10", "hi")
	if res.err != nil {
		t.Fatalf("--wrap should replace a bad CLIPPYSAY_WRAP: %v", res.err)
	}
	res = run(testDeps(&fakeClipboard{}, nil), "", "-b", "hi")
	if !errors.Is(res.err, apperrors.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig without --wrap, got %v", res.err)
	}
}

func TestSay_UnreadableConfigIsAWarning(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	res := run(testDeps(&fakeClipboard{}, nil), "", "hi")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.stdout != clippy.Say("hi")+"\n" {
		t.Errorf("unexpected output:\n%s", res.stdout)
	}
	if !strings.Contains(res.stderr, "Ignoring config file") {
		t.Errorf("stderr = %q, want a warning about the config file", res.stderr)
	}
}
