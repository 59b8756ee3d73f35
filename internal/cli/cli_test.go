package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn while capturing everything written to os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRootCommandUsageWithoutArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"one arg", []string{"icons"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(io.Discard, LogInfo)
			root := c.RootCommand()

			var out, errOut bytes.Buffer
			root.SetOut(&out)
			root.SetErr(&errOut)
			root.SetArgs(tt.args)

			if err := root.Execute(); err != nil {
				t.Fatalf("Execute() error = %v, want nil (usage is not an error)", err)
			}
			if combined := out.String() + errOut.String(); !strings.Contains(combined, "Usage:") {
				t.Errorf("expected usage text, got %q", combined)
			}
		})
	}
}

func TestRootCommandNoRasterizerExitsClean(t *testing.T) {
	// A missing rasterizer is fatal to the run but must not surface as a
	// non-zero process exit.
	t.Setenv("PATH", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{t.TempDir(), t.TempDir()})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v, want nil", err)
	}
}

func TestFatalErrorPrintsUserMessage(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{t.TempDir(), t.TempDir()})

	out := captureStdout(t, func() {
		if err := root.Execute(); err != nil {
			t.Errorf("Execute() error = %v, want nil", err)
		}
	})

	if !strings.Contains(out, "no SVG rasterizer found") {
		t.Errorf("output = %q, want the missing-rasterizer message", out)
	}
	if strings.Contains(out, "RASTERIZER_NOT_FOUND") {
		t.Errorf("output = %q, want the machine-readable code stripped", out)
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)

	if got := c.Logger.GetLevel(); got != LogDebug {
		t.Errorf("GetLevel() = %v, want %v", got, LogDebug)
	}
}
