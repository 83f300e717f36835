package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeRunner struct{ commands []string }

func (f *fakeRunner) Run(command string) error {
	f.commands = append(f.commands, command)
	return nil
}

type fakeReader struct{}

func (fakeReader) ReadLines() ([]string, error) { return []string{"Screen 0:"}, nil }

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	// Temporarily clear the provider func to simulate unsupported platform
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider(Options{})
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_InputWithoutBackend(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	p, err := NewProvider(Options{Input: "report.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Reader.(*FileReader); !ok {
		t.Errorf("expected a FileReader, got %T", p.Reader)
	}
	if p.Runner != nil {
		t.Errorf("expected no runner, got %T", p.Runner)
	}
}

func TestNewProvider_InputOverridesReader(t *testing.T) {
	orig := NewProviderFunc
	runner := &fakeRunner{}
	NewProviderFunc = func(opts Options) (*Provider, error) {
		return &Provider{Reader: fakeReader{}, Runner: runner}, nil
	}
	defer func() { NewProviderFunc = orig }()

	p, err := NewProvider(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Reader.(fakeReader); !ok {
		t.Errorf("expected the backend reader, got %T", p.Reader)
	}

	p, err = NewProvider(Options{Input: "-"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Reader.(*FileReader); !ok {
		t.Errorf("expected a FileReader, got %T", p.Reader)
	}
	if p.Runner != runner {
		t.Error("runner should still come from the backend")
	}
}

func TestFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("Screen 0: minimum 8 x 8\r\neDP connected\n"), 0644); err != nil {
		t.Fatal(err)
	}
	lines, err := NewFileReader(path).ReadLines()
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 || lines[0] != "Screen 0: minimum 8 x 8" || lines[1] != "eDP connected" {
		t.Errorf("lines: %q", lines)
	}

	r := &FileReader{Path: "-", Stdin: strings.NewReader("a\nb")}
	lines, err = r.ReadLines()
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[1] != "b" {
		t.Errorf("stdin lines: %q", lines)
	}
}

func TestFileReader_Missing(t *testing.T) {
	_, err := NewFileReader(filepath.Join(t.TempDir(), "nope.txt")).ReadLines()
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("IOError should unwrap to the OS error, got %v", err)
	}
}

func TestExecutionError_Message(t *testing.T) {
	err := &ExecutionError{Command: "xrandr --output X --off", ExitCode: 1, Stderr: "warning: output X not found", Err: errors.New("exit status 1")}
	msg := err.Error()
	for _, want := range []string{"xrandr --output X --off", "exit code 1", "output X not found"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}
