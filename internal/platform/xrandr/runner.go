package xrandr

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/mj1618/xrandroll/internal/logging"
	"github.com/mj1618/xrandroll/internal/model"
	"github.com/mj1618/xrandroll/internal/platform"
)

// Runner implements platform.Runner. Generated commands name the program as
// "xrandr"; the runner substitutes its configured binary for it.
type Runner struct {
	Path string
}

// NewRunner returns a Runner that executes commands with the given binary.
func NewRunner(path string) *Runner {
	return &Runner{Path: path}
}

// Run executes a single command line. The line is split on whitespace; no
// shell is involved.
func (r *Runner) Run(command string) error {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return &platform.ExecutionError{Command: command, ExitCode: -1, Err: fmt.Errorf("empty command")}
	}
	if argv[0] == model.Program && r.Path != "" {
		argv[0] = r.Path
	}
	logging.Info("applying", zap.Strings("argv", argv))

	var stderr bytes.Buffer
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		logging.Error("command failed", zap.String("command", command), zap.Int("exit_code", code))
		return &platform.ExecutionError{
			Command:  command,
			ExitCode: code,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}
	return nil
}
