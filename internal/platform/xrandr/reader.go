package xrandr

import (
	"bytes"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/mj1618/xrandroll/internal/logging"
	"github.com/mj1618/xrandroll/internal/model"
	"github.com/mj1618/xrandroll/internal/platform"
)

// DefaultPath is the xrandr binary looked up on PATH.
const DefaultPath = model.Program

// Reader implements platform.Reader by running `xrandr --verbose`.
type Reader struct {
	Path string
}

// NewReader returns a Reader that runs the given binary.
func NewReader(path string) *Reader {
	return &Reader{Path: path}
}

// ReadLines runs the report command and splits its output into lines.
func (r *Reader) ReadLines() ([]string, error) {
	args := []string{"--verbose"}
	source := r.Path + " " + strings.Join(args, " ")
	logging.Debug("reading display report", zap.String("command", source))

	var stderr bytes.Buffer
	cmd := exec.Command(r.Path, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			logging.Warn("xrandr report failed", zap.String("stderr", msg))
		}
		return nil, &platform.IOError{Source: source, Err: err}
	}
	lines := model.SplitLines(out)
	logging.Debug("read display report", zap.Int("lines", len(lines)))
	return lines, nil
}
