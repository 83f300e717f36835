package platform

import (
	"io"
	"os"

	"github.com/mj1618/xrandroll/internal/model"
)

// FileReader implements Reader over a captured report.
type FileReader struct {
	Path  string
	Stdin io.Reader // used when Path is "-"
}

// NewFileReader returns a FileReader for path; "-" reads standard input.
func NewFileReader(path string) *FileReader {
	return &FileReader{Path: path, Stdin: os.Stdin}
}

// ReadLines reads the whole report.
func (r *FileReader) ReadLines() ([]string, error) {
	var (
		data []byte
		err  error
	)
	if r.Path == "-" {
		data, err = io.ReadAll(r.Stdin)
	} else {
		data, err = os.ReadFile(r.Path)
	}
	if err != nil {
		return nil, &IOError{Source: r.Path, Err: err}
	}
	return model.SplitLines(data), nil
}
