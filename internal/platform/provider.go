package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the platform backends.
type Provider struct {
	Reader Reader
	Runner Runner
}

// Options configures the platform backends.
type Options struct {
	XrandrPath string // Binary used to read and apply (default "xrandr")
	Input      string // Read the report from this file ("-" for stdin) instead of running xrandr
}

// ErrUnsupported is returned when no backend is registered.
var ErrUnsupported = fmt.Errorf("xrandroll has no display backend on %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by backend packages via init().
// See internal/platform/xrandr/init.go.
var NewProviderFunc func(opts Options) (*Provider, error)

// NewProvider returns a Provider for the given options. When opts.Input is
// set, the report is read from that file while commands still go to the
// registered backend.
func NewProvider(opts Options) (*Provider, error) {
	if NewProviderFunc == nil {
		if opts.Input == "" {
			return nil, ErrUnsupported
		}
		return &Provider{Reader: NewFileReader(opts.Input)}, nil
	}
	p, err := NewProviderFunc(opts)
	if err != nil {
		return nil, err
	}
	if opts.Input != "" {
		p.Reader = NewFileReader(opts.Input)
	}
	return p, nil
}
