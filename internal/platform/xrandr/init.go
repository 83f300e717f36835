package xrandr

import "github.com/mj1618/xrandroll/internal/platform"

func init() {
	platform.NewProviderFunc = func(opts platform.Options) (*platform.Provider, error) {
		path := opts.XrandrPath
		if path == "" {
			path = DefaultPath
		}
		return &platform.Provider{
			Reader: NewReader(path),
			Runner: NewRunner(path),
		}, nil
	}
}
