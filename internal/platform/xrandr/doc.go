// Package xrandr provides the X11 backend: it reads `xrandr --verbose` and
// runs generated xrandr command lines.
package xrandr
