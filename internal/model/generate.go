package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Program is the first token of every generated command.
const Program = "xrandr"

// Generate returns one xrandr invocation per monitor, in report order, that
// reproduces the monitor's state:
//
//	xrandr --output HDMI-A-0 --off
//	xrandr --output eDP --pos 0x1080 --mode 0x56 --scale 1x1 --rotate normal --primary
func (s *Screen) Generate() []string {
	cmds := make([]string, 0, len(s.Order))
	for _, mon := range s.MonitorList() {
		cmds = append(cmds, strings.Join(append([]string{Program}, mon.Args()...), " "))
	}
	return cmds
}

// GenerateCommand joins every monitor's arguments into a single invocation.
func (s *Screen) GenerateCommand() string {
	args := []string{Program}
	for _, mon := range s.MonitorList() {
		args = append(args, mon.Args()...)
	}
	return strings.Join(args, " ")
}

// Args returns the xrandr arguments configuring this monitor.
// Scale factors are logical size over the current mode's size, after
// swapping the mode's axes for left/right rotation.
func (m *Monitor) Args() []string {
	args := []string{"--output", m.Output}
	if !m.Enabled {
		return append(args, "--off")
	}
	args = append(args, "--pos", fmt.Sprintf("%dx%d", m.PosX, m.PosY))

	if mode := m.CurrentMode(); mode != nil {
		h, v := m.Scale()
		args = append(args,
			"--mode", mode.ID,
			"--scale", formatRatio(h)+"x"+formatRatio(v),
		)
	} else {
		args = append(args, "--auto")
	}
	args = append(args, "--rotate", m.Orientation.String())
	if m.Primary {
		args = append(args, "--primary")
	}
	return args
}

// formatRatio prints the shortest decimal that parses back to f exactly.
func formatRatio(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
