package model

import (
	"bytes"
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Screen is the aggregate of all outputs of one X screen, keyed by output
// name in report order.
//
// Screen is not safe for concurrent use; one editing session owns it.
type Screen struct {
	ID       int
	Minimum  Size
	Current  Size
	Maximum  Size
	Monitors map[string]*Monitor
	Order    []string
}

// screenKeyword starts the screen-scope section of the report.
const screenKeyword = "Screen "

var screenHeaderPattern = regexp.MustCompile(
	`^Screen (\d+): minimum (\d+) x (\d+), current (\d+) x (\d+), maximum (\d+) x (\d+)`)

// SplitLines splits raw report output into lines, dropping carriage returns.
func SplitLines(data []byte) []string {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return strings.Split(string(data), "\n")
}

// ParseScreen parses the report of `xrandr --verbose` into a Screen. Only the
// first screen section is read. Any malformed output or mode aborts parsing.
func ParseScreen(lines []string) (*Screen, error) {
	start, end := -1, len(lines)
	for i, l := range lines {
		if !strings.HasPrefix(l, screenKeyword) {
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		end = i
		break
	}
	if start < 0 {
		return nil, &FormatError{What: "screen header"}
	}

	s := &Screen{Monitors: map[string]*Monitor{}}
	s.parseHeader(lines[start])

	var body []string
	for _, l := range lines[start+1 : end] {
		if strings.TrimSpace(l) == "" {
			continue
		}
		body = append(body, strings.TrimRight(l, "\r"))
	}

	for _, g := range SplitByLinesMatching(monitorBoundary, body) {
		if !monitorBoundary.MatchString(g[0]) {
			continue
		}
		mon, err := ParseMonitor(g)
		if err != nil {
			return nil, err
		}
		if _, dup := s.Monitors[mon.Output]; dup {
			return nil, &FormatError{What: "unique output name", Line: g[0]}
		}
		s.Monitors[mon.Output] = mon
		s.Order = append(s.Order, mon.Output)
	}
	return s, nil
}

func (s *Screen) parseHeader(line string) {
	match := screenHeaderPattern.FindStringSubmatch(line)
	if match == nil {
		return
	}
	vals := make([]int, 7)
	for i, v := range match[1:] {
		vals[i], _ = strconv.Atoi(v)
	}
	s.ID = vals[0]
	s.Minimum = Size{vals[1], vals[2]}
	s.Current = Size{vals[3], vals[4]}
	s.Maximum = Size{vals[5], vals[6]}
}

// MonitorList returns the monitors in report order.
func (s *Screen) MonitorList() []*Monitor {
	list := make([]*Monitor, 0, len(s.Order))
	for _, name := range s.Order {
		list = append(list, s.Monitors[name])
	}
	return list
}

// Lookup returns the named monitor or a *LookupError.
func (s *Screen) Lookup(name string) (*Monitor, error) {
	mon, ok := s.Monitors[name]
	if !ok {
		return nil, &LookupError{Kind: "output", Name: name}
	}
	return mon, nil
}

// UpdateReplicaOf recomputes every monitor's ReplicaOf list: the other
// enabled monitors with identical position and logical resolution. It must
// be called after changing any position, resolution or enabled state.
func (s *Screen) UpdateReplicaOf() {
	for _, name := range s.Order {
		a := s.Monitors[name]
		a.ReplicaOf = nil
		if !a.Enabled {
			continue
		}
		for _, other := range s.Order {
			b := s.Monitors[other]
			if other == name || !b.Enabled {
				continue
			}
			if a.PosX == b.PosX && a.PosY == b.PosY && a.ResX == b.ResX && a.ResY == b.ResY {
				a.ReplicaOf = append(a.ReplicaOf, other)
			}
		}
	}
}

// ChooseAMonitor picks the monitor to focus by default: the enabled primary
// if there is one, otherwise the last enabled monitor in report order.
// It returns "" when nothing is enabled.
func (s *Screen) ChooseAMonitor() string {
	chosen := ""
	for _, name := range s.Order {
		mon := s.Monitors[name]
		if !mon.Enabled {
			continue
		}
		if mon.Primary {
			return name
		}
		chosen = name
	}
	return chosen
}

// Primary returns the primary monitor, or nil.
func (s *Screen) Primary() *Monitor {
	for _, name := range s.Order {
		if mon := s.Monitors[name]; mon.Primary {
			return mon
		}
	}
	return nil
}

// SetPrimary makes the named monitor primary and every other one not.
// A name that matches nothing clears primary altogether.
func (s *Screen) SetPrimary(name string) {
	for _, mon := range s.Monitors {
		mon.Primary = mon.Output == name
	}
}

// Bounds is the union of the enabled monitors' rectangles.
func (s *Screen) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, mon := range s.MonitorList() {
		if !mon.Enabled {
			continue
		}
		r = r.Union(mon.Rect())
	}
	return r
}

// Rect is the monitor's logical rectangle.
func (m *Monitor) Rect() image.Rectangle {
	return image.Rect(m.PosX, m.PosY, m.PosX+m.ResX, m.PosY+m.ResY)
}

// MakeReplica moves the named monitor onto target and matches its size:
// with target's mode resolution if the monitor offers it, otherwise by
// scaling the monitor's current mode. Both monitors must be enabled.
// UpdateReplicaOf is left to the caller.
func (s *Screen) MakeReplica(name, target string) error {
	mon, err := s.Lookup(name)
	if err != nil {
		return err
	}
	tgt, err := s.Lookup(target)
	if err != nil {
		return err
	}
	switch {
	case mon == tgt:
		return fmt.Errorf("%s cannot be a replica of itself", name)
	case !mon.Enabled:
		return fmt.Errorf("%s is disabled and cannot be a replica", name)
	case !tgt.Enabled:
		return fmt.Errorf("%s is disabled and cannot be a replica target", target)
	}
	mon.SetPosition(tgt.PosX, tgt.PosY)

	if match := mon.MatchingMode(tgt.CurrentMode()); match != nil {
		mon.SetCurrentMode(match.ID)
	}
	w, h, ok := mon.NativeSize()
	if !ok {
		mon.ResX, mon.ResY = tgt.ResX, tgt.ResY
		return nil
	}
	mon.SetScale(float64(tgt.ResX)/float64(w), float64(tgt.ResY)/float64(h))
	return nil
}

// SnapTargets lists the x and y edges of the other enabled monitors.
func (s *Screen) SnapTargets(name string) (xs, ys []int) {
	for _, mon := range s.MonitorList() {
		if mon.Output == name || !mon.Enabled {
			continue
		}
		xs = append(xs, mon.PosX, mon.PosX+mon.ResX)
		ys = append(ys, mon.PosY, mon.PosY+mon.ResY)
	}
	return xs, ys
}

// Snap adjusts a proposed position for the named monitor so that either of
// its edges lands on a nearby edge of another monitor, within threshold
// pixels on each axis.
func (s *Screen) Snap(name string, x, y, threshold int) (int, int) {
	mon := s.Monitors[name]
	if mon == nil || threshold <= 0 {
		return x, y
	}
	xs, ys := s.SnapTargets(name)
	return snapAxis(x, mon.ResX, xs, threshold), snapAxis(y, mon.ResY, ys, threshold)
}

func snapAxis(pos, length int, targets []int, threshold int) int {
	best, bestDist := pos, threshold+1
	for _, t := range targets {
		for _, candidate := range []int{t, t - length} {
			d := candidate - pos
			if d < 0 {
				d = -d
			}
			if d < bestDist {
				best, bestDist = candidate, d
			}
		}
	}
	return best
}
