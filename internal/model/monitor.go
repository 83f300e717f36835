package model

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PlaceholderSizeMM stands in for a physical dimension the report omits (or
// reports as zero), keeping density ratios defined.
var PlaceholderSizeMM = 100

// Monitor is one output of the screen.
type Monitor struct {
	Output      string              `yaml:"output"               json:"output"`
	Connected   bool                `yaml:"connected"            json:"connected"`
	Enabled     bool                `yaml:"enabled"              json:"enabled"`
	Primary     bool                `yaml:"primary"              json:"primary"`
	PosX        int                 `yaml:"pos_x"                json:"pos_x"`
	PosY        int                 `yaml:"pos_y"                json:"pos_y"`
	ResX        int                 `yaml:"res_x"                json:"res_x"`
	ResY        int                 `yaml:"res_y"                json:"res_y"`
	WidthMM     int                 `yaml:"w_in_mm"              json:"w_in_mm"`
	HeightMM    int                 `yaml:"h_in_mm"              json:"h_in_mm"`
	Orientation Orientation         `yaml:"orientation"          json:"orientation"`
	Modes       []*Mode             `yaml:"modes,omitempty"      json:"modes,omitempty"`
	ReplicaOf   []string            `yaml:"replica_of,omitempty" json:"replica_of,omitempty"`
	Fields      map[string][]string `yaml:"-"                    json:"-"`
}

var (
	geometryPattern     = regexp.MustCompile(`(\d+)x(\d+)\+(-?\d+)\+(-?\d+)`)
	physicalSizePattern = regexp.MustCompile(`(\d+)mm x (\d+)mm`)
)

// rotationListMarker opens the list of supported rotations that ends the
// header's own geometry clause.
const rotationListMarker = " (normal left inverted right"

// ParseMonitor builds a Monitor from an output stanza. The first line is the
// output header, e.g.
//
//	eDP connected primary 1920x1080+0+1080 (0x56) normal (normal left inverted right x axis y axis) 309mm x 173mm
//
// Disabled outputs (disconnected, or without a geometry clause) carry no
// position, resolution, size, fields or modes.
func ParseMonitor(lines []string) (*Monitor, error) {
	if len(lines) == 0 {
		return nil, &FormatError{What: "output header"}
	}
	header := lines[0]
	tokens := strings.Fields(header)
	if len(tokens) == 0 {
		return nil, &FormatError{What: "output name", Line: header}
	}

	m := &Monitor{Output: tokens[0], Fields: map[string][]string{}}
	disconnected := false
	for _, tok := range tokens[1:] {
		switch tok {
		case "primary":
			m.Primary = true
		case "connected":
			m.Connected = true
		case "disconnected":
			disconnected = true
		}
	}

	geometry := geometryPattern.FindStringSubmatch(header)
	if disconnected || geometry == nil {
		return m, nil
	}

	m.Enabled = true
	vals := make([]int, 4)
	for i, s := range geometry[1:] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, &FormatError{What: "output position", Line: header}
		}
		vals[i] = v
	}
	m.ResX, m.ResY, m.PosX, m.PosY = vals[0], vals[1], vals[2], vals[3]

	m.WidthMM, m.HeightMM = PlaceholderSizeMM, PlaceholderSizeMM
	if size := physicalSizePattern.FindStringSubmatch(header); size != nil {
		if w, _ := strconv.Atoi(size[1]); w > 0 {
			m.WidthMM = w
		}
		if h, _ := strconv.Atoi(size[2]); h > 0 {
			m.HeightMM = h
		}
	}

	m.Orientation = parseHeaderOrientation(header, geometry[0])

	if err := m.parseBody(lines[1:]); err != nil {
		return nil, fmt.Errorf("output %s: %w", m.Output, err)
	}
	return m, nil
}

// parseHeaderOrientation looks for a rotation keyword between the geometry
// clause and the list of supported rotations.
func parseHeaderOrientation(header, geometry string) Orientation {
	left := header
	if i := strings.Index(left, rotationListMarker); i >= 0 {
		left = left[:i]
	}
	if i := strings.Index(left, geometry); i >= 0 {
		left = left[i+len(geometry):]
	}
	for _, tok := range strings.Fields(left) {
		if o, err := ParseOrientation(tok); err == nil {
			return o
		}
	}
	return Normal
}

func (m *Monitor) parseBody(lines []string) error {
	groups := SplitByLinesMatching(modeBoundary, lines)
	if len(groups) > 0 && !modeBoundary.MatchString(groups[0][0]) {
		for _, f := range SplitByLinesMatching(fieldBoundary, groups[0]) {
			name := strings.TrimSpace(strings.SplitN(f[0], ":", 2)[0])
			m.Fields[name] = f
		}
		groups = groups[1:]
	}

	for _, g := range groups {
		mode, err := ParseMode(g)
		if err != nil {
			return err
		}
		// A repeated id keeps the first definition.
		if m.Mode(mode.ID) != nil {
			continue
		}
		m.Modes = append(m.Modes, mode)
	}
	return nil
}

// Mode returns the mode with the given identifier, or nil.
func (m *Monitor) Mode(id string) *Mode {
	for _, mode := range m.Modes {
		if mode.ID == id {
			return mode
		}
	}
	return nil
}

// FindMode resolves a mode by identifier ("0x56"), by its display string
// ("1920x1080 60Hz (0x56)"), or by resolution ("1920x1080", first match).
func (m *Monitor) FindMode(s string) *Mode {
	s = strings.TrimSpace(s)
	if mode := m.Mode(s); mode != nil {
		return mode
	}
	for _, mode := range m.Modes {
		if mode.String() == s {
			return mode
		}
	}
	if match := modeIDPattern.FindStringSubmatch(s); match != nil {
		if mode := m.Mode(match[1]); mode != nil {
			return mode
		}
	}
	for _, mode := range m.Modes {
		if mode.Resolution() == s {
			return mode
		}
	}
	return nil
}

// CurrentMode returns the mode in use, or nil if the output is disabled or
// none is marked current.
func (m *Monitor) CurrentMode() *Mode {
	if !m.Enabled {
		return nil
	}
	for _, mode := range m.Modes {
		if mode.Current {
			return mode
		}
	}
	return nil
}

// SetCurrentMode marks the mode resolved by FindMode as current and clears
// the flag on every other mode. An unknown mode leaves the monitor
// untouched; callers verify through CurrentMode.
func (m *Monitor) SetCurrentMode(id string) {
	target := m.FindMode(id)
	if target == nil {
		return
	}
	for _, mode := range m.Modes {
		mode.Current = mode == target
	}
}

// PreferredMode returns the mode the output advertises as preferred, or nil.
func (m *Monitor) PreferredMode() *Mode {
	for _, mode := range m.Modes {
		if mode.Preferred {
			return mode
		}
	}
	return nil
}

// MatchingMode returns the first mode with the same native resolution as
// other, ignoring refresh rate.
func (m *Monitor) MatchingMode(other *Mode) *Mode {
	if other == nil {
		return nil
	}
	for _, mode := range m.Modes {
		if mode.Width == other.Width && mode.Height == other.Height {
			return mode
		}
	}
	return nil
}

// NativeSize is the current mode's size in the output's rotated frame.
func (m *Monitor) NativeSize() (w, h int, ok bool) {
	mode := m.CurrentMode()
	if mode == nil || mode.Width == 0 || mode.Height == 0 {
		return 0, 0, false
	}
	if m.Orientation.Rotated() {
		return mode.Height, mode.Width, true
	}
	return mode.Width, mode.Height, true
}

// Scale returns the horizontal and vertical factors between the logical
// resolution and the current mode. Without a current mode it is 1x1.
func (m *Monitor) Scale() (h, v float64) {
	w, ht, ok := m.NativeSize()
	if !ok {
		return 1, 1
	}
	return float64(m.ResX) / float64(w), float64(m.ResY) / float64(ht)
}

// SetScale sets the logical resolution to the current mode scaled by h and v.
func (m *Monitor) SetScale(h, v float64) {
	w, ht, ok := m.NativeSize()
	if !ok {
		return
	}
	m.ResX = int(math.Round(float64(w) * h))
	m.ResY = int(math.Round(float64(ht) * v))
}

// SetMode switches the current mode, keeping the scale factors. It reports
// whether the mode was found.
func (m *Monitor) SetMode(id string) bool {
	if m.FindMode(id) == nil {
		return false
	}
	h, v := m.Scale()
	m.SetCurrentMode(id)
	m.SetScale(h, v)
	return true
}

// SetOrientation rotates the output, keeping the scale factors.
func (m *Monitor) SetOrientation(o Orientation) {
	h, v := m.Scale()
	m.Orientation = o
	m.SetScale(h, v)
}

// SetPosition moves the output.
func (m *Monitor) SetPosition(x, y int) {
	m.PosX, m.PosY = x, y
}

// SetEnabled turns the output on or off. Enabling an output with no current
// mode selects the preferred mode (or the first one) at 1x1.
func (m *Monitor) SetEnabled(on bool) {
	m.Enabled = on
	if !on || m.CurrentMode() != nil {
		return
	}
	mode := m.PreferredMode()
	if mode == nil && len(m.Modes) > 0 {
		mode = m.Modes[0]
	}
	if mode == nil {
		return
	}
	m.SetCurrentMode(mode.ID)
	m.SetScale(1, 1)
}
