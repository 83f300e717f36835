package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Edit is a set of changes to one output, as requested from the command line
// or an MCP tool call. Zero values mean "leave unchanged".
type Edit struct {
	Output    string  `json:"output,omitempty"     yaml:"output,omitempty"`     // Output to edit
	Enable    bool    `json:"enable,omitempty"     yaml:"enable,omitempty"`     // Turn the output on
	Disable   bool    `json:"disable,omitempty"    yaml:"disable,omitempty"`    // Turn the output off
	Primary   bool    `json:"primary,omitempty"    yaml:"primary,omitempty"`    // Make the output primary
	NoPrimary bool    `json:"no_primary,omitempty" yaml:"no_primary,omitempty"` // Clear primary on every output
	Mode      string  `json:"mode,omitempty"       yaml:"mode,omitempty"`       // Mode id, display string, or WxH
	HasPos    bool    `json:"has_pos,omitempty"    yaml:"has_pos,omitempty"`    // Whether X and Y are set
	X         int     `json:"x,omitempty"          yaml:"x,omitempty"`          // New position
	Y         int     `json:"y,omitempty"          yaml:"y,omitempty"`
	Snap      int     `json:"snap,omitempty"       yaml:"snap,omitempty"`       // Snap the new position to other outputs' edges within this many pixels
	Rotate    string  `json:"rotate,omitempty"     yaml:"rotate,omitempty"`     // normal, left, inverted, right
	ScaleX    float64 `json:"scale_x,omitempty"    yaml:"scale_x,omitempty"`    // Horizontal scale factor (0 = unset)
	ScaleY    float64 `json:"scale_y,omitempty"    yaml:"scale_y,omitempty"`    // Vertical scale factor (0 = same as ScaleX)
	ScaleMode string  `json:"scale_mode,omitempty" yaml:"scale_mode,omitempty"` // disabled, physical, same, manual
	ReplicaOf string  `json:"replica_of,omitempty" yaml:"replica_of,omitempty"` // Mirror this output
}

// IsZero reports whether the edit changes nothing.
func (e Edit) IsZero() bool {
	return e == Edit{}
}

// Apply performs the edit on s and recomputes replica relationships.
func (e Edit) Apply(s *Screen) error {
	if e.Enable && e.Disable {
		return errors.New("cannot both enable and disable an output")
	}
	if e.Primary && e.NoPrimary {
		return errors.New("cannot both set and clear primary")
	}
	if e.Output == "" {
		if e.NoPrimary {
			s.SetPrimary("")
			return nil
		}
		if e.IsZero() {
			return nil
		}
		return errors.New("an output to edit is required")
	}

	mon, err := s.Lookup(e.Output)
	if err != nil {
		return err
	}

	switch {
	case e.Enable:
		mon.SetEnabled(true)
	case e.Disable:
		mon.SetEnabled(false)
	}

	if e.Rotate != "" {
		o, err := ParseOrientation(e.Rotate)
		if err != nil {
			return err
		}
		mon.SetOrientation(o)
	}

	if e.Mode != "" && !mon.SetMode(e.Mode) {
		return &LookupError{Kind: "mode", Name: e.Mode}
	}

	if err := e.applyScale(s, mon); err != nil {
		return err
	}

	if e.ReplicaOf != "" {
		if err := s.MakeReplica(mon.Output, e.ReplicaOf); err != nil {
			return err
		}
	}

	if e.HasPos {
		x, y := s.Snap(mon.Output, e.X, e.Y, e.Snap)
		mon.SetPosition(x, y)
	}

	switch {
	case e.Primary:
		if !mon.Enabled {
			return fmt.Errorf("%s is disabled and cannot be primary", mon.Output)
		}
		s.SetPrimary(mon.Output)
	case e.NoPrimary:
		s.SetPrimary("")
	}

	s.UpdateReplicaOf()
	return nil
}

func (e Edit) applyScale(s *Screen, mon *Monitor) error {
	h, v := e.ScaleX, e.ScaleY
	if v == 0 {
		v = h
	}

	if e.ScaleMode == "" {
		if h > 0 {
			mon.SetScale(h, v)
		}
		return nil
	}

	mode, err := ParseScaleMode(e.ScaleMode)
	if err != nil {
		return err
	}
	switch mode {
	case ScaleModeDisabled:
		mon.SetScale(1, 1)
	case ScaleModePhysical:
		ph, pv, ok := s.PhysicalScale(mon.Output)
		if !ok {
			return fmt.Errorf("cannot compute a physical scale for %s: it needs to be enabled, not primary, and a primary output must exist", mon.Output)
		}
		mon.SetScale(ph, pv)
	case ScaleModeSame:
		if h <= 0 {
			return errors.New("scale mode \"same\" needs a scale factor")
		}
		mon.SetScale(h, h)
	case ScaleModeManual:
		if h <= 0 {
			return errors.New("scale mode \"manual\" needs a scale factor")
		}
		mon.SetScale(h, v)
	}
	return nil
}

// ParsePosition parses "X,Y" or "XxY" into a position; either may be negative.
func ParsePosition(s string) (x, y int, err error) {
	sep := ","
	if !strings.Contains(s, ",") {
		sep = "x"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid position %q: expected X,Y", s)
	}
	x, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid position %q: %w", s, err)
	}
	y, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid position %q: %w", s, err)
	}
	return x, y, nil
}

// ParseScale parses "F" or "HxV" into scale factors.
func ParseScale(s string) (h, v float64, err error) {
	parts := strings.Split(s, "x")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("invalid scale %q: expected F or HxV", s)
	}
	h, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid scale %q: factors must be positive numbers", s)
	}
	v = h
	if len(parts) == 2 {
		v, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || v <= 0 {
			return 0, 0, fmt.Errorf("invalid scale %q: factors must be positive numbers", s)
		}
	}
	return h, v, nil
}
