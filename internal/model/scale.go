package model

import "fmt"

// ScaleMode describes how an output's logical resolution relates to its mode.
type ScaleMode string

const (
	ScaleModeNone     ScaleMode = "no scaling relevant"
	ScaleModeDisabled ScaleMode = "Disabled (1x1)"
	ScaleModeSame     ScaleMode = "Manual, same in both dimensions"
	ScaleModeManual   ScaleMode = "Manual"
	ScaleModePhysical ScaleMode = "Automatic: physical dimensions"
)

// ScaleModes lists the modes a user can pick, in menu order.
var ScaleModes = []ScaleMode{ScaleModeDisabled, ScaleModePhysical, ScaleModeSame, ScaleModeManual}

// ParseScaleMode accepts a ScaleMode's text or one of the short names
// "disabled", "physical", "same" and "manual".
func ParseScaleMode(s string) (ScaleMode, error) {
	switch s {
	case "disabled", "1x1":
		return ScaleModeDisabled, nil
	case "physical", "auto":
		return ScaleModePhysical, nil
	case "same":
		return ScaleModeSame, nil
	case "manual":
		return ScaleModeManual, nil
	}
	for _, mode := range ScaleModes {
		if string(mode) == s {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown scale mode: %q (expected disabled, physical, same, or manual)", s)
}

// GuessScaleMode classifies the current scale factors for display. It is
// derived on demand and never stored.
func (m *Monitor) GuessScaleMode() ScaleMode {
	if m.CurrentMode() == nil {
		return ScaleModeNone
	}
	h, v := m.Scale()
	switch {
	case h == 1 && v == 1:
		return ScaleModeDisabled
	case h == v:
		return ScaleModeSame
	default:
		return ScaleModeManual
	}
}

// density returns logical pixels per millimeter on each axis.
func (m *Monitor) density() (x, y float64, ok bool) {
	if m.WidthMM <= 0 || m.HeightMM <= 0 || m.ResX <= 0 || m.ResY <= 0 {
		return 0, 0, false
	}
	return float64(m.ResX) / float64(m.WidthMM), float64(m.ResY) / float64(m.HeightMM), true
}

// PhysicalScale computes scale factors that give the named output the same
// pixel density as the primary output. ok is false for the primary itself,
// for disabled outputs, or when there is no enabled primary.
func (s *Screen) PhysicalScale(name string) (h, v float64, ok bool) {
	mon := s.Monitors[name]
	primary := s.Primary()
	if mon == nil || primary == nil || mon == primary || !mon.Enabled || !primary.Enabled {
		return 0, 0, false
	}
	primX, primY, ok := primary.density()
	if !ok {
		return 0, 0, false
	}
	densX, densY, ok := mon.density()
	if !ok {
		return 0, 0, false
	}
	curH, curV := mon.Scale()
	return curH * primX / densX, curV * primY / densY, true
}
