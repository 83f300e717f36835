package model

import (
	"fmt"
	"strconv"
)

// ChangeType represents the kind of change to an output.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// Change is one difference between two screens.
type Change struct {
	Type    ChangeType           `yaml:"type"              json:"type"`
	Output  string               `yaml:"output"            json:"output"`
	Changes map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"`
}

// DiffScreens compares two screens output by output. Added and changed
// outputs come first in curr's order, then removed outputs in prev's order.
func DiffScreens(prev, curr *Screen) []Change {
	var changes []Change
	for _, name := range curr.Order {
		prevMon, existed := prev.Monitors[name]
		if !existed {
			changes = append(changes, Change{Type: ChangeAdded, Output: name})
			continue
		}
		if diffs := diffMonitor(prevMon, curr.Monitors[name]); len(diffs) > 0 {
			changes = append(changes, Change{Type: ChangeChanged, Output: name, Changes: diffs})
		}
	}
	for _, name := range prev.Order {
		if _, exists := curr.Monitors[name]; !exists {
			changes = append(changes, Change{Type: ChangeRemoved, Output: name})
		}
	}
	return changes
}

// diffMonitor compares the configurable state of two monitors.
func diffMonitor(prev, curr *Monitor) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Enabled != curr.Enabled {
		diffs["enabled"] = [2]string{strconv.FormatBool(prev.Enabled), strconv.FormatBool(curr.Enabled)}
	}
	if prev.Primary != curr.Primary {
		diffs["primary"] = [2]string{strconv.FormatBool(prev.Primary), strconv.FormatBool(curr.Primary)}
	}
	if prev.PosX != curr.PosX || prev.PosY != curr.PosY {
		diffs["pos"] = [2]string{
			fmt.Sprintf("%dx%d", prev.PosX, prev.PosY),
			fmt.Sprintf("%dx%d", curr.PosX, curr.PosY),
		}
	}
	if prev.ResX != curr.ResX || prev.ResY != curr.ResY {
		diffs["res"] = [2]string{
			fmt.Sprintf("%dx%d", prev.ResX, prev.ResY),
			fmt.Sprintf("%dx%d", curr.ResX, curr.ResY),
		}
	}
	if prev.Orientation != curr.Orientation {
		diffs["orientation"] = [2]string{prev.Orientation.String(), curr.Orientation.String()}
	}
	if p, c := modeName(prev.CurrentMode()), modeName(curr.CurrentMode()); p != c {
		diffs["mode"] = [2]string{p, c}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}

func modeName(m *Mode) string {
	if m == nil {
		return ""
	}
	return m.String()
}
