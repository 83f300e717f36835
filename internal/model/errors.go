package model

import "fmt"

// FormatError reports a required value missing from the report.
// Any FormatError aborts construction of the whole Screen.
type FormatError struct {
	What string // the value that could not be located, e.g. "mode width"
	Line string // the line (or header) it was expected on
}

func (e *FormatError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("xrandr report: missing %s", e.What)
	}
	return fmt.Sprintf("xrandr report: missing %s in %q", e.What, e.Line)
}

// LookupError reports a reference to an output or mode that is not in the model.
type LookupError struct {
	Kind string // "output" or "mode"
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}
