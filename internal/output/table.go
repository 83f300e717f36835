package output

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-colorable"
)

// Tabular is implemented by results that have a human table form.
type Tabular interface {
	Table() *uitable.Table
}

// PrintTable writes t's table to stdout, translating color escapes where
// the terminal needs it.
func PrintTable(t Tabular) error {
	_, err := fmt.Fprintln(colorable.NewColorable(os.Stdout), t.Table())
	return err
}

func newTable(headers ...interface{}) *uitable.Table {
	bold := color.New(color.Bold, color.Underline)
	tbl := uitable.New()
	tbl.Separator = "  "
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = bold.Sprint(h)
	}
	tbl.AddRow(cells...)
	return tbl
}

// Table lists one row per output; the primary is marked with a star.
func (r *ScreenResult) Table() *uitable.Table {
	star := color.New(color.FgGreen, color.Bold)
	faint := color.New(color.Faint)

	tbl := newTable("", "OUTPUT", "STATE", "POS", "RES", "MODE", "SCALE", "ROTATE", "REPLICA OF")
	for _, m := range r.Monitors {
		mark := ""
		if m.Primary {
			mark = star.Sprint("*")
		}
		state := "on"
		switch {
		case !m.Connected:
			state = faint.Sprint("disconnected")
		case !m.Enabled:
			state = faint.Sprint("off")
		}
		tbl.AddRow(mark, m.Output, state, m.Pos, m.Res, m.Mode, m.Scale, m.Orientation, strings.Join(m.ReplicaOf, ","))
	}
	return tbl
}

func (r *CommandsResult) Table() *uitable.Table {
	tbl := newTable("#", "COMMAND")
	for i, c := range r.Commands {
		tbl.AddRow(i+1, c)
	}
	tbl.RightAlign(0)
	return tbl
}

// Table lists one row per changed field, sorted by field name.
func (r *DiffResult) Table() *uitable.Table {
	tbl := newTable("OUTPUT", "CHANGE", "FIELD", "FROM", "TO")
	for _, c := range r.Changes {
		if len(c.Changes) == 0 {
			tbl.AddRow(c.Output, string(c.Type), "", "", "")
			continue
		}
		fields := make([]string, 0, len(c.Changes))
		for f := range c.Changes {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			tbl.AddRow(c.Output, string(c.Type), f, c.Changes[f][0], c.Changes[f][1])
		}
	}
	return tbl
}

func (r *ProfilesResult) Table() *uitable.Table {
	tbl := newTable("NAME", "CREATED", "ENABLED OUTPUTS")
	for _, p := range r.Profiles {
		tbl.AddRow(p.Name, p.Created.Local().Format("2006-01-02 15:04"), p.Enabled)
	}
	return tbl
}
