package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mj1618/xrandroll/internal/model"
	"github.com/mj1618/xrandroll/internal/store"
)

// ScreenResult is the top-level output of the `show` command.
type ScreenResult struct {
	Screen   int             `yaml:"screen"            json:"screen"`
	Minimum  model.Size      `yaml:"minimum"           json:"minimum"`
	Current  model.Size      `yaml:"current"           json:"current"`
	Maximum  model.Size      `yaml:"maximum"           json:"maximum"`
	Primary  string          `yaml:"primary,omitempty" json:"primary,omitempty"`
	Monitors []MonitorResult `yaml:"monitors"          json:"monitors"`
}

// MonitorResult is one output in report order.
type MonitorResult struct {
	Output      string        `yaml:"output"               json:"output"`
	Connected   bool          `yaml:"connected"            json:"connected"`
	Enabled     bool          `yaml:"enabled"              json:"enabled"`
	Primary     bool          `yaml:"primary,omitempty"    json:"primary,omitempty"`
	Pos         string        `yaml:"pos,omitempty"        json:"pos,omitempty"`
	Res         string        `yaml:"res,omitempty"        json:"res,omitempty"`
	SizeMM      string        `yaml:"size_mm,omitempty"    json:"size_mm,omitempty"`
	Orientation string        `yaml:"orientation"          json:"orientation"`
	Mode        string        `yaml:"mode,omitempty"       json:"mode,omitempty"`
	Scale       string        `yaml:"scale,omitempty"      json:"scale,omitempty"`
	ScaleMode   string        `yaml:"scale_mode"           json:"scale_mode"`
	ReplicaOf   []string      `yaml:"replica_of,omitempty" json:"replica_of,omitempty"`
	Modes       []*model.Mode `yaml:"modes,omitempty"      json:"modes,omitempty"`
}

// NewScreenResult flattens a Screen for printing. Modes are listed only
// when withModes is set.
func NewScreenResult(s *model.Screen, withModes bool) *ScreenResult {
	r := &ScreenResult{
		Screen:   s.ID,
		Minimum:  s.Minimum,
		Current:  s.Current,
		Maximum:  s.Maximum,
		Monitors: make([]MonitorResult, 0, len(s.Order)),
	}
	if p := s.Primary(); p != nil {
		r.Primary = p.Output
	}
	for _, m := range s.MonitorList() {
		r.Monitors = append(r.Monitors, newMonitorResult(m, withModes))
	}
	return r
}

func newMonitorResult(m *model.Monitor, withModes bool) MonitorResult {
	r := MonitorResult{
		Output:      m.Output,
		Connected:   m.Connected,
		Enabled:     m.Enabled,
		Primary:     m.Primary,
		Orientation: m.Orientation.String(),
		ScaleMode:   string(m.GuessScaleMode()),
		ReplicaOf:   m.ReplicaOf,
	}
	if withModes {
		r.Modes = m.Modes
	}
	if !m.Enabled {
		return r
	}
	r.Pos = fmt.Sprintf("%d,%d", m.PosX, m.PosY)
	r.Res = fmt.Sprintf("%dx%d", m.ResX, m.ResY)
	r.SizeMM = fmt.Sprintf("%dx%d", m.WidthMM, m.HeightMM)
	if mode := m.CurrentMode(); mode != nil {
		r.Mode = mode.String()
		h, v := m.Scale()
		r.Scale = formatFactor(h) + "x" + formatFactor(v)
	}
	return r
}

func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// CommandsResult is the output of `generate` and `apply`.
type CommandsResult struct {
	Commands []string `yaml:"commands"          json:"commands"`
	Applied  bool     `yaml:"applied,omitempty" json:"applied,omitempty"`
	DryRun   bool     `yaml:"dry_run,omitempty" json:"dry_run,omitempty"`
}

// DiffResult is the output of `diff`.
type DiffResult struct {
	Against string         `yaml:"against"           json:"against"`
	Changes []model.Change `yaml:"changes"           json:"changes"`
	Summary string         `yaml:"summary,omitempty" json:"summary,omitempty"`
}

// NewDiffResult wraps changes with a one-line summary.
func NewDiffResult(against string, changes []model.Change) *DiffResult {
	if changes == nil {
		changes = []model.Change{}
	}
	return &DiffResult{Against: against, Changes: changes, Summary: Summarize(changes)}
}

// Summarize counts changes by type, e.g. "1 added, 2 changed".
func Summarize(changes []model.Change) string {
	if len(changes) == 0 {
		return "no changes"
	}
	counts := map[model.ChangeType]int{}
	for _, c := range changes {
		counts[c.Type]++
	}
	var parts []string
	for _, t := range []model.ChangeType{model.ChangeAdded, model.ChangeRemoved, model.ChangeChanged} {
		if n := counts[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, t))
		}
	}
	return strings.Join(parts, ", ")
}

// ProfileSummary is one row of `profile list`.
type ProfileSummary struct {
	Name     string    `yaml:"name"     json:"name"`
	Created  time.Time `yaml:"created"  json:"created"`
	Enabled  int       `yaml:"enabled"  json:"enabled"`
	Commands int       `yaml:"commands" json:"commands"`
}

// ProfilesResult is the output of `profile list`.
type ProfilesResult struct {
	Dir      string           `yaml:"dir,omitempty" json:"dir,omitempty"`
	Profiles []ProfileSummary `yaml:"profiles"      json:"profiles"`
}

// NewProfilesResult summarizes saved profiles.
func NewProfilesResult(profiles []*store.Profile) *ProfilesResult {
	r := &ProfilesResult{Profiles: make([]ProfileSummary, 0, len(profiles))}
	for _, p := range profiles {
		on := 0
		for _, c := range p.Commands {
			if !strings.HasSuffix(c, " --off") {
				on++
			}
		}
		r.Profiles = append(r.Profiles, ProfileSummary{
			Name:     p.Name,
			Created:  p.Created,
			Enabled:  on,
			Commands: len(p.Commands),
		})
	}
	return r
}
