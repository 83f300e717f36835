package model

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// loadFixture reads a captured report from testdata.
func loadFixture(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return SplitLines(data)
}

// stanza returns the lines of one output stanza from a fixture.
func stanza(t *testing.T, fixture, output string) []string {
	t.Helper()
	for _, g := range SplitByLinesMatching(monitorBoundary, loadFixture(t, fixture)) {
		if strings.HasPrefix(g[0], output+" ") {
			return g
		}
	}
	t.Fatalf("no stanza for %s in %s", output, fixture)
	return nil
}

func TestParseMonitor_Position(t *testing.T) {
	m, err := ParseMonitor([]string{
		"eDP connected primary 1920x1080+0+1080 (0x56) normal (normal left inverted right x axis y axis) 309mm x 173mm",
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.PosX != 0 || m.PosY != 1080 {
		t.Errorf("pos: got %d,%d, want 0,1080", m.PosX, m.PosY)
	}
	if m.ResX != 1920 || m.ResY != 1080 {
		t.Errorf("res: got %dx%d, want 1920x1080", m.ResX, m.ResY)
	}
	if m.WidthMM != 309 || m.HeightMM != 173 {
		t.Errorf("size: got %dmm x %dmm, want 309mm x 173mm", m.WidthMM, m.HeightMM)
	}
	if !m.Enabled || !m.Primary || !m.Connected {
		t.Errorf("flags: enabled=%v primary=%v connected=%v", m.Enabled, m.Primary, m.Connected)
	}
	if m.Orientation != Normal {
		t.Errorf("orientation: got %s, want normal", m.Orientation)
	}
}

func TestParseMonitor_HeaderVariants(t *testing.T) {
	tests := []struct {
		header      string
		enabled     bool
		posX, posY  int
		orientation Orientation
		wMM, hMM    int
	}{
		{"DP-1 connected 1080x1920+1920+0 (0x70) left (normal left inverted right x axis y axis) 527mm x 296mm", true, 1920, 0, Left, 527, 296},
		{"DP-1 connected 1920x1080+-1920+-200 (0x70) inverted (normal left inverted right x axis y axis) 527mm x 296mm", true, -1920, -200, Inverted, 527, 296},
		{"DP-1 connected 1080x1920+0+0 (0x70) right X axis (normal left inverted right x axis y axis) 0mm x 0mm", true, 0, 0, Right, PlaceholderSizeMM, PlaceholderSizeMM},
		{"VGA-1 connected 1024x768+0+0 (0x80) normal (normal left inverted right x axis y axis)", true, 0, 0, Normal, PlaceholderSizeMM, PlaceholderSizeMM},
		{"left connected 1024x768+0+0 (0x80) (normal left inverted right x axis y axis) 100mm x 80mm", true, 0, 0, Normal, 100, 80},
		{"DP-2 connected (normal left inverted right x axis y axis)", false, 0, 0, Normal, 0, 0},
		{"HDMI-A-0 disconnected 1920x1080+0+0 (normal left inverted right x axis y axis) 0mm x 0mm", false, 0, 0, Normal, 0, 0},
	}
	for _, tt := range tests {
		m, err := ParseMonitor([]string{tt.header})
		if err != nil {
			t.Fatalf("%s: %v", tt.header, err)
		}
		if m.Enabled != tt.enabled {
			t.Errorf("%s: enabled = %v, want %v", tt.header, m.Enabled, tt.enabled)
		}
		if m.PosX != tt.posX || m.PosY != tt.posY {
			t.Errorf("%s: pos = %d,%d, want %d,%d", tt.header, m.PosX, m.PosY, tt.posX, tt.posY)
		}
		if m.Orientation != tt.orientation {
			t.Errorf("%s: orientation = %s, want %s", tt.header, m.Orientation, tt.orientation)
		}
		if m.WidthMM != tt.wMM || m.HeightMM != tt.hMM {
			t.Errorf("%s: size = %dx%d, want %dx%d", tt.header, m.WidthMM, m.HeightMM, tt.wMM, tt.hMM)
		}
	}
}

func TestParseMonitor_EmptyHeader(t *testing.T) {
	_, err := ParseMonitor([]string{"   "})
	var fe *FormatError
	if !errors.As(err, &fe) || fe.What != "output name" {
		t.Fatalf("expected output name FormatError, got %v", err)
	}
}

func TestParseMonitor_FieldsAndModes(t *testing.T) {
	m, err := ParseMonitor(stanza(t, "sample_1.txt", "eDP"))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Modes) != 3 {
		t.Fatalf("modes: got %d, want 3", len(m.Modes))
	}
	for i, id := range []string{"0x56", "0x57", "0x58"} {
		if m.Modes[i].ID != id {
			t.Errorf("mode %d: got %s, want %s", i, m.Modes[i].ID, id)
		}
	}
	for _, name := range []string{"Identifier", "Transform", "EDID", "scaling mode", "max bpc"} {
		if _, ok := m.Fields[name]; !ok {
			t.Errorf("field %q missing", name)
		}
	}
	if got := len(m.Fields["Transform"]); got != 4 {
		t.Errorf("Transform lines: got %d, want 4", got)
	}
	if got := len(m.Fields["EDID"]); got != 3 {
		t.Errorf("EDID lines: got %d, want 3", got)
	}
}

func TestParseMonitor_DisabledStopsParsing(t *testing.T) {
	m, err := ParseMonitor(stanza(t, "sample_1.txt", "HDMI-A-0"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Enabled {
		t.Error("disconnected output should be disabled")
	}
	if len(m.Modes) != 0 || len(m.Fields) != 0 {
		t.Errorf("disabled output should have no modes or fields, got %d modes, %d fields", len(m.Modes), len(m.Fields))
	}
	if m.CurrentMode() != nil {
		t.Error("disabled output should have no current mode")
	}
}

func TestParseMonitor_ModesWithoutFields(t *testing.T) {
	m, err := ParseMonitor(append([]string{
		"eDP connected 1920x1080+0+0 (0x56) normal (normal left inverted right x axis y axis) 309mm x 173mm",
	}, modeLines...))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Modes) != 1 || len(m.Fields) != 0 {
		t.Errorf("got %d modes and %d fields, want 1 and 0", len(m.Modes), len(m.Fields))
	}
}

func TestParseMonitor_DuplicateModeID(t *testing.T) {
	lines := []string{"eDP connected 1920x1080+0+0 (0x56) normal (normal left inverted right x axis y axis) 309mm x 173mm"}
	lines = append(lines, modeLines...)
	lines = append(lines,
		"  1280x720 (0x56) 74.250MHz +HSync +VSync",
		"        h: width  1280 start 1390 end 1430 total 1650 skew    0 clock  45.00KHz",
		"        v: height  720 start  725 end  730 total  750           clock  60.00Hz",
	)
	m, err := ParseMonitor(lines)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Modes) != 1 {
		t.Fatalf("got %d modes, want 1", len(m.Modes))
	}
	if m.Modes[0].Width != 1920 {
		t.Errorf("kept %v, want the first 0x56 definition", m.Modes[0])
	}
}

func TestParseMonitor_BadMode(t *testing.T) {
	_, err := ParseMonitor([]string{
		"eDP connected 1920x1080+0+0 (0x56) normal (normal left inverted right x axis y axis) 309mm x 173mm",
		"  1920x1080 (0x56) 138.700MHz +HSync -VSync *current +preferred",
	})
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if !strings.Contains(err.Error(), "output eDP") {
		t.Errorf("error should name the output: %v", err)
	}
}

func TestMonitor_CurrentAndPreferredMode(t *testing.T) {
	m, err := ParseMonitor(stanza(t, "mirror.txt", "HDMI-A-0"))
	if err != nil {
		t.Fatal(err)
	}
	if cur := m.CurrentMode(); cur == nil || cur.ID != "0x60" {
		t.Errorf("current: got %v, want 0x60", cur)
	}
	if pref := m.PreferredMode(); pref == nil || pref.ID != "0x5f" {
		t.Errorf("preferred: got %v, want 0x5f", pref)
	}
}

func TestMonitor_SetCurrentMode(t *testing.T) {
	m, err := ParseMonitor(stanza(t, "sample_1.txt", "eDP"))
	if err != nil {
		t.Fatal(err)
	}

	m.SetCurrentMode("0x57")
	if cur := m.CurrentMode(); cur == nil || cur.ID != "0x57" {
		t.Fatalf("current: got %v, want 0x57", cur)
	}
	count := 0
	for _, mode := range m.Modes {
		if mode.Current {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one current mode, got %d", count)
	}

	m.SetCurrentMode("0xdead")
	if cur := m.CurrentMode(); cur == nil || cur.ID != "0x57" {
		t.Errorf("unknown mode should be a no-op, current is %v", cur)
	}

	m.SetCurrentMode("1280x1024 60Hz (0x58)")
	if cur := m.CurrentMode(); cur == nil || cur.ID != "0x58" {
		t.Errorf("display string lookup: current is %v, want 0x58", cur)
	}
}

func TestMonitor_MatchingMode(t *testing.T) {
	m, err := ParseMonitor(stanza(t, "mirror.txt", "HDMI-A-0"))
	if err != nil {
		t.Fatal(err)
	}
	other := &Mode{ID: "0x99", Width: 1920, Height: 1080, Refresh: 30}
	if got := m.MatchingMode(other); got == nil || got.ID != "0x60" {
		t.Errorf("got %v, want first 1920x1080 mode 0x60", got)
	}
	if got := m.MatchingMode(&Mode{Width: 800, Height: 600}); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got := m.MatchingMode(nil); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestMonitor_GuessScaleMode(t *testing.T) {
	m, err := ParseMonitor(stanza(t, "sample_1.txt", "eDP"))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.GuessScaleMode(); got != ScaleModeDisabled {
		t.Errorf("native: got %q", got)
	}

	m.ResX, m.ResY = 2880, 1620
	if got := m.GuessScaleMode(); got != ScaleModeSame {
		t.Errorf("1.5x1.5: got %q", got)
	}

	m.ResX, m.ResY = 2880, 1080
	if got := m.GuessScaleMode(); got != ScaleModeManual {
		t.Errorf("1.5x1: got %q", got)
	}

	m.Enabled = false
	if got := m.GuessScaleMode(); got != ScaleModeNone {
		t.Errorf("disabled: got %q", got)
	}
}

func TestMonitor_ScaleRotated(t *testing.T) {
	m, err := ParseMonitor(stanza(t, "mirror.txt", "DP-1"))
	if err != nil {
		t.Fatal(err)
	}
	h, v := m.Scale()
	if h != 1 || v != 1 {
		t.Errorf("rotated native scale: got %vx%v, want 1x1", h, v)
	}

	m.SetOrientation(Normal)
	if m.ResX != 1920 || m.ResY != 1080 {
		t.Errorf("after rotating back: got %dx%d, want 1920x1080", m.ResX, m.ResY)
	}

	m.SetScale(2, 1.5)
	if m.ResX != 3840 || m.ResY != 1620 {
		t.Errorf("after scaling: got %dx%d, want 3840x1620", m.ResX, m.ResY)
	}

	m.SetOrientation(Right)
	if m.ResX != 2160 || m.ResY != 2880 {
		t.Errorf("after rotating right: got %dx%d, want 2160x2880", m.ResX, m.ResY)
	}
}

func TestMonitor_SetMode_KeepsScale(t *testing.T) {
	m, err := ParseMonitor(stanza(t, "sample_1.txt", "eDP"))
	if err != nil {
		t.Fatal(err)
	}
	m.SetScale(1.5, 1.5)
	if !m.SetMode("0x58") {
		t.Fatal("SetMode(0x58) returned false")
	}
	if m.ResX != 1920 || m.ResY != 1536 {
		t.Errorf("got %dx%d, want 1920x1536", m.ResX, m.ResY)
	}
	if m.SetMode("nope") {
		t.Error("SetMode(nope) should return false")
	}
}

func TestMonitor_SetEnabled(t *testing.T) {
	m, err := ParseMonitor(stanza(t, "mirror.txt", "HDMI-A-0"))
	if err != nil {
		t.Fatal(err)
	}
	m.SetEnabled(false)
	if m.CurrentMode() != nil {
		t.Error("disabled monitor should report no current mode")
	}
	m.SetEnabled(true)
	if cur := m.CurrentMode(); cur == nil || cur.ID != "0x60" {
		t.Errorf("re-enabling should keep the current mode, got %v", cur)
	}

	for _, mode := range m.Modes {
		mode.Current = false
	}
	m.SetEnabled(true)
	if cur := m.CurrentMode(); cur == nil || cur.ID != "0x5f" {
		t.Fatalf("enabling without a current mode should pick the preferred one, got %v", cur)
	}
	if m.ResX != 3840 || m.ResY != 2160 {
		t.Errorf("res: got %dx%d, want 3840x2160", m.ResX, m.ResY)
	}
}

func TestOrientation_Text(t *testing.T) {
	for _, o := range []Orientation{Normal, Left, Inverted, Right} {
		b, err := o.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Orientation
		if err := back.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if back != o {
			t.Errorf("got %s, want %s", back, o)
		}
	}
	if _, err := ParseOrientation("sideways"); err == nil {
		t.Error("expected error for unknown orientation")
	}
}
