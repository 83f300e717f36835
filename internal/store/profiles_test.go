package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/xrandroll/internal/model"
)

func sampleReport(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "model", "testdata", "sample_1.txt"))
	if err != nil {
		t.Fatal(err)
	}
	return model.SplitLines(data)
}

func newProfile(t *testing.T, name string, edits ...model.Edit) *Profile {
	t.Helper()
	p, err := NewProfile(name, sampleReport(t), edits...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestStore_SaveLoad(t *testing.T) {
	st := Open(t.TempDir())
	p := newProfile(t, "docked")
	if err := st.Save(p); err != nil {
		t.Fatal(err)
	}

	got, err := st.Load("docked")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Commands) != 2 {
		t.Fatalf("commands: got %d, want 2", len(got.Commands))
	}
	if got.Commands[1] != "xrandr --output HDMI-A-0 --off" {
		t.Errorf("command 1: got %q", got.Commands[1])
	}
	if !got.Created.Equal(p.Created) {
		t.Errorf("created: got %v, want %v", got.Created, p.Created)
	}

	screen, err := got.Screen()
	if err != nil {
		t.Fatal(err)
	}
	if screen.Primary() == nil || screen.Primary().Output != "eDP" {
		t.Error("profile report should parse back with eDP primary")
	}
}

func TestStore_SaveKeepsEdits(t *testing.T) {
	st := Open(t.TempDir())
	p := newProfile(t, "moved", model.Edit{Output: "eDP", HasPos: true, X: 0, Y: 0})
	want := "xrandr --output eDP --pos 0x0 --mode 0x56 --scale 1x1 --rotate normal --primary"
	if p.Commands[0] != want {
		t.Errorf("command 0: got %q, want %q", p.Commands[0], want)
	}
	if err := st.Save(p); err != nil {
		t.Fatal(err)
	}

	got, err := st.Load("moved")
	if err != nil {
		t.Fatal(err)
	}
	screen, err := got.Screen()
	if err != nil {
		t.Fatal(err)
	}
	if edp := screen.Monitors["eDP"]; edp.PosY != 0 {
		t.Errorf("saved layout should replay edits, eDP at y=%d", edp.PosY)
	}
}

func TestNewProfile_Invalid(t *testing.T) {
	if _, err := NewProfile("../x", sampleReport(t)); err == nil {
		t.Error("expected error for an invalid name")
	}
	if _, err := NewProfile("bad", sampleReport(t), model.Edit{Output: "VGA-9", Enable: true}); err == nil {
		t.Error("expected error for an edit on an unknown output")
	}
	if _, err := NewProfile("empty", []string{"no screen here"}); err == nil {
		t.Error("expected error for a report without a screen")
	}
}

func TestStore_ListAndDelete(t *testing.T) {
	st := Open(t.TempDir())
	for _, name := range []string{"work", "home", "travel"} {
		if err := st.Save(newProfile(t, name)); err != nil {
			t.Fatal(err)
		}
	}

	list, err := st.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, p := range list {
		names = append(names, p.Name)
	}
	if len(names) != 3 || names[0] != "home" || names[1] != "travel" || names[2] != "work" {
		t.Fatalf("list: got %v", names)
	}

	if err := st.Delete("travel"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Load("travel"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := st.Delete("travel"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestStore_ListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	st := Open(dir)
	list, err := st.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("expected no profiles, got %d", len(list))
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"work", true},
		{"4k-desk_2.v1", true},
		{"", false},
		{".hidden", false},
		{"../escape", false},
		{"a/b", false},
		{"with space", false},
	}
	for _, tt := range tests {
		if err := ValidateName(tt.name); (err == nil) != tt.valid {
			t.Errorf("ValidateName(%q) = %v, want valid=%v", tt.name, err, tt.valid)
		}
	}
}
