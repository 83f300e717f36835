package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

func init() {
	// Tests point HOME at temp dirs.
	homedir.DisableCache = true
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	v := viper.New()
	if err := Init(v, ""); err != nil {
		t.Fatal(err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.XrandrPath != "xrandr" {
		t.Errorf("xrandr_path: got %q", c.XrandrPath)
	}
	if c.Format != "yaml" {
		t.Errorf("format: got %q", c.Format)
	}
	if c.PlaceholderMM != 100 {
		t.Errorf("placeholder_mm: got %d", c.PlaceholderMM)
	}
	if c.CacheTTL != 2*time.Second {
		t.Errorf("cache_ttl: got %v", c.CacheTTL)
	}
	if filepath.Base(c.ProfilesDir) != "profiles" || !filepath.IsAbs(c.ProfilesDir) {
		t.Errorf("profiles_dir should expand to an absolute path, got %q", c.ProfilesDir)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "conf.yaml")
	data := "xrandr_path: /opt/bin/xrandr\nplaceholder_mm: 250\ncache_ttl: 500ms\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XRANDROLL_FORMAT", "json")

	v := viper.New()
	if err := Init(v, path); err != nil {
		t.Fatal(err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.XrandrPath != "/opt/bin/xrandr" {
		t.Errorf("xrandr_path: got %q", c.XrandrPath)
	}
	if c.PlaceholderMM != 250 {
		t.Errorf("placeholder_mm: got %d", c.PlaceholderMM)
	}
	if c.CacheTTL != 500*time.Millisecond {
		t.Errorf("cache_ttl: got %v", c.CacheTTL)
	}
	if c.Format != "json" {
		t.Errorf("format from env: got %q", c.Format)
	}
}

func TestInit_MissingExplicitFile(t *testing.T) {
	v := viper.New()
	if err := Init(v, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing explicit config file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value interface{}
	}{
		{KeyPlaceholderMM, 0},
		{KeySnapThreshold, -5},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)
			if _, err := Load(v); err == nil {
				t.Errorf("expected error for %s=%v", tt.key, tt.value)
			}
		})
	}
}
