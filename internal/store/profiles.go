// Package store persists named display layouts ("profiles") on disk.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/mj1618/xrandroll/internal/model"
)

// ErrNotFound is returned when a profile does not exist.
var ErrNotFound = errors.New("profile not found")

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Profile is a saved layout: the report it was captured from, the edits
// made on top of it, and the commands that restore the result.
type Profile struct {
	Name     string       `json:"name"            yaml:"name"`
	Created  time.Time    `json:"created"         yaml:"created"`
	Commands []string     `json:"commands"        yaml:"commands"`
	Edits    []model.Edit `json:"edits,omitempty" yaml:"edits,omitempty"`
	Report   []string     `json:"report"          yaml:"-"`
}

// NewProfile captures the layout described by report after applying edits.
func NewProfile(name string, report []string, edits ...model.Edit) (*Profile, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	p := &Profile{
		Name:    name,
		Created: time.Now().UTC(),
		Edits:   edits,
		Report:  append([]string(nil), report...),
	}
	screen, err := p.Screen()
	if err != nil {
		return nil, err
	}
	p.Commands = screen.Generate()
	return p, nil
}

// Screen rebuilds the saved layout: the captured report with the edits
// applied in order.
func (p *Profile) Screen() (*model.Screen, error) {
	s, err := model.ParseScreen(p.Report)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", p.Name, err)
	}
	s.UpdateReplicaOf()
	for _, e := range p.Edits {
		if err := e.Apply(s); err != nil {
			return nil, fmt.Errorf("profile %s: %w", p.Name, err)
		}
	}
	return s, nil
}

// Store keeps one JSON file per profile under a base directory.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// Open returns a Store rooted at dir. The directory is created on first write.
func Open(dir string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: dir}
}

// BasePath returns the directory profiles are stored in.
func (s *Store) BasePath() string {
	return s.basePath
}

// ValidateName rejects names that are not a single plain file name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid profile name %q: use letters, digits, '.', '_' or '-'", name)
	}
	return nil
}

// Save writes p, replacing any profile with the same name.
func (s *Store) Save(p *Profile) error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile %s: %w", p.Name, err)
	}
	if err := s.d.Write(p.Name, data); err != nil {
		return fmt.Errorf("writing profile %s: %w", p.Name, err)
	}
	return nil
}

// Load reads the named profile.
func (s *Store) Load(name string) (*Profile, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if !s.d.Has(name) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	data, err := s.d.Read(name)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", name, err)
	}
	p := &Profile{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decoding profile %s: %w", name, err)
	}
	p.Name = name
	return p, nil
}

// List returns every profile sorted by name. Files that do not decode as
// profiles are skipped.
func (s *Store) List(ctx context.Context) ([]*Profile, error) {
	var profiles []*Profile
	for key := range s.d.Keys(ctx.Done()) {
		if ValidateName(key) != nil {
			continue
		}
		p, err := s.Load(key)
		if err != nil {
			continue
		}
		profiles = append(profiles, p)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles, nil
}

// Delete removes the named profile.
func (s *Store) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if !s.d.Has(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := s.d.Erase(name); err != nil {
		return fmt.Errorf("deleting profile %s: %w", name, err)
	}
	return nil
}
