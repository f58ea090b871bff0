// Package settings persists the user preferences (sound and screen shake)
// through gdata, which picks the platform data directory.
package settings

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/nebula-defender/internal/core"
)

// AppName is the gdata application name; it names the data directory.
const AppName = "nebula_defender"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Store loads and saves core.Settings. A Store without a gdata manager keeps
// settings in memory only.
type Store struct {
	mu      sync.Mutex
	mgr     *gdata.Manager
	current core.Settings
}

// Open creates a persistent store for appName.
func Open(appName string) (*Store, error) {
	mgr, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("settings: cannot open data directory: %w", err)
	}
	return NewStore(mgr), nil
}

// NewStore wraps mgr, which may be nil for a memory-only store.
func NewStore(mgr *gdata.Manager) *Store {
	return &Store{mgr: mgr, current: core.DefaultSettings()}
}

// Persistent reports whether Save writes to disk.
func (s *Store) Persistent() bool {
	return s.mgr != nil
}

// Load returns the saved settings, or the defaults when nothing was saved.
// On a decode error the defaults are returned alongside the error.
func (s *Store) Load() (core.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mgr == nil || !s.mgr.ObjectPropExists(settingsObject, settingsProperty) {
		return s.current, nil
	}

	data, err := s.mgr.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return core.DefaultSettings(), fmt.Errorf("settings: cannot load: %w", err)
	}

	loaded := core.DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return core.DefaultSettings(), fmt.Errorf("settings: cannot decode: %w", err)
	}
	s.current = loaded
	return loaded, nil
}

// Save stores v.
func (s *Store) Save(v core.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = v
	if s.mgr == nil {
		return nil
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := s.mgr.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	return nil
}
