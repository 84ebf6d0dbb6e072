package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Prefs holds the viewer-adjustable playback preferences. They sit on top
// of the static config file: the config decides the base scroll speed, and
// these scale or flip it at runtime.
type Prefs struct {
	// SpeedFactor multiplies the configured scroll speed. Clamped to
	// 0.25 .. 3.0 so a stray keypress can never park or blur the ticker.
	SpeedFactor float64 `yaml:"speedFactor"`
	// Reverse scrolls content left-to-right instead of the default.
	Reverse bool `yaml:"reverse"`
}

// DefaultPrefs returns the out-of-the-box preferences.
func DefaultPrefs() *Prefs {
	return &Prefs{
		SpeedFactor: 1.0,
		Reverse:     false,
	}
}

const (
	minSpeedFactor = 0.25
	maxSpeedFactor = 3.0
)

const (
	prefsObject   = "prefs"
	prefsProperty = "playback"
)

// Manager loads and saves Prefs through a gdata store. A nil store puts the
// manager in memory-only mode: reads and writes work, nothing persists.
type Manager struct {
	store *gdata.Manager
	prefs *Prefs
}

// NewManager creates a preferences manager backed by the given store.
// Load failures are not fatal; the manager falls back to defaults and
// reports the error so the caller can log it once.
func NewManager(store *gdata.Manager) (*Manager, error) {
	m := &Manager{
		store: store,
		prefs: DefaultPrefs(),
	}
	if err := m.Load(); err != nil {
		log.Printf("Failed to load preferences: %v (using defaults)", err)
	}
	return m, nil
}

// Load reads preferences from the store. Missing data or a nil store
// resets to defaults without error.
func (m *Manager) Load() error {
	if m.store == nil {
		m.prefs = DefaultPrefs()
		return nil
	}
	if !m.store.ObjectPropExists(prefsObject, prefsProperty) {
		m.prefs = DefaultPrefs()
		return nil
	}
	data, err := m.store.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		m.prefs = DefaultPrefs()
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	var loaded Prefs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.prefs = DefaultPrefs()
		return fmt.Errorf("failed to parse preferences: %w", err)
	}
	loaded.SpeedFactor = clampSpeedFactor(loaded.SpeedFactor)
	m.prefs = &loaded
	return nil
}

// Save writes the current preferences to the store. In memory-only mode
// it is a no-op.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := m.store.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Prefs returns the live preferences instance.
func (m *Manager) Prefs() *Prefs {
	return m.prefs
}

// SetSpeedFactor updates the speed multiplier, clamped to the allowed
// range. Call Save to persist.
func (m *Manager) SetSpeedFactor(factor float64) {
	m.prefs.SpeedFactor = clampSpeedFactor(factor)
}

// AdjustSpeedFactor nudges the multiplier by delta and returns the
// clamped result.
func (m *Manager) AdjustSpeedFactor(delta float64) float64 {
	m.SetSpeedFactor(m.prefs.SpeedFactor + delta)
	return m.prefs.SpeedFactor
}

// SetReverse flips the scroll direction. Call Save to persist.
func (m *Manager) SetReverse(reverse bool) {
	m.prefs.Reverse = reverse
}

// ToggleReverse inverts the current direction and returns the new value.
func (m *Manager) ToggleReverse() bool {
	m.prefs.Reverse = !m.prefs.Reverse
	return m.prefs.Reverse
}

func clampSpeedFactor(factor float64) float64 {
	if factor < minSpeedFactor {
		return minSpeedFactor
	}
	if factor > maxSpeedFactor {
		return maxSpeedFactor
	}
	return factor
}
