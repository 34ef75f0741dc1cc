// Package settingsstore holds the user's display preferences. Each value is
// its own slot in the key-value port so the two can be written independently.
package settingsstore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mrlokans/signbook/internal/entities"
	"github.com/mrlokans/signbook/internal/kvstore"
	"github.com/mrlokans/signbook/internal/logger"
)

const DefaultTextScale = 16.0

// Bounds the presentation layer enforces before calling SetTextScale.
const (
	MinTextScale = 12.0
	MaxTextScale = 30.0
)

// ColorTheme is persisted as its integer value.
type ColorTheme int

const (
	ColorThemeSystem ColorTheme = iota
	ColorThemeLight
	ColorThemeDark
)

var colorThemeNames = map[ColorTheme]string{
	ColorThemeSystem: "system",
	ColorThemeLight:  "light",
	ColorThemeDark:   "dark",
}

func (c ColorTheme) Valid() bool {
	_, ok := colorThemeNames[c]
	return ok
}

func (c ColorTheme) String() string {
	if name, ok := colorThemeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ColorTheme(%d)", int(c))
}

func (c ColorTheme) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color theme %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *ColorTheme) UnmarshalText(text []byte) error {
	parsed, err := ParseColorTheme(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColorTheme accepts a theme name, case-insensitive.
func ParseColorTheme(s string) (ColorTheme, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for theme, n := range colorThemeNames {
		if n == name {
			return theme, nil
		}
	}
	return ColorThemeSystem, fmt.Errorf("unknown color theme %q", s)
}

// Snapshot is both preferences read under one lock.
type Snapshot struct {
	TextScale  float64    `json:"text_scale"`
	ColorTheme ColorTheme `json:"color_theme"`
}

type SettingsStore struct {
	kv  kvstore.Store
	log *logger.Logger

	mu        sync.RWMutex
	textScale float64
	theme     ColorTheme
}

// New reads both slots once. Missing or unparsable values fall back to the
// defaults.
func New(kv kvstore.Store, log *logger.Logger) *SettingsStore {
	s := &SettingsStore{
		kv:        kv,
		log:       log,
		textScale: DefaultTextScale,
		theme:     ColorThemeSystem,
	}

	if raw, ok := s.read(entities.SettingKeyTextSize); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			s.textScale = v
		} else {
			s.log.Warn("settings: ignoring unparsable text size", "value", raw)
		}
	}
	if raw, ok := s.read(entities.SettingKeyColorScheme); ok {
		if v, err := strconv.Atoi(raw); err == nil && ColorTheme(v).Valid() {
			s.theme = ColorTheme(v)
		} else {
			s.log.Warn("settings: ignoring unknown color scheme", "value", raw)
		}
	}
	return s
}

func (s *SettingsStore) read(key string) (string, bool) {
	data, err := s.kv.Get(key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", false
	}
	if err != nil {
		s.log.Warn("settings: could not read slot", "key", key, "error", err)
		return "", false
	}
	return string(data), true
}

func (s *SettingsStore) TextScale() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.textScale
}

// SetTextScale stores v as is. Range checks belong to the caller.
func (s *SettingsStore) SetTextScale(v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.textScale = v
	if err := s.kv.Set(entities.SettingKeyTextSize, []byte(strconv.FormatFloat(v, 'f', -1, 64))); err != nil {
		return fmt.Errorf("persist text size: %w", err)
	}
	return nil
}

func (s *SettingsStore) ColorTheme() ColorTheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *SettingsStore) SetColorTheme(t ColorTheme) error {
	if !t.Valid() {
		return fmt.Errorf("invalid color theme %d", int(t))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = t
	if err := s.kv.Set(entities.SettingKeyColorScheme, []byte(strconv.Itoa(int(t)))); err != nil {
		return fmt.Errorf("persist color scheme: %w", err)
	}
	return nil
}

// Reset drops both stored preferences so the defaults apply again.
func (s *SettingsStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.textScale = DefaultTextScale
	s.theme = ColorThemeSystem
	for _, key := range []string{entities.SettingKeyTextSize, entities.SettingKeyColorScheme} {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

func (s *SettingsStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{TextScale: s.textScale, ColorTheme: s.theme}
}
