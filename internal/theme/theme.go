// Package theme holds the light/dark preference. The choice survives
// restarts through a small TOML file and every change is announced on the
// event bus so the renderer can swap palettes.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"carousel/internal/events"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

var ErrUnknownTheme = errors.New("unknown theme")

func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTheme, s)
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

type preference struct {
	Theme string `toml:"theme"`
}

// Store persists the preference as a one-key TOML file.
type Store struct {
	fs   afero.Fs
	path string
}

func NewStore(fsys afero.Fs, path string) *Store {
	return &Store{fs: fsys, path: path}
}

func (s *Store) Path() string { return s.path }

// Load returns the saved theme. ok is false when nothing was saved yet.
func (s *Store) Load() (t Theme, ok bool, err error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read theme: %w", err)
	}
	var p preference
	if err := toml.Unmarshal(data, &p); err != nil {
		return "", false, fmt.Errorf("decode theme %s: %w", s.path, err)
	}
	t, err = Parse(p.Theme)
	if err != nil {
		return "", false, fmt.Errorf("decode theme %s: %w", s.path, err)
	}
	return t, true, nil
}

func (s *Store) Save(t Theme) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir theme dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(preference{Theme: string(t)}); err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

// Toggle is the live theme state.
type Toggle struct {
	current Theme
	store   *Store
	bus     *events.Bus
	log     *slog.Logger
}

// NewToggle applies the saved theme, or fallback when none is saved, and
// announces it. A nil store keeps the preference in memory only.
func NewToggle(store *Store, fallback Theme, bus *events.Bus, log *slog.Logger) (*Toggle, error) {
	if log == nil {
		log = slog.Default()
	}
	tg := &Toggle{store: store, bus: bus, log: log}

	initial := fallback
	if store != nil {
		saved, ok, err := store.Load()
		if err != nil {
			return nil, err
		}
		if ok {
			initial = saved
		}
	}
	if _, err := Parse(string(initial)); err != nil {
		return nil, err
	}
	if err := tg.apply(initial, 0, 0); err != nil {
		return nil, err
	}
	return tg, nil
}

func (tg *Toggle) Current() Theme { return tg.current }
func (tg *Toggle) IsDark() bool   { return tg.current == Dark }

// Set switches to t. x and y locate the ripple, as an offset from the stage
// center.
func (tg *Toggle) Set(t Theme, x, y float64) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	return tg.apply(t, x, y)
}

// Toggle flips between light and dark.
func (tg *Toggle) Toggle(x, y float64) error {
	return tg.apply(tg.current.Other(), x, y)
}

func (tg *Toggle) apply(t Theme, x, y float64) error {
	tg.current = t
	if tg.store != nil {
		if err := tg.store.Save(t); err != nil {
			return err
		}
	}
	tg.bus.Emit(events.Event{Type: events.ThemeChanged, Theme: string(t), X: x, Y: y})
	tg.log.Debug("theme applied", "theme", t)
	return nil
}
