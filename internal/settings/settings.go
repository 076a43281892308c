// Package settings persists the user-adjustable interest-rate assumption.
// It lives outside the record store and is independent of the signed-in
// identity: loaded once at startup, written on every change.
package settings

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	MinRate     = 8.0
	MaxRate     = 15.0
	RateStep    = 0.5
	DefaultRate = 10.0
)

type Settings struct {
	InterestRate float64 `toml:"interest_rate"`
}

func Default() Settings {
	return Settings{InterestRate: DefaultRate}
}

// ValidateRate checks the slider bounds and the 0.5 step.
func ValidateRate(v float64) error {
	if v < MinRate || v > MaxRate {
		return fmt.Errorf("rate %.2f out of range [%.0f, %.0f]", v, MinRate, MaxRate)
	}

	steps := v / RateStep
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		return fmt.Errorf("rate %.2f is not a multiple of %.1f", v, RateStep)
	}

	return nil
}

// Store holds the current settings and writes them back to a TOML file on
// every change. It satisfies spend.RateProvider.
type Store struct {
	path string

	mu      sync.Mutex
	current Settings
}

// DefaultPath returns the XDG-compliant settings file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "regretly", "settings.toml")
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".config", "regretly", "settings.toml")
}

// Open reads the settings file, falling back to defaults when it does not
// exist. A stored rate outside the supported range is reset rather than
// carried forward.
func Open(path string) (*Store, error) {
	cur := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err == nil {
		if err := toml.Unmarshal(data, &cur); err != nil {
			return nil, fmt.Errorf("parsing settings: %w", err)
		}
	}

	if ValidateRate(cur.InterestRate) != nil {
		cur.InterestRate = DefaultRate
	}

	return &Store{path: path, current: cur}, nil
}

func (s *Store) Rate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current.InterestRate
}

// SetRate validates, applies, and persists a new rate in one step.
func (s *Store) SetRate(v float64) error {
	if err := ValidateRate(v); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.current.InterestRate
	s.current.InterestRate = v

	if err := s.save(); err != nil {
		s.current.InterestRate = previous
		return err
	}

	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s.current); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}

	return nil
}
