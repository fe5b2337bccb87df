package ppool

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Unlimited disables the creation ceiling for a key.
	Unlimited = -1
	// NoExpiry keeps available instances forever.
	NoExpiry time.Duration = -1
)

// ErrBadConfig is returned when pool settings fail validation.
var ErrBadConfig = errors.New("ppool: invalid settings")

// Settings controls a single pool key.
type Settings struct {
	// Limit caps Created-Destroyed for the key. Unlimited disables the cap.
	Limit int
	// Staleness is how long an instance may sit available before Expire
	// destroys it. NoExpiry disables aging; zero expires on the next check.
	Staleness time.Duration
	// Prewarm instances are created the first time the key is used.
	Prewarm int
}

// DefaultSettings returns an unlimited, non-expiring key with no prewarm.
func DefaultSettings() Settings {
	return Settings{Limit: Unlimited, Staleness: NoExpiry}
}

// Validate checks the settings for impossible values.
func (s Settings) Validate() error {
	if s.Limit < Unlimited {
		return fmt.Errorf("%w: limit %d", ErrBadConfig, s.Limit)
	}
	if s.Staleness < 0 && s.Staleness != NoExpiry {
		return fmt.Errorf("%w: staleness %v", ErrBadConfig, s.Staleness)
	}
	if s.Prewarm < 0 {
		return fmt.Errorf("%w: prewarm %d", ErrBadConfig, s.Prewarm)
	}
	return nil
}

// rawSettings mirrors Settings in YAML. Missing fields keep the base value.
type rawSettings struct {
	Limit     *string `yaml:"limit"`
	Staleness *string `yaml:"staleness"`
	Prewarm   *int    `yaml:"prewarm"`
}

func parseLimit(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "unlimited") {
		return Unlimited, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: limit %q", ErrBadConfig, s)
	}
	return n, nil
}

func parseStaleness(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "never", "-1":
		return NoExpiry, nil
	case "0":
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: staleness %q", ErrBadConfig, s)
	}
	return d, nil
}

func decodeSettings(node *yaml.Node, base Settings) (Settings, error) {
	var raw rawSettings
	if err := node.Decode(&raw); err != nil {
		return base, err
	}
	s := base
	if raw.Limit != nil {
		n, err := parseLimit(*raw.Limit)
		if err != nil {
			return base, err
		}
		s.Limit = n
	}
	if raw.Staleness != nil {
		d, err := parseStaleness(*raw.Staleness)
		if err != nil {
			return base, err
		}
		s.Staleness = d
	}
	if raw.Prewarm != nil {
		s.Prewarm = *raw.Prewarm
	}
	return s, s.Validate()
}

// UnmarshalYAML decodes settings on top of DefaultSettings. limit accepts an
// integer or "unlimited"; staleness accepts a Go duration or "never".
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	out, err := decodeSettings(node, DefaultSettings())
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalYAML writes the sentinel values by name.
func (s Settings) MarshalYAML() (any, error) {
	out := map[string]any{"prewarm": s.Prewarm}
	if s.Limit == Unlimited {
		out["limit"] = "unlimited"
	} else {
		out["limit"] = s.Limit
	}
	if s.Staleness == NoExpiry {
		out["staleness"] = "never"
	} else {
		out["staleness"] = s.Staleness.String()
	}
	return out, nil
}

// Config holds default settings plus per-key overrides. Keys are matched by
// name: the Hooks.Name of a prototype, or the Go type name for plain objects.
// Build one with DefaultConfig; a zero Config has a limit of 0.
type Config struct {
	Default Settings            `yaml:"default"`
	Keys    map[string]Settings `yaml:"keys"`
}

// DefaultConfig returns a Config with DefaultSettings and no overrides.
func DefaultConfig() Config {
	return Config{Default: DefaultSettings()}
}

// UnmarshalYAML decodes keys on top of the decoded default, so an override
// only needs the fields it changes.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Default yaml.Node            `yaml:"default"`
		Keys    map[string]yaml.Node `yaml:"keys"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	out := DefaultConfig()
	if raw.Default.Kind != 0 {
		def, err := decodeSettings(&raw.Default, out.Default)
		if err != nil {
			return fmt.Errorf("default: %w", err)
		}
		out.Default = def
	}
	if len(raw.Keys) > 0 {
		out.Keys = make(map[string]Settings, len(raw.Keys))
		for name, n := range raw.Keys {
			s, err := decodeSettings(&n, out.Default)
			if err != nil {
				return fmt.Errorf("key %q: %w", name, err)
			}
			out.Keys[name] = s
		}
	}
	*c = out
	return nil
}

// For returns the settings for name, falling back to Default.
func (c Config) For(name string) Settings {
	if s, ok := c.Keys[name]; ok {
		return s
	}
	return c.Default
}

// LoadConfig decodes a YAML pool configuration. An empty document yields
// DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("load pool config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML pool configuration from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("load pool config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
