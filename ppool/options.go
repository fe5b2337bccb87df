package ppool

import (
	"time"

	"go.uber.org/zap"
)

type options struct {
	log      *zap.Logger
	now      func() time.Time
	settings Settings
	config   *Config
}

func defaultOptions() options {
	return options{
		log:      zap.NewNop(),
		now:      time.Now,
		settings: DefaultSettings(),
	}
}

// Option configures a pool.
type Option func(*options)

// WithLogger sets the logger used for culls, limit changes and foreign
// objects. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithClock replaces time.Now for staleness bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithSettings sets the settings for keys without a Config entry.
func WithSettings(s Settings) Option {
	return func(o *options) {
		o.settings = s
	}
}

// WithConfig resolves per-key settings by name. It takes precedence over
// WithSettings.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

func (o *options) settingsFor(names ...string) Settings {
	if o.config == nil {
		return o.settings
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		if s, ok := o.config.Keys[n]; ok {
			return s
		}
	}
	return o.config.Default
}
