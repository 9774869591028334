package sfoglia

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
)

// Options configures engine construction.
type Options struct {
	HomeRoute string        `toml:"home_route"` // Route name of the permanent root entry ("/" if empty)
	Home      route.Factory `toml:"-"`          // Produces the root entry's content; required
	LogPath   string        `toml:"log_path"`   // Full path for log file including filename (creates parent directories)
	LogLevel  string        `toml:"log_level"`  // debug, info, warn or error; defaults to warn

	// NoFallback skips installing the built-in localized not-found
	// fallback. The host must then RegisterFallback before the first named
	// navigation or inbound address; until it does, those fail with
	// ErrNoFallback.
	NoFallback bool `toml:"no_fallback"`

	Bundle    *i18n.Bundle `toml:"-"`         // Message bundle for the built-in not-found page
	Languages []string     `toml:"languages"` // Language preferences for the built-in not-found page
}

// LoadOptions reads Options from a TOML file. Fields that cannot live in
// configuration — the home factory and the message bundle — stay nil for the
// host to fill in before calling New.
func LoadOptions(path string) (Options, error) {
	var opts Options
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, &ConfigError{Op: "load_options", Err: err}
	}
	return opts, nil
}
