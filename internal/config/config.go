package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HWID_TIMEOUT.
const EnvPrefix = "HWID"

// Configuration keys, shared by flags, environment and config file.
const (
	KeyTimeout   = "timeout"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

const (
	DefaultTimeout   = 5 * time.Second
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"

	maxTimeout = time.Minute
)

type Config struct {
	ProbeTimeout time.Duration // bound on each subprocess-backed probe
	LogLevel     string
	LogFormat    string
	Version      string // set from ldflags at build time; empty in dev builds
}

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Duration("timeout", DefaultTimeout, "Timeout for each processor/mainboard query")
	fs.String("log-level", DefaultLogLevel, "Log level: debug, info, warn, error")
	fs.String("log-format", DefaultLogFormat, "Log format: console or json")
}

// BindFlags makes flags registered by RegisterFlags take precedence over the
// environment and the config file.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range map[string]string{
		KeyTimeout:   "timeout",
		KeyLogLevel:  "log-level",
		KeyLogFormat: "log-format",
	} {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("flag --%s is not registered", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load resolves the configuration from v. path is an optional config file;
// it is only ever read. Precedence: flags, HWID_* environment, file, defaults.
func Load(v *viper.Viper, path string) (*Config, error) {
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		ProbeTimeout: v.GetDuration(KeyTimeout),
		LogLevel:     strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:    strings.ToLower(v.GetString(KeyLogFormat)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks every setting.
// Fails fast on the first error.
func (c *Config) Validate() error {
	if c.ProbeTimeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.ProbeTimeout > maxTimeout {
		return fmt.Errorf("timeout must not exceed %s", maxTimeout)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}
