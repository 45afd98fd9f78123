package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kumarlokesh/morse-decoder/internal/morse"
	"github.com/kumarlokesh/morse-decoder/internal/trie"
)

// EnvPrefix prefixes environment overrides, e.g. MORSE_DICTIONARY_PATH.
const EnvPrefix = "MORSE"

// Config holds all configuration for the application
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Decoder    DecoderConfig    `mapstructure:"decoder"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig holds word list related configuration
type DictionaryConfig struct {
	Path       string `mapstructure:"path"`
	Duplicates string `mapstructure:"duplicates"`
}

// DecoderConfig holds masked query related configuration
type DecoderConfig struct {
	Mask string `mapstructure:"mask"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file, environment variables and flags.
// configPath and flags may be empty/nil.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"dict":       "dictionary.path",
	"duplicates": "dictionary.duplicates",
	"mask":       "decoder.mask",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "./dictionary.txt")
	v.SetDefault("dictionary.duplicates", "last")

	v.SetDefault("decoder.mask", string(rune(morse.DefaultMask)))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary path is required")
	}
	if _, err := c.DuplicatePolicy(); err != nil {
		return err
	}
	if _, err := c.MaskSymbol(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: want console or json", c.Log.Format)
	}
	return nil
}

// DuplicatePolicy returns the configured trie duplicate-encoding policy.
func (c *Config) DuplicatePolicy() (trie.DuplicatePolicy, error) {
	switch strings.ToLower(c.Dictionary.Duplicates) {
	case "last", "":
		return trie.KeepLast, nil
	case "first":
		return trie.KeepFirst, nil
	default:
		return 0, fmt.Errorf("invalid duplicates policy %q: want first or last", c.Dictionary.Duplicates)
	}
}

// MaskSymbol returns the configured mask as a single byte.
func (c *Config) MaskSymbol() (byte, error) {
	m := c.Decoder.Mask
	if len(m) != 1 {
		return 0, fmt.Errorf("mask must be a single character, got %q", m)
	}
	if m[0] == morse.Dot || m[0] == morse.Dash || m[0] == ' ' {
		return 0, fmt.Errorf("mask %q collides with a morse symbol", m)
	}
	return m[0], nil
}
