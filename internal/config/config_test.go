package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/morse-decoder/internal/config"
	"github.com/kumarlokesh/morse-decoder/internal/trie"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "./dictionary.txt", cfg.Dictionary.Path)
	assert.Equal(t, "x", cfg.Decoder.Mask)
	assert.Equal(t, "info", cfg.Log.Level)

	policy, err := cfg.DuplicatePolicy()
	require.NoError(t, err)
	assert.Equal(t, trie.KeepLast, policy)
}

func TestLoadConfig_Sources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dictionary:
  path: /srv/words.txt
  duplicates: first
decoder:
  mask: "?"
log:
  level: debug
`), 0o644))

	t.Setenv("MORSE_LOG_FORMAT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dict", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--dict", "words.txt"}))

	cfg, err := config.LoadConfig(path, flags)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	// flag set explicitly wins over the file
	assert.Equal(t, "words.txt", cfg.Dictionary.Path)
	assert.Equal(t, "first", cfg.Dictionary.Duplicates)
	assert.Equal(t, "?", cfg.Decoder.Mask)
	// unset flag does not shadow the file value
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	mask, err := cfg.MaskSymbol()
	require.NoError(t, err)
	assert.Equal(t, byte('?'), mask)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Dictionary: config.DictionaryConfig{Path: "d.txt", Duplicates: "last"},
			Decoder:    config.DecoderConfig{Mask: "x"},
			Log:        config.LogConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "empty path", mutate: func(c *config.Config) { c.Dictionary.Path = "" }},
		{name: "bad duplicates", mutate: func(c *config.Config) { c.Dictionary.Duplicates = "both" }},
		{name: "dot mask", mutate: func(c *config.Config) { c.Decoder.Mask = "." }},
		{name: "dash mask", mutate: func(c *config.Config) { c.Decoder.Mask = "-" }},
		{name: "long mask", mutate: func(c *config.Config) { c.Decoder.Mask = "xx" }},
		{name: "bad level", mutate: func(c *config.Config) { c.Log.Level = "loud" }},
		{name: "bad format", mutate: func(c *config.Config) { c.Log.Format = "xml" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "warn", Format: "json"}}

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info().Msg("hidden")
	logger.Warn().Str("word", "CAN'T").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"word":"CAN'T"`)
}
