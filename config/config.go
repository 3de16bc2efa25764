// Package config loads strview settings from YAML.
//
//	encoding: UTF-8
//	terminator: 0
//	charsets: [ISO-8859-1, windows-1252]
//	log_level: info
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/strview/charset"
	"github.com/wippyai/strview/codec"
	"github.com/wippyai/strview/errors"
	"github.com/wippyai/strview/view"
)

// Config holds the settings a View is built from.
type Config struct {
	Encoding   string   `yaml:"encoding"`
	LogLevel   string   `yaml:"log_level"`
	Charsets   []string `yaml:"charsets"`
	Terminator int      `yaml:"terminator"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Encoding: string(codec.Default),
		LogLevel: "info",
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "read "+path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes YAML over Default. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.ParseFailed("config", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Terminator < 0 || c.Terminator > 0xFF {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(c.Terminator).
			Detail("terminator %d is not a byte value", c.Terminator).
			Build()
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log_level")
	}
	return nil
}

// Logger builds a production zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log_level")
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// Registry returns a registry with the built-in codecs and the configured charsets.
func (c *Config) Registry() (*codec.Registry, error) {
	reg := codec.NewRegistry()
	if err := charset.Register(reg, c.Charsets...); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "charsets")
	}
	if _, err := reg.Lookup(codec.Encoding(c.Encoding)); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "encoding")
	}
	return reg, nil
}

// NewView builds a View from the configuration. A nil logger leaves the
// view on the package logger. Extra options are applied last.
func (c *Config) NewView(logger *zap.Logger, extra ...view.Option) (*view.View, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}
	opts := []view.Option{
		view.WithRegistry(reg),
		view.WithTerminator(byte(c.Terminator)),
	}
	if logger != nil {
		opts = append(opts, view.WithLogger(logger))
	}
	return view.New(append(opts, extra...)...), nil
}

// DefaultEncoding returns the configured encoding.
func (c *Config) DefaultEncoding() codec.Encoding {
	return codec.Encoding(c.Encoding)
}
