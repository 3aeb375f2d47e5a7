package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/monads/pkg/monads/option"
	"github.com/ib-77/monads/pkg/monads/try"
)

type Config struct {
	Log Log `yaml:"log"`
}

func (c *Config) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Dict("log", c.Log.ToDict())
}

func (c *Config) setDefaults() {
	c.Log.setDefaults()
}

func (c *Config) validate() error {
	if err := c.Log.validate(); nil != err {
		return fmt.Errorf("log config validation failed: %v", err)
	}

	return nil
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Log) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("level", c.Level).
		Str("format", c.Format)
}

func (c *Log) setDefaults() {
	c.Level = lo.Ternary(c.Level == "", "info", c.Level)
	c.Format = lo.Ternary(c.Format == "", "pretty", c.Format)
}

func (c *Log) validate() error {
	if !slices.Contains([]string{"trace", "debug", "info", "warn", "error"}, c.Level) {
		return fmt.Errorf("level must be one of: trace, debug, info, warn, error, got: %s", c.Level)
	}

	if !slices.Contains([]string{"json", "pretty"}, c.Format) {
		return fmt.Errorf("format must be 'json' or 'pretty', got: %s", c.Format)
	}

	return nil
}

// Overrides take precedence over the file. Empty options leave the file
// value (or its default) in place.
type Overrides struct {
	Level  option.Option[string]
	Format option.Option[string]
}

// Load reads the YAML file named by filename, when there is one, applies
// overrides and defaults, and validates the result.
func Load(filename option.Option[string], overrides Overrides) try.Try[*Config] {
	data := option.Match(
		filename,
		func(name string) try.Try[[]byte] {
			return try.Attempt(func() ([]byte, error) {
				data, err := os.ReadFile(name)
				if nil != err {
					return nil, fmt.Errorf("failed to read config file %s: %w", name, err)
				}
				return data, nil
			})
		},
		func() try.Try[[]byte] {
			return try.Success[[]byte](nil)
		},
	)

	return try.FlatMap(data, func(data []byte) try.Try[*Config] {
		return parse(data, overrides)
	})
}

func parse(data []byte, overrides Overrides) try.Try[*Config] {
	var conf Config
	if err := yaml.Unmarshal(data, &conf); nil != err {
		return try.Failure[*Config](fmt.Errorf("failed to parse config: %v", err))
	}

	conf.Log.Level = overrides.Level.OrElse(conf.Log.Level)
	conf.Log.Format = overrides.Format.OrElse(conf.Log.Format)
	conf.setDefaults()

	if err := conf.validate(); nil != err {
		return try.Failure[*Config](fmt.Errorf("configuration validation failed: %v", err))
	}

	return try.Success(&conf)
}
