// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read into the Config,
// eg GENOMA_STRICT=true
const EnvPrefix = "GENOMA"

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// whether to log progress, eg files loaded and records skipped
	Verbose bool `mapstructure:"verbose"`

	// whether to fail on an invalid input record rather than skip it
	Strict bool `mapstructure:"strict"`

	// the format of input files, empty to go by their extension
	Format string `mapstructure:"format" validate:"omitempty,oneof=fasta yaml record"`

	// line width of written FASTA files, 0 for a single line per sequence
	Width int `mapstructure:"width" validate:"gte=0"`
}

// Defaults sets the default value of each setting on v
func Defaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("strict", false)
	v.SetDefault("format", "")
	v.SetDefault("width", 60)
}

// New returns a new Config struct populated by
// Viper settings (either from a settings file)
// and/or command line arguments and the environment
func New(v *viper.Viper) (Config, error) {
	var c Config

	if file := v.GetString("settings"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("failed to read settings file %s: %w", file, err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks the settings against their allowed values
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
