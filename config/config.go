// SPDX-License-Identifier: MIT

// Package config layers run settings from defaults, an optional config file,
// SPKMEANS_* environment variables and CLI flags (lowest to highest), then
// validates the merged result.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/kmeans"
	"github.com/katalvlaran/spkmeans/spkmeans"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides; nested keys use '_' (jacobi.tolerance → SPKMEANS_JACOBI_TOLERANCE).
const EnvPrefix = "SPKMEANS"

// Keys understood by Load.
const (
	KeyMaxIter      = "max_iter"
	KeyWorkers      = "workers"
	KeyDelimiter    = "delimiter"
	KeyOutput       = "output"
	KeyMaxRotations = "jacobi.max_rotations"
	KeyTolerance    = "jacobi.tolerance"
	KeyLogLevel     = "log.level"
	KeyLogDev       = "log.development"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the merged, validated configuration.
type Config struct {
	MaxIter   int          `mapstructure:"max_iter" validate:"gte=1"`
	Workers   int          `mapstructure:"workers" validate:"gte=0"`
	Delimiter string       `mapstructure:"delimiter" validate:"len=1"`
	Output    string       `mapstructure:"output" validate:"oneof=text yaml"`
	Jacobi    JacobiConfig `mapstructure:"jacobi"`
	Log       LogConfig    `mapstructure:"log"`
}

// JacobiConfig tunes the eigensolver.
type JacobiConfig struct {
	MaxRotations int     `mapstructure:"max_rotations" validate:"gte=1"`
	Tolerance    float64 `mapstructure:"tolerance" validate:"gte=0"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Development bool   `mapstructure:"development"`
}

var validate = validator.New()

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaxIter, kmeans.DefaultMaxIter)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyDelimiter, ",")
	v.SetDefault(KeyOutput, "text")
	v.SetDefault(KeyMaxRotations, jacobi.DefaultMaxRotations)
	v.SetDefault(KeyTolerance, jacobi.DefaultTolerance)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogDev, false)
}

// Load reads the optional config file at path into v, then decodes and
// validates the merged settings. An empty path skips the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Default returns the validated defaults with no file or environment.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	c, err := Load(v, "")
	if err != nil {
		panic(err) // defaults are constants
	}

	return c
}

// Validate checks the struct tags and reports every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s character", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// DelimiterRune is the single coordinate separator.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)

	return r
}

// Params builds pipeline parameters for goal and k from c.
func (c *Config) Params(goal spkmeans.Goal, k int) spkmeans.Params {
	return spkmeans.Params{
		Goal:         goal,
		K:            k,
		MaxIter:      c.MaxIter,
		MaxRotations: c.Jacobi.MaxRotations,
		Tolerance:    c.Jacobi.Tolerance,
		Workers:      c.Workers,
	}
}
