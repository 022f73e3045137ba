// Package config holds the interpreter's YAML configuration.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default.yaml
var defaultConfigData []byte

// ConfigurationName is the file name looked up in the config directory.
const ConfigurationName = "config.yaml"

type Config struct {
	Prompt      Prompt      `json:"prompt"`
	Redirection Redirection `json:"redirection"`

	// HistoryFile, when set, persists line history across sessions.
	HistoryFile string `json:"history_file"`

	// DefaultPath is the search path used when PATH is unset.
	DefaultPath string `json:"default_path" validate:"required"`
}

type Prompt struct {
	// Format is the prompt string; \w expands to the working directory.
	Format string `json:"format" validate:"required"`
	Color  bool   `json:"color"`
}

type Redirection struct {
	// ClobberTruncates switches the non-appending redirection
	// operators (>, 1>, 2>) from the default append-and-create
	// behavior to conventional truncation.
	ClobberTruncates bool `json:"clobber_truncates"`
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration.
func Default() *Config {
	var out Config
	// The embedded default is compiled in and must parse.
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
