// Package config loads the YAML configuration file, validates it against an
// embedded CUE schema and builds the logger and query client it describes.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/tabquery/internal/filter"
	"github.com/roach88/tabquery/internal/querykey"
)

//go:embed schema.cue
var schemaSource string

// DefaultTimeout bounds each request when the file sets no timeout.
const DefaultTimeout = 30 * time.Second

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logger  LoggerConfig  `yaml:"logger"`
	Query   QueryConfig   `yaml:"query"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type ServerConfig struct {
	BaseURL       string            `yaml:"base_url"`
	ContextPath   string            `yaml:"context_path"`
	ContainerPath string            `yaml:"container_path"`
	Timeout       time.Duration     `yaml:"timeout"`
	Headers       map[string]string `yaml:"headers"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"`
	Type   string `yaml:"type"`
	Output string `yaml:"output"`
}

// QueryConfig holds defaults for selectRows requests issued from the CLI.
type QueryConfig struct {
	RegionName string               `yaml:"region_name"`
	Schema     *querykey.SchemaKey  `yaml:"schema"`
	QueryName  string               `yaml:"query_name"`
	Columns    []*querykey.FieldKey `yaml:"columns"`
	MaxRows    int                  `yaml:"max_rows"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Code: ErrCodeRead, Path: path, Message: "cannot read config file", Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		if ce, ok := err.(*Error); ok {
			ce.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// Parse validates data against the schema and decodes it.
func Parse(data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &Error{Code: ErrCodeSyntax, Message: err.Error(), Err: err}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{Code: ErrCodeValue, Message: err.Error(), Err: err}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// validate unifies raw with #Config and requires a concrete result.
func validate(raw map[string]any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	value := def.Unify(ctx.Encode(raw))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return &Error{Code: ErrCodeSchema, Message: err.Error(), Err: err}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Timeout == 0 {
		c.Server.Timeout = DefaultTimeout
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Type == "" {
		c.Logger.Type = "text"
	}
	if c.Logger.Output == "" {
		c.Logger.Output = "stderr"
	}
	if c.Query.RegionName == "" {
		c.Query.RegionName = filter.DefaultRegionName
	}
}
