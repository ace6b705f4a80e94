package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vassert/internal/errors"
	"github.com/vango-dev/vassert/pkg/markup"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vassert.yaml"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "warn"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "vassert"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables that override file settings.
const (
	EnvColor    = "VASSERT_COLOR"
	EnvLogLevel = "VASSERT_LOG_LEVEL"
)

// Config represents vassert.yaml.
type Config struct {
	// Color controls colored output: auto, always or never.
	Color string `yaml:"color,omitempty"`

	// FailFast stops a test at the first failed assertion. When false,
	// failures are reported and the test continues.
	FailFast bool `yaml:"failFast"`

	// Label overrides the subject label used in messages.
	Label LabelConfig `yaml:"label,omitempty"`

	// Markup configures the structural comparator.
	Markup MarkupConfig `yaml:"markup,omitempty"`

	// Log configures the assertion logger.
	Log LogConfig `yaml:"log,omitempty"`

	// Metrics configures Prometheus collection.
	Metrics MetricsConfig `yaml:"metrics,omitempty"`

	// Tracing configures OpenTelemetry spans.
	Tracing TracingConfig `yaml:"tracing,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LabelConfig overrides the default subject labels.
type LabelConfig struct {
	Element  string `yaml:"element,omitempty"`
	Fragment string `yaml:"fragment,omitempty"`
}

// MarkupConfig contains comparator settings.
type MarkupConfig struct {
	// IgnoreComments drops comments before comparing (default true).
	IgnoreComments *bool `yaml:"ignoreComments,omitempty"`

	// StrictClassOrder makes class token order significant.
	StrictClassOrder bool `yaml:"strictClassOrder,omitempty"`

	// IgnoreAttributes are removed from both sides before comparing.
	IgnoreAttributes []string `yaml:"ignoreAttributes,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error or off.
	Level string `yaml:"level,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool   `yaml:"enabled,omitempty"`
	TracerName string `yaml:"tracerName,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Color:    ColorAuto,
		FailFast: true,
		Log:      LogConfig{Level: DefaultLogLevel},
		Metrics:  MetricsConfig{Namespace: DefaultNamespace},
		Tracing:  TracingConfig{TracerName: "vassert"},
	}
}

// Load reads vassert.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. Environment
// overrides are applied after parsing and the result is validated.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("VA022").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path))
		}
		return nil, errors.New("VA020").Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes YAML data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("VA020").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error())
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvColor); v != "" {
		c.Color = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

func (c *Config) applyDefaults() {
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = "vassert"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.New("VA021").
			WithDetail("color must be auto, always or never, got " + quote(c.Color))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	for _, name := range c.Markup.IgnoreAttributes {
		if strings.TrimSpace(name) == "" {
			return errors.New("VA021").
				WithDetail("markup.ignoreAttributes contains an empty name")
		}
	}
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// IgnoreComments reports whether comments are dropped before comparing.
func (c *Config) IgnoreComments() bool {
	return c.Markup.IgnoreComments == nil || *c.Markup.IgnoreComments
}

// MarkupOptions translates the markup section into comparator options.
func (c *Config) MarkupOptions() []markup.Option {
	var opts []markup.Option
	if !c.IgnoreComments() {
		opts = append(opts, markup.WithComments())
	}
	if c.Markup.StrictClassOrder {
		opts = append(opts, markup.WithStrictClassOrder())
	}
	if len(c.Markup.IgnoreAttributes) > 0 {
		opts = append(opts, markup.IgnoreAttributes(c.Markup.IgnoreAttributes...))
	}
	return opts
}

// UseColor resolves the color mode. In auto mode the caller's terminal
// detection decides.
func (c *Config) UseColor(terminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

// Logger builds a zap logger writing to stderr at the configured level.
// Level "off" returns a no-op logger.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	if c.Log.Level == "off" {
		return zap.NewNop(), nil
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if c.Color == ColorAlways {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zc.Build()
}

func parseLevel(s string) (zapcore.Level, error) {
	switch s {
	case "off":
		return zapcore.FatalLevel, nil
	case "debug", "info", "warn", "error":
		return zapcore.ParseLevel(s)
	}
	return zapcore.InfoLevel, errors.New("VA021").
		WithDetail("log.level must be debug, info, warn, error or off, got " + quote(s))
}

func quote(s string) string {
	return `"` + s + `"`
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindRoot walks up from startDir to the first directory containing
// vassert.yaml.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("VA022").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadOrDefault loads the nearest vassert.yaml at or above dir, falling
// back to the defaults (with environment overrides) when there is none.
func LoadOrDefault(dir string) (*Config, error) {
	root, err := FindRoot(dir)
	if err != nil {
		if errors.Code(err) == "VA022" {
			cfg := Default()
			cfg.applyEnv()
			cfg.applyDefaults()
			return cfg, cfg.Validate()
		}
		return nil, err
	}
	return Load(root)
}
