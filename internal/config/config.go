package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hxo-dev/hxo/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hxo.json"

	// EnvFileName is the dotenv file read from the config directory.
	EnvFileName = ".env"

	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultIndent     = "  "
	DefaultLocale     = "en"
	DefaultCacheSize  = 512
	DefaultNamespace  = "hxo"
	DefaultIterations = 1000
	DefaultWidth      = 10
)

// Config represents hxo.json.
type Config struct {
	Log     LogConfig     `json:"log"`
	Render  RenderConfig  `json:"render"`
	I18n    I18nConfig    `json:"i18n"`
	Metrics MetricsConfig `json:"metrics"`
	Bench   BenchConfig   `json:"bench"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// RenderConfig configures string rendering.
type RenderConfig struct {
	Pretty bool   `json:"pretty,omitempty"`
	Indent string `json:"indent,omitempty"`
}

// I18nConfig configures the translator.
type I18nConfig struct {
	Locale    string `json:"locale,omitempty"`
	CacheSize int    `json:"cacheSize,omitempty"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// BenchConfig holds defaults for `hxo bench`.
type BenchConfig struct {
	Iterations int `json:"iterations,omitempty"`

	// Width is the number of computed values fanned out from one signal.
	Width int `json:"width,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads hxo.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from path. Missing fields keep their
// defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.CodeConfigMissing).
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				Wrap(err)
		}
		return nil, errors.New(errors.CodeConfigSyntax).Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		e := errors.New(errors.CodeConfigSyntax).Wrap(err).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
		var syntax *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case stderrors.As(err, &syntax):
			e.WithOffset(path, data, syntax.Offset)
		case stderrors.As(err, &typeErr):
			e.WithOffset(path, data, typeErr.Offset)
		}
		return nil, e
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Newf(errors.CategoryConfig, "write %s", path).Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file, or "".
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
	if c.I18n.Locale == "" {
		c.I18n.Locale = DefaultLocale
	}
	if c.I18n.CacheSize == 0 {
		c.I18n.CacheSize = DefaultCacheSize
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Bench.Iterations == 0 {
		c.Bench.Iterations = DefaultIterations
	}
	if c.Bench.Width == 0 {
		c.Bench.Width = DefaultWidth
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	invalid := func(detail string) error {
		e := errors.New(errors.CodeConfigInvalid).WithDetail(detail)
		if c.configPath != "" {
			e.WithLocation(c.configPath, 1, 0)
		}
		return e
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return invalid(`log.level must be one of debug, info, warn, error; got "` + c.Log.Level + `"`)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return invalid(`log.format must be "text" or "json"; got "` + c.Log.Format + `"`)
	}
	if c.I18n.CacheSize < 0 {
		return invalid("i18n.cacheSize must be positive")
	}
	if c.Bench.Iterations < 0 || c.Bench.Width < 0 {
		return invalid("bench.iterations and bench.width must be positive")
	}
	return nil
}

// Exists reports whether dir contains a config file.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the first directory that
// contains hxo.json.
func FindProjectRoot(startDir string) (string, error) {
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
			return "", errors.New(errors.CodeConfigMissing).
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the nearest hxo.json above the working directory,
// or defaults when there is none, then applies .env and HXO_* overrides and
// validates the result.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadDir(wd)
}

// LoadDir is LoadFromWorkingDir starting at dir.
func LoadDir(dir string) (*Config, error) {
	cfg := New()
	envDir := dir
	if root, err := FindProjectRoot(dir); err == nil {
		if cfg, err = Load(root); err != nil {
			return nil, err
		}
		envDir = root
	}

	if err := LoadEnvFile(filepath.Join(envDir, EnvFileName)); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
