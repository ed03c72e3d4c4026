package config

import (
	stderrors "errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hxo-dev/hxo/internal/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel         = "HXO_LOG_LEVEL"
	EnvLogFormat        = "HXO_LOG_FORMAT"
	EnvRenderPretty     = "HXO_RENDER_PRETTY"
	EnvLocale           = "HXO_LOCALE"
	EnvMetricsNamespace = "HXO_METRICS_NAMESPACE"
)

// LoadEnvFile loads variables from a dotenv file into the process
// environment. Variables already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.Newf(errors.CategoryConfig, "read %s", path).Wrap(err)
}

// ApplyEnv overrides fields from HXO_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvLogLevel); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := get(EnvLogFormat); ok {
		c.Log.Format = strings.ToLower(v)
	}
	if v, ok := get(EnvRenderPretty); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(errors.CodeConfigInvalid).
				WithDetail(EnvRenderPretty + " must be a boolean").
				Wrap(err)
		}
		c.Render.Pretty = b
	}
	if v, ok := get(EnvLocale); ok {
		c.I18n.Locale = v
	}
	if v, ok := get(EnvMetricsNamespace); ok {
		c.Metrics.Namespace = v
	}
	return nil
}
