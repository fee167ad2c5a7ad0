// Package config resolves pdfcheck settings from defaults, PDFCHECK_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vertti/pdfcheck/pkg/depcheck"
)

// EnvPrefix is prepended to every key when reading the environment,
// e.g. PDFCHECK_RENDERER.
const EnvPrefix = "PDFCHECK"

// Keys understood by New and Load.
const (
	KeyRenderer = "renderer"
	KeyLibrary  = "library"
	KeyLogLevel = "log_level"
)

// Config holds resolved settings.
type Config struct {
	Renderer  string
	Libraries []string // empty means the platform defaults
	LogLevel  string // only parsed when logging is requested, see Level
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRenderer, depcheck.DefaultRenderer)
	v.SetDefault(KeyLibrary, []string{})
	v.SetDefault(KeyLogLevel, "info")
	return v
}

// Load reads the settings out of v.
func Load(v *viper.Viper) (Config, error) {
	renderer := strings.TrimSpace(v.GetString(KeyRenderer))
	if renderer == "" {
		renderer = depcheck.DefaultRenderer
	}

	var libs []string
	for _, lib := range v.GetStringSlice(KeyLibrary) {
		for _, part := range strings.Split(lib, ",") {
			if part = strings.TrimSpace(part); part != "" {
				libs = append(libs, part)
			}
		}
	}

	return Config{
		Renderer:  renderer,
		Libraries: libs,
		LogLevel:  strings.TrimSpace(v.GetString(KeyLogLevel)),
	}, nil
}

// Level parses LogLevel. An empty value means info.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	return level, nil
}

// Check builds the dependency check described by c.
func (c Config) Check() *depcheck.Check {
	return &depcheck.Check{
		Renderer:  c.Renderer,
		Libraries: c.Libraries,
		Finder:    &depcheck.RealFinder{},
		Loader:    &depcheck.RealLoader{},
	}
}
