// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "CITYWEATHER"

	minLookupTimeout = time.Second
	maxLookupTimeout = time.Minute
)

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Server struct {
		Address         string        `fig:"address" default:"127.0.0.1:5000"`
		ReadTimeout     time.Duration `fig:"read_timeout" default:"5s"`
		WriteTimeout    time.Duration `fig:"write_timeout" default:"15s"`
		IdleTimeout     time.Duration `fig:"idle_timeout" default:"60s"`
		ShutdownTimeout time.Duration `fig:"shutdown_timeout" default:"5s"`
	} `fig:"server"`

	Lookup struct {
		// Allowed values: 1s to 60s
		Timeout time.Duration `fig:"timeout" default:"5s"`
	} `fig:"lookup"`

	GeoCoder struct {
		// Allowed values: open-meteo, nominatim, opencage, geocode-earth
		Provider string `fig:"provider" default:"open-meteo"`
		APIKey   string `fig:"apikey"`
		Endpoint string `fig:"endpoint"`
	} `fig:"geocoder"`

	Weather struct {
		// Allowed values: open-meteo
		Provider string `fig:"provider" default:"open-meteo"`
		Endpoint string `fig:"endpoint"`
	} `fig:"weather"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if c.Lookup.Timeout < minLookupTimeout || c.Lookup.Timeout > maxLookupTimeout {
		return fmt.Errorf("invalid lookup timeout: %s", c.Lookup.Timeout)
	}

	c.GeoCoder.Provider = strings.ToLower(c.GeoCoder.Provider)
	switch c.GeoCoder.Provider {
	case "open-meteo", "nominatim":
	case "opencage", "geocode-earth":
		if c.GeoCoder.APIKey == "" {
			return fmt.Errorf("%s geocoder requires an API key", c.GeoCoder.Provider)
		}
	default:
		return fmt.Errorf("unsupported geocoder provider: %s", c.GeoCoder.Provider)
	}

	c.Weather.Provider = strings.ToLower(c.Weather.Provider)
	if c.Weather.Provider != "open-meteo" {
		return fmt.Errorf("unsupported weather provider: %s", c.Weather.Provider)
	}

	return nil
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
