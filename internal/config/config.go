// Package config reads the backend configuration.
//
// Values are read from the environment. A .env file is loaded first if it
// exists, variables that are already set in the environment take precedence
// over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

var (
	ErrAPIURL    = errors.New("API_URL must be an absolute http or https URL")
	ErrGinMode   = errors.New("GIN_MODE must be one of debug, release, test")
	ErrLogFormat = errors.New("LOG_FORMAT must be empty, human or json")
	ErrCurrency  = errors.New("CURRENCY must be an ISO 4217 currency code")
)

type Config struct {
	GinMode          string `mapstructure:"GIN_MODE"`
	LogFormat        string `mapstructure:"LOG_FORMAT"`
	APIURL           string `mapstructure:"API_URL"`
	ListenAddress    string `mapstructure:"LISTEN_ADDRESS"`
	DatabaseDSN      string `mapstructure:"DATABASE_DSN"`
	CORSAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`
	EnablePprof      bool   `mapstructure:"ENABLE_PPROF"`
	SeedSampleData   bool   `mapstructure:"SEED_SAMPLE_DATA"`
	Currency         string `mapstructure:"CURRENCY"`
}

var defaults = map[string]any{
	"GIN_MODE":           "release",
	"LOG_FORMAT":         "",
	"API_URL":            "http://localhost:8080",
	"LISTEN_ADDRESS":     ":8080",
	"DATABASE_DSN":       ":memory:",
	"CORS_ALLOW_ORIGINS": "",
	"ENABLE_PPROF":       false,
	"SEED_SAMPLE_DATA":   true,
	"CURRENCY":           "USD",
}

// Load reads the configuration. envFile is the path of an optional .env
// file, it is skipped when empty or missing.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error reading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)

		// Bind explicitly, AutomaticEnv does not apply to Unmarshal
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that all values can be used.
func (c Config) Validate() error {
	if _, err := c.URL(); err != nil {
		return err
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w, got %q", ErrGinMode, c.GinMode)
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		return fmt.Errorf("%w, got %q", ErrLogFormat, c.LogFormat)
	}

	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("%w, got %q", ErrCurrency, c.Currency)
	}

	return nil
}

// URL returns the parsed API_URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w, got %q", ErrAPIURL, c.APIURL)
	}

	return u, nil
}

// AllowOrigins returns the CORS origins. CORS is disabled when it is empty.
func (c Config) AllowOrigins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}

// HumanLogs reports if logs are written for humans instead of as JSON.
//
// Without an explicit LOG_FORMAT, logs are human readable in debug mode.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}
