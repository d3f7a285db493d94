package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const (
	EnvEnvironment = "FADEL_ENV"
	EnvDebug       = "FADEL_DEBUG"
	EnvLogLevel    = "FADEL_LOG_LEVEL"
)

// parseBoolEnv reads an environment variable and parses it as a boolean.
// Returns the parsed value and a boolean indicating if the variable was present.
// Supports true/false, 1/0, yes/no, on/off, t/f, y/n (case-insensitive).
func parseBoolEnv(key string) (bool, bool) {
	value := os.Getenv(key)
	if value == "" {
		return false, false
	}

	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed, true
	}

	switch strings.ToLower(value) {
	case "yes", "y", "on":
		return true, true
	case "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// WindowSize is a window's width and height in device-independent pixels
type WindowSize struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// About is the fixed metadata shown by Help → About
type About struct {
	Name         string   `json:"name" yaml:"name"`
	Version      string   `json:"version" yaml:"version"`
	Authors      []string `json:"authors" yaml:"authors"`
	License      string   `json:"license" yaml:"license"`
	Website      string   `json:"website" yaml:"website"`
	WebsiteLabel string   `json:"websiteLabel" yaml:"websiteLabel"`
}

// Config holds the shell's runtime configuration
type Config struct {
	Environment string `json:"environment" yaml:"environment"` // development, production, test
	LogLevel    string `json:"logLevel" yaml:"logLevel"`

	Title   string     `json:"title" yaml:"title"`
	Splash  WindowSize `json:"splash" yaml:"splash"`   // splashscreen presentation
	Main    WindowSize `json:"main" yaml:"main"`       // main window presentation
	MainMin WindowSize `json:"mainMin" yaml:"mainMin"` // main window minimum size

	About About `json:"about" yaml:"about"`
}

// DefaultConfig returns the production configuration
func DefaultConfig() *Config {
	return &Config{
		Environment: "production",
		LogLevel:    "info",

		Title:   "Fadel - Compare Images",
		Splash:  WindowSize{Width: 400, Height: 200},
		Main:    WindowSize{Width: 1200, Height: 800},
		MainMin: WindowSize{Width: 640, Height: 480},

		About: About{
			Name:    "Fadel - Compare Images",
			Version: "1.0.0",
			Authors: []string{
				"Fadel",
				"Omar Ibrahim",
				"Abdelrahman Khalil",
			},
			License:      "MIT",
			Website:      "https://fadel.pages.dev/",
			WebsiteLabel: "Fadel Website",
		},
	}
}

// DevelopmentConfig returns a configuration for local development
func DevelopmentConfig() *Config {
	config := DefaultConfig()
	config.Environment = "development"
	config.LogLevel = "debug"
	return config
}

// TestConfig returns a configuration for tests
func TestConfig() *Config {
	config := DefaultConfig()
	config.Environment = "test"
	config.LogLevel = "error"
	return config
}

// Environments lists the configuration presets
var Environments = []string{"production", "development", "test"}

// ParseEnvironment checks a preset name. Empty selects production.
func ParseEnvironment(env string) (string, error) {
	env = strings.ToLower(strings.TrimSpace(env))
	if env == "" {
		return "production", nil
	}
	for _, known := range Environments {
		if env == known {
			return env, nil
		}
	}
	return "", fmt.Errorf("unknown environment: %s (must be %s)", env, strings.Join(Environments, ", "))
}

// ConfigForEnvironment returns the configuration preset for env
func ConfigForEnvironment(env string) *Config {
	switch env {
	case "development":
		return DevelopmentConfig()
	case "test":
		return TestConfig()
	default:
		return DefaultConfig()
	}
}

// LoadFromEnv builds the configuration selected by FADEL_ENV and applies overrides
func LoadFromEnv() (*Config, error) {
	env, err := ParseEnvironment(os.Getenv(EnvEnvironment))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvEnvironment, err)
	}
	config := ConfigForEnvironment(env)
	config.LoadFromEnvironment()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromEnvironment applies environment variable overrides
func (c *Config) LoadFromEnvironment() {
	if debug, present := parseBoolEnv(EnvDebug); present && debug {
		c.LogLevel = "debug"
	}

	// An explicit level wins over FADEL_DEBUG
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}

// Validate validates the configuration parameters
func (c *Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	for name, size := range map[string]WindowSize{"splash": c.Splash, "main": c.Main} {
		if size.Width <= 0 || size.Height <= 0 {
			return fmt.Errorf("%s window size must be positive, got %dx%d", name, size.Width, size.Height)
		}
	}

	if c.MainMin.Width < 0 || c.MainMin.Height < 0 {
		return fmt.Errorf("mainMin cannot be negative, got %dx%d", c.MainMin.Width, c.MainMin.Height)
	}

	if c.MainMin.Width > c.Main.Width || c.MainMin.Height > c.Main.Height {
		return fmt.Errorf("mainMin (%dx%d) cannot exceed main (%dx%d)",
			c.MainMin.Width, c.MainMin.Height, c.Main.Width, c.Main.Height)
	}

	if _, err := ParseEnvironment(c.Environment); err != nil {
		return err
	}

	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be trace, debug, info, warn or error)", c.LogLevel)
	}

	if c.About.Name == "" || c.About.Version == "" {
		return fmt.Errorf("about name and version cannot be empty")
	}

	if c.About.Website != "" {
		u, err := url.Parse(c.About.Website)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("about website must be an absolute URL, got %q", c.About.Website)
		}
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Clone returns a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	clone.About.Authors = append([]string(nil), c.About.Authors...)
	return &clone
}
