package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Environment != "production" {
		t.Errorf("Expected production environment, got %s", config.Environment)
	}
	if config.About.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %s", config.About.Version)
	}
	if config.About.License != "MIT" {
		t.Errorf("Expected MIT license, got %s", config.About.License)
	}

	wantAuthors := []string{"Fadel", "Omar Ibrahim", "Abdelrahman Khalil"}
	if len(config.About.Authors) != len(wantAuthors) {
		t.Fatalf("Expected %d authors, got %v", len(wantAuthors), config.About.Authors)
	}
	for i, a := range wantAuthors {
		if config.About.Authors[i] != a {
			t.Errorf("Author %d: expected %q, got %q", i, a, config.About.Authors[i])
		}
	}

	if err := config.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigForEnvironment(t *testing.T) {
	tests := []struct {
		env      string
		expected string
		level    string
	}{
		{"development", "development", "debug"},
		{"test", "test", "error"},
		{"production", "production", "info"},
		{"", "production", "info"},
		{"staging", "production", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			config := ConfigForEnvironment(tt.env)
			if config.Environment != tt.expected {
				t.Errorf("Expected environment %s, got %s", tt.expected, config.Environment)
			}
			if config.LogLevel != tt.level {
				t.Errorf("Expected log level %s, got %s", tt.level, config.LogLevel)
			}
		})
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		value       string
		expected    bool
		expectedSet bool
	}{
		{"true", true, true},
		{"1", true, true},
		{"YES", true, true},
		{"on", true, true},
		{"false", false, true},
		{"0", false, true},
		{"Off", false, true},
		{"n", false, true},
		{"maybe", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("FADEL_TEST_BOOL", tt.value)
			got, present := parseBoolEnv("FADEL_TEST_BOOL")
			if got != tt.expected || present != tt.expectedSet {
				t.Errorf("parseBoolEnv(%q) = (%v, %v), want (%v, %v)", tt.value, got, present, tt.expected, tt.expectedSet)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvEnvironment, "")
		t.Setenv(EnvDebug, "")
		t.Setenv(EnvLogLevel, "")

		config, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if config.Environment != "production" || config.LogLevel != "info" {
			t.Errorf("Unexpected config: %+v", config)
		}
	})

	t.Run("development with debug", func(t *testing.T) {
		t.Setenv(EnvEnvironment, "development")
		t.Setenv(EnvDebug, "")
		t.Setenv(EnvLogLevel, "")

		config, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if !config.IsDevelopment() {
			t.Error("Expected development config")
		}
		if config.LogLevel != "debug" {
			t.Errorf("Expected debug level, got %s", config.LogLevel)
		}
	})

	t.Run("debug flag", func(t *testing.T) {
		t.Setenv(EnvEnvironment, "")
		t.Setenv(EnvDebug, "yes")
		t.Setenv(EnvLogLevel, "")

		config, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if config.LogLevel != "debug" {
			t.Errorf("Expected debug level, got %s", config.LogLevel)
		}
	})

	t.Run("explicit level wins", func(t *testing.T) {
		t.Setenv(EnvEnvironment, "")
		t.Setenv(EnvDebug, "true")
		t.Setenv(EnvLogLevel, "warn")

		config, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if config.LogLevel != "warn" {
			t.Errorf("Expected warn level, got %s", config.LogLevel)
		}
	})

	t.Run("unknown environment rejected", func(t *testing.T) {
		t.Setenv(EnvEnvironment, "staging")
		t.Setenv(EnvDebug, "")
		t.Setenv(EnvLogLevel, "")

		_, err := LoadFromEnv()
		if err == nil || !strings.Contains(err.Error(), EnvEnvironment) {
			t.Errorf("Expected unknown environment to be rejected, got %v", err)
		}
	})

	t.Run("trace level accepted", func(t *testing.T) {
		t.Setenv(EnvEnvironment, "")
		t.Setenv(EnvDebug, "")
		t.Setenv(EnvLogLevel, "trace")

		config, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if config.LogLevel != "trace" {
			t.Errorf("Expected trace level, got %s", config.LogLevel)
		}
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		t.Setenv(EnvEnvironment, "")
		t.Setenv(EnvDebug, "")
		t.Setenv(EnvLogLevel, "chatty")

		if _, err := LoadFromEnv(); err == nil {
			t.Error("Expected invalid log level to be rejected")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{"empty title", func(c *Config) { c.Title = "" }, "title"},
		{"zero splash", func(c *Config) { c.Splash.Width = 0 }, "splash window size"},
		{"negative main", func(c *Config) { c.Main.Height = -1 }, "main window size"},
		{"min exceeds main", func(c *Config) { c.MainMin.Width = c.Main.Width + 1 }, "cannot exceed"},
		{"negative min", func(c *Config) { c.MainMin.Height = -5 }, "cannot be negative"},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log level"},
		{"unknown environment", func(c *Config) { c.Environment = "staging" }, "unknown environment"},
		{"missing version", func(c *Config) { c.About.Version = "" }, "about name and version"},
		{"relative website", func(c *Config) { c.About.Website = "fadel.pages.dev" }, "absolute URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error containing %q, got %v", tt.contains, err)
			}
		})
	}
}

func TestValidate_AcceptsEveryLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "WARN"} {
		t.Run(level, func(t *testing.T) {
			config := DefaultConfig()
			config.LogLevel = level
			if err := config.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		env     string
		want    string
		wantErr bool
	}{
		{"", "production", false},
		{"production", "production", false},
		{"development", "development", false},
		{" Test ", "test", false},
		{"staging", "", true},
		{"prod", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			got, err := ParseEnvironment(tt.env)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEnvironment(%q) error = %v, wantErr %v", tt.env, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEnvironment(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	original := DefaultConfig()
	clone := original.Clone()

	clone.About.Authors[0] = "Someone Else"
	clone.Title = "Other"

	if original.About.Authors[0] != "Fadel" {
		t.Error("Expected clone authors to be independent")
	}
	if original.Title != "Fadel - Compare Images" {
		t.Error("Expected clone title to be independent")
	}
}
