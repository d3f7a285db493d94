package app

import (
	stderrors "errors"
	"strings"
	"testing"

	"fadel/internal/config"
	"fadel/internal/infrastructure/errors"
	"fadel/internal/testutils"
	"fadel/internal/window"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := NewApp(config.TestConfig(), testutils.NewRecordingLogger())
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return a
}

func TestNewApp(t *testing.T) {
	a := newTestApp(t)

	if a.Menu() == nil {
		t.Fatal("Expected an application menu")
	}
	for _, name := range []string{window.SplashscreenName, window.MainName} {
		if _, err := a.windows.Get(name); err != nil {
			t.Errorf("Expected window %q to be registered, got %v", name, err)
		}
	}
	if a.controller.LifecycleState() != window.StateSplash {
		t.Errorf("Expected splash state, got %v", a.controller.LifecycleState())
	}
	if a.Bindings() == nil {
		t.Error("Expected front-end bindings")
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := config.TestConfig()
	cfg.Splash.Width = 0

	if _, err := NewApp(cfg, nil); err == nil {
		t.Fatal("Expected invalid configuration to be rejected")
	}
}

func TestNewApp_NilConfigUsesDefaults(t *testing.T) {
	a, err := NewApp(nil, testutils.NewRecordingLogger())
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if a.config.Title != config.DefaultConfig().Title {
		t.Errorf("Expected default title, got %q", a.config.Title)
	}
}

func TestNewApp_CopiesConfig(t *testing.T) {
	cfg := config.TestConfig()
	a, err := NewApp(cfg, testutils.NewRecordingLogger())
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	cfg.MainMin.Width = 1
	cfg.Title = "changed"

	if a.config.MainMin.Width != 640 || a.config.Title == "changed" {
		t.Error("Expected the app to keep its own copy of the configuration")
	}
}

func TestApp_Debug(t *testing.T) {
	tests := []struct {
		cfg           *config.Config
		wantInspector bool
	}{
		{config.DefaultConfig(), false},
		{config.TestConfig(), false},
		{config.DevelopmentConfig(), true},
	}

	for _, tt := range tests {
		t.Run(tt.cfg.Environment, func(t *testing.T) {
			a, err := NewApp(tt.cfg, testutils.NewRecordingLogger())
			if err != nil {
				t.Fatalf("NewApp() error = %v", err)
			}
			if got := a.Debug().OpenInspectorOnStartup; got != tt.wantInspector {
				t.Errorf("OpenInspectorOnStartup = %v, want %v", got, tt.wantInspector)
			}
		})
	}
}

func TestRuntimeBridge_NotStarted(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		name string
		call func() error
	}{
		{"emit", func() error { return a.bridge.Emit("menu://file/open", nil) }},
		{"update menu", func() error { return a.bridge.UpdateMenu(a.Menu()) }},
		{"show about", func() error { return a.bridge.ShowAbout(a.config.About) }},
		{"show window", func() error {
			w, _ := a.windows.Get(window.MainName)
			return w.Show()
		}},
		{"close window", func() error {
			w, _ := a.windows.Get(window.SplashscreenName)
			return w.Close()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.IsNotStarted(err) {
				t.Errorf("Expected not started error, got %v", err)
			}
		})
	}
}

func TestTransitionBeforeStartup(t *testing.T) {
	a := newTestApp(t)

	err := a.controller.TransitionFromSplash()
	if !errors.IsWindowOperation(err) {
		t.Fatalf("Expected window operation error, got %v", err)
	}

	var shellErr *errors.ShellError
	if !stderrors.As(err, &shellErr) || shellErr.GetContext()["window"] != window.SplashscreenName {
		t.Errorf("Expected the failing window in the error context, got %v", err)
	}
	if _, err := a.windows.Get(window.SplashscreenName); err != nil {
		t.Error("Expected splashscreen to stay registered after a failed close")
	}
}

func TestRecentUpdateBeforeStartupIsLogged(t *testing.T) {
	logger := testutils.NewRecordingLogger()
	a, err := NewApp(config.TestConfig(), logger)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	a.controller.HandleRecentFilepaths(`{"recentFilepaths":["a.png"]}`)

	if !logger.Contains("ERROR", "event loop is not running") {
		t.Error("Expected dropped update to be logged")
	}
}

func TestAboutMessage(t *testing.T) {
	msg := aboutMessage(config.DefaultConfig().About)

	for _, want := range []string{"Version 1.0.0", "Fadel, Omar Ibrahim, Abdelrahman Khalil", "License: MIT", "https://fadel.pages.dev/"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected %q in about message, got %q", want, msg)
		}
	}
	if strings.HasSuffix(msg, "\n") {
		t.Error("Expected no trailing newline")
	}
}
