package app

import (
	"context"
	"os"

	"fadel/internal/config"
	"fadel/internal/infrastructure/errors"
	"fadel/internal/infrastructure/logging"
	"fadel/internal/shell"
	"fadel/internal/window"

	wailsmenu "github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct represents the native shell application
type App struct {
	ctx        context.Context
	config     *config.Config
	logger     logging.Logger
	bridge     *runtimeBridge
	windows    *window.Set
	controller *shell.Controller

	// stopRecent unregisters the recent-files listener
	stopRecent func()
}

// NewApp creates the App with its controller and menu; nothing touches the
// Wails runtime until Startup
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	// Window presentations keep pointers into the config
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	bridge := &runtimeBridge{}
	windows := window.NewSet(
		&presentation{name: window.SplashscreenName, bridge: bridge, size: cfg.Splash},
		&presentation{name: window.MainName, bridge: bridge, size: cfg.Main, minSize: &cfg.MainMin},
	)

	a := &App{
		config:  cfg,
		logger:  logger,
		bridge:  bridge,
		windows: windows,
	}

	controller, err := shell.New(shell.Options{
		Logger:  logger,
		Emitter: bridge,
		Menu:    bridge,
		Dialogs: bridge,
		Windows: windows,
		About:   cfg.About,
		Exit:    a.exit,
		Fatal:   a.fatal,
	})
	if err != nil {
		return nil, err
	}
	a.controller = controller

	return a, nil
}

// Menu is the application menu; pass it to Wails so it is installed before the window shows
func (a *App) Menu() *wailsmenu.Menu {
	return a.controller.Menu()
}

// Debug returns the Wails debug options; development builds open the inspector
func (a *App) Debug() options.Debug {
	return options.Debug{OpenInspectorOnStartup: a.config.IsDevelopment()}
}

// Bindings returns the object exposed to the front-end
func (a *App) Bindings() *Bindings {
	return &Bindings{app: a}
}

// Startup is called at application startup
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.bridge.setContext(ctx)

	a.controller.Start()
	a.stopRecent = runtime.EventsOn(ctx, shell.EventRecentFilepaths, a.controller.HandleRecentFilepaths)

	a.logger.Info("Application started", "environment", a.config.Environment)
}

// DomReady is called after front-end resources have been loaded
func (a *App) DomReady(ctx context.Context) {
	a.logger.Debug("Front-end ready", "state", a.controller.LifecycleState().String())
}

// BeforeClose is called when the application is about to quit
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	return false
}

// Shutdown is called at application termination
func (a *App) Shutdown(ctx context.Context) {
	if a.stopRecent != nil {
		a.stopRecent()
		a.stopRecent = nil
	}
	a.controller.Stop()
	a.bridge.setContext(nil)

	a.logger.Info("Application shutdown completed")
}

// CloseSplashscreen swaps the splashscreen for the main window
func (a *App) CloseSplashscreen() {
	a.controller.CloseSplashscreen()
}

func (a *App) exit(code int) {
	a.logger.Info("Exiting", "code", code)
	os.Exit(code)
}

func (a *App) fatal(err error) {
	a.logger.Error("Fatal shell error, exiting",
		"error", err.Error(),
		"error_code", errors.CodeOf(err).String())
	os.Exit(1)
}

// Bindings is the front-end API. It is kept apart from App so the lifecycle
// hooks are not exposed to JavaScript.
type Bindings struct {
	app *App
}

// CloseSplashscreen is invoked by the front-end once it has finished loading
func (b *Bindings) CloseSplashscreen() {
	b.app.CloseSplashscreen()
}
