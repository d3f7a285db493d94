package main

import (
	"embed"
	"os"

	"fadel/internal/app"
	"fadel/internal/cli"
	"fadel/internal/config"
	"fadel/internal/infrastructure/logging"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := cli.NewRootCmd(run).Execute(); err != nil {
		logging.LogError(logging.NewDefaultLogger(), err, "startup", nil)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger := logging.NewLogger(os.Stderr, cfg.LogLevel)

	// Create an instance of the app structure
	application, err := app.NewApp(cfg, logger)
	if err != nil {
		return err
	}

	// The window opens at splashscreen size; CloseSplashscreen resizes it for the main view
	return wails.Run(&options.App{
		Title:             cfg.Title,
		Width:             cfg.Splash.Width,
		Height:            cfg.Splash.Height,
		DisableResize:     false,
		Fullscreen:        false,
		Frameless:         false,
		StartHidden:       false,
		HideWindowOnClose: false,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Menu:             application.Menu(),
		Logger:           logging.NewWailsLoggerAdapter(logger),
		LogLevel:         logging.WailsLevel(cfg.LogLevel),
		OnStartup:        application.Startup,
		OnDomReady:       application.DomReady,
		OnBeforeClose:    application.BeforeClose,
		OnShutdown:       application.Shutdown,
		WindowStartState: options.Normal,
		Debug:            application.Debug(),
		Bind: []interface{}{
			application.Bindings(),
		},
		// Windows platform specific options
		Windows: &windows.Options{
			WebviewUserDataPath: "",
			ZoomFactor:          1.0,
		},
		// Mac platform specific options
		Mac: &mac.Options{
			TitleBar: mac.TitleBarDefault(),
			About: &mac.AboutInfo{
				Title:   cfg.About.Name,
				Message: cfg.About.Version,
			},
		},
	})
}
