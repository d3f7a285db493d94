package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"fadel/internal/config"
	"fadel/internal/infrastructure/errors"
	"fadel/internal/window"

	wailsmenu "github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// runtimeBridge forwards shell requests to the Wails runtime. Every call
// fails with ErrCodeNotStarted until Startup has handed over the context.
type runtimeBridge struct {
	mu  sync.RWMutex
	ctx context.Context
}

func (b *runtimeBridge) setContext(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ctx = ctx
}

func (b *runtimeBridge) context(op string) (context.Context, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.ctx == nil {
		return nil, errors.NewShellError(op,
			fmt.Errorf("wails runtime has not started"), errors.ErrCodeNotStarted)
	}
	return b.ctx, nil
}

// Emit broadcasts to the webview; Wails has a single one
func (b *runtimeBridge) Emit(event string, payload interface{}) error {
	ctx, err := b.context("emit")
	if err != nil {
		return err
	}
	runtime.EventsEmit(ctx, event, payload)
	return nil
}

func (b *runtimeBridge) UpdateMenu(m *wailsmenu.Menu) error {
	ctx, err := b.context("update_menu")
	if err != nil {
		return err
	}
	runtime.MenuSetApplicationMenu(ctx, m)
	runtime.MenuUpdateApplicationMenu(ctx)
	return nil
}

func (b *runtimeBridge) ShowAbout(about config.About) error {
	ctx, err := b.context("show_about")
	if err != nil {
		return err
	}

	buttons := []string{"OK"}
	if about.Website != "" && about.WebsiteLabel != "" {
		buttons = []string{about.WebsiteLabel, "OK"}
	}

	result, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
		Type:          runtime.InfoDialog,
		Title:         fmt.Sprintf("About %s", about.Name),
		Message:       aboutMessage(about),
		Buttons:       buttons,
		DefaultButton: "OK",
	})
	if err != nil {
		return errors.NewShellError("show_about", err, errors.ErrCodeInternal)
	}
	if len(buttons) > 1 && result == about.WebsiteLabel {
		runtime.BrowserOpenURL(ctx, about.Website)
	}
	return nil
}

func aboutMessage(about config.About) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Version %s\n", about.Version)
	if len(about.Authors) > 0 {
		fmt.Fprintf(&b, "Authors: %s\n", strings.Join(about.Authors, ", "))
	}
	fmt.Fprintf(&b, "License: %s\n", about.License)
	if about.Website != "" {
		b.WriteString(about.Website)
	}
	return strings.TrimRight(b.String(), "\n")
}

// presentation is one of the two states of the native window: Wails drives a
// single window, so the splashscreen and the main window are sizes of it.
type presentation struct {
	name    string
	bridge  *runtimeBridge
	size    config.WindowSize
	minSize *config.WindowSize
}

var _ window.Window = (*presentation)(nil)

func (p *presentation) Name() string {
	return p.name
}

func (p *presentation) Show() error {
	ctx, err := p.bridge.context("show_window")
	if err != nil {
		return err
	}
	if p.minSize != nil {
		runtime.WindowSetMinSize(ctx, p.minSize.Width, p.minSize.Height)
	}
	runtime.WindowSetSize(ctx, p.size.Width, p.size.Height)
	runtime.WindowCenter(ctx)
	runtime.WindowShow(ctx)
	return nil
}

// Close hides the window; the next presentation's Show brings it back resized
func (p *presentation) Close() error {
	ctx, err := p.bridge.context("close_window")
	if err != nil {
		return err
	}
	runtime.WindowHide(ctx)
	return nil
}
