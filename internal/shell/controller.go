// Package shell implements the native shell controller: the application menu,
// the splashscreen transition and the event bridge to the front-end.
package shell

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"fadel/internal/appmenu"
	"fadel/internal/config"
	"fadel/internal/infrastructure/errors"
	"fadel/internal/infrastructure/logging"
	"fadel/internal/window"

	wailsmenu "github.com/wailsapp/wails/v2/pkg/menu"
)

// Emitter delivers an event to the front-end
type Emitter interface {
	Emit(event string, payload interface{}) error
}

// MenuUpdater installs a menu as the live application menu
type MenuUpdater interface {
	UpdateMenu(m *wailsmenu.Menu) error
}

// Dialogs shows native dialogs
type Dialogs interface {
	ShowAbout(about config.About) error
}

// Options configures a Controller. Exit and Fatal default to process exit.
type Options struct {
	Logger  logging.Logger
	Emitter Emitter
	Menu    MenuUpdater
	Dialogs Dialogs
	Windows *window.Set
	About   config.About

	Exit  func(code int)
	Fatal func(err error)
}

// Controller owns the menu tree, the window lifecycle and the event bridge.
// tree, rendered and recent are only touched on the event loop.
type Controller struct {
	logger    logging.Logger
	emitter   Emitter
	menu      MenuUpdater
	dialogs   Dialogs
	about     config.About
	lifecycle *window.Lifecycle
	loop      *eventLoop

	tree     appmenu.Tree
	rendered *appmenu.Rendered
	recent   []string

	exit  func(code int)
	fatal func(err error)
}

// New builds the menu and the controller around it
func New(opts Options) (*Controller, error) {
	if opts.Emitter == nil || opts.Menu == nil || opts.Dialogs == nil || opts.Windows == nil {
		return nil, errors.NewShellError("new_controller",
			fmt.Errorf("emitter, menu, dialogs and windows are required"), errors.ErrCodeInternal)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	tree, err := appmenu.Build(opts.About)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		logger:    logger,
		emitter:   opts.Emitter,
		menu:      opts.Menu,
		dialogs:   opts.Dialogs,
		about:     opts.About,
		lifecycle: window.NewLifecycle(opts.Windows),
		loop:      newEventLoop(),
		tree:      tree,
		exit:      opts.Exit,
		fatal:     opts.Fatal,
	}
	if c.exit == nil {
		c.exit = os.Exit
	}
	if c.fatal == nil {
		c.fatal = func(error) { os.Exit(1) }
	}

	c.rendered = appmenu.Render(tree, c.Dispatch)
	return c, nil
}

// Start launches the event loop
func (c *Controller) Start() {
	if c.loop.Start() {
		c.logger.Debug("Shell event loop started")
	}
}

// Stop ends the event loop; later menu events are dropped with a log entry
func (c *Controller) Stop() {
	c.loop.Stop()
	c.logger.Debug("Shell event loop stopped")
}

// Menu returns the live application menu, to be installed before any window is shown
func (c *Controller) Menu() *wailsmenu.Menu {
	return c.rendered.Menu()
}

// treeSnapshot returns the current menu tree
func (c *Controller) treeSnapshot() appmenu.Tree {
	var tree appmenu.Tree
	if err := c.loop.Call(func() { tree = c.tree }); err != nil {
		return c.tree
	}
	return tree
}

// recentSnapshot returns a copy of the mirrored recent-files list
func (c *Controller) recentSnapshot() []string {
	var out []string
	snapshot := func() { out = append([]string(nil), c.recent...) }
	if err := c.loop.Call(snapshot); err != nil {
		snapshot()
	}
	return out
}

// LifecycleState reports where the window lifecycle is
func (c *Controller) LifecycleState() window.State {
	return c.lifecycle.State()
}

// TransitionFromSplash closes the splashscreen and shows the main window
func (c *Controller) TransitionFromSplash() error {
	if err := c.lifecycle.TransitionFromSplash(); err != nil {
		return err
	}
	c.logger.Info("Splashscreen closed, main window shown")
	return nil
}

// CloseSplashscreen performs the transition and treats any failure as fatal:
// the shell cannot present a usable UI without both windows.
func (c *Controller) CloseSplashscreen() {
	if err := c.TransitionFromSplash(); err != nil {
		logging.LogError(c.logger, err, "close_splashscreen", map[string]interface{}{
			"state": c.lifecycle.State().String(),
		})
		c.fatal(err)
	}
}

// Dispatch handles a click on the menu entry id
func (c *Controller) Dispatch(id string) {
	action := ParseAction(id)

	switch action.Kind {
	case ActionQuit:
		c.logger.Info("Quit requested from menu")
		c.exit(0)
		return
	case ActionAbout:
		// Dialogs block until dismissed, so they stay off the event loop
		if err := c.dialogs.ShowAbout(c.about); err != nil {
			logging.LogError(c.logger, err, "show_about", nil)
		}
		return
	case ActionUnknown:
		c.logger.Debug("Ignoring unhandled menu identifier", "id", id)
		return
	}

	if err := c.loop.Call(func() { c.emitFor(id, action) }); err != nil {
		logging.LogError(c.logger, err, "dispatch_menu_action", map[string]interface{}{"id": id})
	}
}

func (c *Controller) emitFor(id string, action Action) {
	out, ok := outboundFor(action, c.recent)
	if !ok {
		c.logger.Warn("Recent file entry has no mirrored path", "id", id, "index", action.Index, "recent_count", len(c.recent))
		return
	}
	c.emit(out)
}

// emit is best effort: failures are logged and never stop the shell
func (c *Controller) emit(out Outbound) {
	if err := c.emitter.Emit(out.Event, out.Payload); err != nil {
		var shellErr *errors.ShellError
		if stderrors.As(err, &shellErr) {
			shellErr.WithContext("event", out.Event)
		} else {
			err = errors.NewShellErrorWithContext("emit", err, errors.ErrCodeEmit,
				map[string]string{"event": out.Event})
		}
		logging.LogError(c.logger, err, "emit", nil)
		return
	}
	c.logger.Debug("Menu event emitted", "event", out.Event)
}

// HandleRecentFilepaths is the listener for EventRecentFilepaths. A malformed
// payload degrades to an empty list.
func (c *Controller) HandleRecentFilepaths(data ...interface{}) {
	paths, err := ParseRecentFilepaths(data...)
	if err != nil {
		c.logger.Warn("Malformed recent file paths payload, clearing Recent menu", "error", err.Error())
		paths = nil
	}

	if err := c.loop.Call(func() { c.applyRecent(paths) }); err != nil {
		logging.LogError(c.logger, err, "rebuild_recent_menu", nil)
	}
}

func (c *Controller) applyRecent(paths []string) {
	start := time.Now()
	entries := appmenu.RecentEntries(paths)
	previous, _ := c.tree.Find(appmenu.IDOpenRecent)

	next, err := c.tree.WithChildren(appmenu.IDOpenRecent, entries)
	if err != nil {
		logging.LogError(c.logger, err, "rebuild_recent_menu", nil)
		return
	}
	if err := c.rendered.Replace(appmenu.IDOpenRecent, entries); err != nil {
		logging.LogError(c.logger, err, "rebuild_recent_menu", nil)
		return
	}

	c.tree = next
	c.recent = append([]string(nil), paths...)

	if err := c.menu.UpdateMenu(c.rendered.Menu()); err != nil {
		logging.LogError(c.logger, err, "update_application_menu", nil)
		return
	}

	logging.LogOperation(c.logger, "rebuild_recent_menu", time.Since(start), map[string]interface{}{
		"entries":          len(entries),
		"previous_entries": len(previous.Children),
	})
}
