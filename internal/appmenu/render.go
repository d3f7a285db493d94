package appmenu

import (
	"fmt"
	"runtime"

	"fadel/internal/infrastructure/errors"

	wailsmenu "github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
)

// EmptySubmenuLabel is shown, disabled, in a submenu that has no children
const EmptySubmenuLabel = "No Recent Files"

// Handler receives the identifier of a clicked action
type Handler func(id string)

// Rendered is the live Wails menu produced from a Tree. It keeps handles to
// every identified submenu so their children can be swapped in place.
// Not safe for concurrent use; callers confine it to one goroutine.
type Rendered struct {
	menu     *wailsmenu.Menu
	submenus map[string]*wailsmenu.MenuItem
	handler  Handler
	goos     string
}

// Render converts the tree into a Wails menu whose actions call handler
func Render(tree Tree, handler Handler) *Rendered {
	return renderFor(tree, handler, runtime.GOOS)
}

func renderFor(tree Tree, handler Handler, goos string) *Rendered {
	r := &Rendered{
		submenus: make(map[string]*wailsmenu.MenuItem),
		handler:  handler,
		goos:     goos,
	}
	r.menu = r.build(tree.entries)
	return r
}

// Menu returns the live Wails menu
func (r *Rendered) Menu() *wailsmenu.Menu {
	return r.menu
}

// Replace swaps the children of the identified submenu in the live menu
func (r *Rendered) Replace(id string, children []Entry) error {
	item, ok := r.submenus[id]
	if !ok {
		return errors.NewShellErrorWithContext("render_submenu",
			fmt.Errorf("submenu %q is not part of the rendered menu", id),
			errors.ErrCodeMenu,
			map[string]string{"id": id})
	}
	item.SubMenu = r.build(children)
	return nil
}

func (r *Rendered) build(entries []Entry) *wailsmenu.Menu {
	m := wailsmenu.NewMenu()
	for _, e := range entries {
		switch e.Kind {
		case KindAction:
			m.Append(r.action(e))
		case KindSeparator:
			m.Append(wailsmenu.Separator())
		case KindSubmenu:
			item := wailsmenu.SubMenu(e.Label, r.build(e.Children))
			if e.ID != "" {
				r.submenus[e.ID] = item
			}
			m.Append(item)
		case KindNative:
			if native := nativeItem(e.Role, r.goos); native != nil {
				m.Append(native)
			}
		}
	}

	if len(entries) == 0 {
		placeholder := wailsmenu.Text(EmptySubmenuLabel, nil, nil)
		placeholder.Disabled = true
		m.Append(placeholder)
	}
	return m
}

func (r *Rendered) action(e Entry) *wailsmenu.MenuItem {
	var accelerator *keys.Accelerator
	if e.Shortcut != "" {
		accelerator = keys.CmdOrCtrl(e.Shortcut)
	}

	id := e.ID
	return wailsmenu.Text(e.Label, accelerator, func(*wailsmenu.CallbackData) {
		if r.handler != nil {
			r.handler(id)
		}
	})
}

// Copy lives in the macOS Edit menu. Elsewhere the webview handles the copy
// shortcut itself, and the Linux and Windows menubars expect every top-level
// item to be a labelled submenu, so no item is rendered.
func nativeItem(role Role, goos string) *wailsmenu.MenuItem {
	if goos != "darwin" {
		return nil
	}
	switch role {
	case RoleCopy:
		return wailsmenu.EditMenu()
	default:
		return nil
	}
}
