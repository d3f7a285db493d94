// Package appmenu models the native application menu as an ordered tree of
// entries and renders it onto Wails menu objects.
package appmenu

import (
	"fmt"

	"fadel/internal/infrastructure/errors"

	"github.com/samber/lo"
)

// Kind identifies what an Entry is
type Kind int

const (
	KindAction Kind = iota
	KindSeparator
	KindSubmenu
	KindNative
)

func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindSeparator:
		return "separator"
	case KindSubmenu:
		return "submenu"
	case KindNative:
		return "native"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Role names a platform-provided entry
type Role int

const (
	RoleNone Role = iota
	RoleCopy
)

// Entry is one node of the menu tree
type Entry struct {
	Kind     Kind
	ID       string // required for actions, optional for submenus
	Label    string
	Shortcut string // key combined with CmdOrCtrl, actions only
	Role     Role   // natives only
	Children []Entry
}

// Action creates a clickable entry
func Action(id, label string) Entry {
	return Entry{Kind: KindAction, ID: id, Label: label}
}

// ActionWithShortcut creates a clickable entry bound to CmdOrCtrl+key
func ActionWithShortcut(id, label, key string) Entry {
	e := Action(id, label)
	e.Shortcut = key
	return e
}

// Separator creates a separator line
func Separator() Entry {
	return Entry{Kind: KindSeparator}
}

// Submenu creates a nested menu. id may be empty for submenus that are never replaced.
func Submenu(id, label string, children ...Entry) Entry {
	return Entry{Kind: KindSubmenu, ID: id, Label: label, Children: children}
}

// Native creates a platform-provided entry
func Native(role Role, label string) Entry {
	return Entry{Kind: KindNative, Role: role, Label: label}
}

func (e Entry) clone() Entry {
	out := e
	if e.Children != nil {
		out.Children = lo.Map(e.Children, func(c Entry, _ int) Entry { return c.clone() })
	}
	return out
}

// Tree is an immutable ordered forest of entries
type Tree struct {
	entries []Entry
}

// NewTree builds a tree and checks identifier uniqueness
func NewTree(entries ...Entry) (Tree, error) {
	t := Tree{entries: lo.Map(entries, func(e Entry, _ int) Entry { return e.clone() })}
	if err := t.Validate(); err != nil {
		return Tree{}, err
	}
	return t, nil
}

// Entries returns a copy of the top-level entries
func (t Tree) Entries() []Entry {
	return lo.Map(t.entries, func(e Entry, _ int) Entry { return e.clone() })
}

// Validate checks that every identifier occurs at most once and every action has one
func (t Tree) Validate() error {
	seen := make(map[string]bool)
	var walk func(entries []Entry) error
	walk = func(entries []Entry) error {
		for _, e := range entries {
			if e.Kind == KindAction && e.ID == "" {
				return errors.NewShellErrorWithContext("validate_menu",
					fmt.Errorf("action %q has no identifier", e.Label),
					errors.ErrCodeMenu,
					map[string]string{"label": e.Label})
			}
			if e.ID != "" {
				if seen[e.ID] {
					return errors.NewShellErrorWithContext("validate_menu",
						fmt.Errorf("duplicate menu identifier %q", e.ID),
						errors.ErrCodeDuplicateID,
						map[string]string{"id": e.ID})
				}
				seen[e.ID] = true
			}
			if err := walk(e.Children); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(t.entries)
}

// Actions returns every action entry in depth-first order
func (t Tree) Actions() []Entry {
	var out []Entry
	var walk func(entries []Entry)
	walk = func(entries []Entry) {
		for _, e := range entries {
			if e.Kind == KindAction {
				out = append(out, e.clone())
			}
			walk(e.Children)
		}
	}
	walk(t.entries)
	return out
}

// Find returns the entry with the given identifier
func (t Tree) Find(id string) (Entry, bool) {
	var found *Entry
	var walk func(entries []Entry)
	walk = func(entries []Entry) {
		for i := range entries {
			if found != nil {
				return
			}
			if entries[i].ID == id {
				found = &entries[i]
				return
			}
			walk(entries[i].Children)
		}
	}
	walk(t.entries)
	if found == nil {
		return Entry{}, false
	}
	return found.clone(), true
}

// WithChildren returns a copy of the tree in which the submenu id has exactly
// the given children. The receiver is left untouched.
func (t Tree) WithChildren(id string, children []Entry) (Tree, error) {
	replaced := false
	var rewrite func(entries []Entry) []Entry
	rewrite = func(entries []Entry) []Entry {
		out := make([]Entry, len(entries))
		for i, e := range entries {
			e = e.clone()
			if e.ID == id && e.Kind == KindSubmenu {
				e.Children = lo.Map(children, func(c Entry, _ int) Entry { return c.clone() })
				replaced = true
			} else if len(e.Children) > 0 {
				e.Children = rewrite(e.Children)
			}
			out[i] = e
		}
		return out
	}

	next := Tree{entries: rewrite(t.entries)}
	if !replaced {
		return t, errors.NewShellErrorWithContext("replace_submenu",
			fmt.Errorf("no submenu with identifier %q", id),
			errors.ErrCodeMenu,
			map[string]string{"id": id})
	}
	if err := next.Validate(); err != nil {
		return t, err
	}
	return next, nil
}
