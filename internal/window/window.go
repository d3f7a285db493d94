// Package window tracks the shell's named windows and the one-shot
// splashscreen → main transition.
package window

import (
	"fmt"
	"sync"

	"fadel/internal/infrastructure/errors"
)

const (
	SplashscreenName = "splashscreen"
	MainName         = "main"
)

// Window is a native window addressed by name
type Window interface {
	Name() string
	Show() error
	Close() error
}

// Set is a registry of named windows
type Set struct {
	mu      sync.Mutex
	windows map[string]Window
}

// NewSet registers the given windows; a later window replaces an earlier one with the same name
func NewSet(windows ...Window) *Set {
	s := &Set{windows: make(map[string]Window, len(windows))}
	for _, w := range windows {
		s.windows[w.Name()] = w
	}
	return s
}

// Get returns the window registered under name
func (s *Set) Get(name string) (Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[name]
	if !ok {
		return nil, errors.NewShellErrorWithContext("get_window",
			fmt.Errorf("no window labeled '%s' found", name),
			errors.ErrCodeWindowMissing,
			map[string]string{"window": name})
	}
	return w, nil
}


// Remove forgets the window registered under name
func (s *Set) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, name)
}
