package window

import (
	"sync"

	"fadel/internal/infrastructure/errors"
)

// State is the window lifecycle state
type State int

const (
	StateSplash State = iota
	StateTransitioning
	StateMain
)

func (s State) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StateTransitioning:
		return "transitioning"
	case StateMain:
		return "main"
	default:
		return "unknown"
	}
}

// Lifecycle drives the splashscreen → main transition over a Set.
// Main is terminal.
type Lifecycle struct {
	mu    sync.Mutex
	set   *Set
	state State
}

// NewLifecycle starts in StateSplash
func NewLifecycle(set *Set) *Lifecycle {
	return &Lifecycle{set: set, state: StateSplash}
}

// State returns the current state
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// TransitionFromSplash closes the splashscreen and shows the main window.
// A missing window yields an ErrCodeWindowMissing error; since the splashscreen
// is removed on success, a second call always fails that way.
func (l *Lifecycle) TransitionFromSplash() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	splash, err := l.set.Get(SplashscreenName)
	if err != nil {
		return err
	}

	l.state = StateTransitioning

	if err := splash.Close(); err != nil {
		return errors.NewShellErrorWithContext("close_window", err,
			errors.ErrCodeWindowOperation,
			map[string]string{"window": SplashscreenName})
	}
	l.set.Remove(SplashscreenName)

	main, err := l.set.Get(MainName)
	if err != nil {
		return err
	}

	if err := main.Show(); err != nil {
		return errors.NewShellErrorWithContext("show_window", err,
			errors.ErrCodeWindowOperation,
			map[string]string{"window": MainName})
	}

	l.state = StateMain
	return nil
}
