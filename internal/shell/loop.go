package shell

import (
	"fmt"
	"sync"

	"fadel/internal/infrastructure/errors"
)

type task struct {
	fn   func()
	done chan struct{}
}

// eventLoop runs submitted functions one at a time on a single goroutine.
// Menu state is only touched from inside it.
type eventLoop struct {
	tasks   chan task
	quit    chan struct{}
	stopped chan struct{}

	mu      sync.Mutex
	running bool
}

func newEventLoop() *eventLoop {
	return &eventLoop{
		tasks:   make(chan task),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start launches the loop goroutine. Starting twice, or after Stop, is a no-op.
func (l *eventLoop) Start() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	select {
	case <-l.quit:
		return false
	default:
	}
	if l.running {
		return false
	}

	l.running = true
	go l.run()
	return true
}

// Stop waits for the task in progress, if any, and ends the loop
func (l *eventLoop) Stop() {
	l.mu.Lock()
	select {
	case <-l.quit:
		l.mu.Unlock()
		return
	default:
	}
	close(l.quit)
	wasRunning := l.running
	l.running = false
	l.mu.Unlock()

	if wasRunning {
		<-l.stopped
	}
}

func (l *eventLoop) isRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *eventLoop) run() {
	defer close(l.stopped)
	for {
		select {
		case t := <-l.tasks:
			t.fn()
			close(t.done)
		case <-l.quit:
			return
		}
	}
}

// Call runs fn on the loop and waits for it to finish.
// Must not be called from inside a task.
func (l *eventLoop) Call(fn func()) error {
	if !l.isRunning() {
		return l.stoppedError()
	}

	t := task{fn: fn, done: make(chan struct{})}
	select {
	case l.tasks <- t:
	case <-l.quit:
		return l.stoppedError()
	}

	// A received task always runs to completion before the loop checks quit again
	<-t.done
	return nil
}

func (l *eventLoop) stoppedError() error {
	return errors.NewShellError("event_loop", fmt.Errorf("event loop is not running"), errors.ErrCodeLoopStopped)
}
