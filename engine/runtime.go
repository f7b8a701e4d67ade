package engine

import (
	"errors"

	"github.com/lixenwraith/speaker-cleaner/session"
)

// ErrStopped is returned for requests made after the runtime stopped
var ErrStopped = errors.New("engine: runtime stopped")

// Runtime hosts a session controller on its loop and exposes the
// user-facing actions to display surfaces
type Runtime struct {
	loop *Loop
	ctrl *session.Controller
	deps []string
}

// NewRuntime binds ctrl to loop
// deps names services that must outlive the runtime (e.g. audio)
func NewRuntime(loop *Loop, ctrl *session.Controller, deps ...string) *Runtime {
	return &Runtime{loop: loop, ctrl: ctrl, deps: deps}
}

// Name implements service.Service
func (r *Runtime) Name() string {
	return "runtime"
}

// Dependencies implements service.Service
func (r *Runtime) Dependencies() []string {
	return r.deps
}

// Init implements service.Service
func (r *Runtime) Init(args ...any) error {
	return nil
}

// Start implements service.Service
func (r *Runtime) Start() error {
	r.loop.Start()
	return nil
}

// Stop cancels any running session, then halts the loop
func (r *Runtime) Stop() error {
	r.loop.Do(r.ctrl.Cancel)
	r.loop.Stop()
	return nil
}

// RequestStart asks the controller to begin a session
func (r *Runtime) RequestStart() error {
	if !r.loop.Post(r.ctrl.Start) {
		return ErrStopped
	}
	return nil
}

// RequestCancel asks the controller to end the running session
func (r *Runtime) RequestCancel() error {
	if !r.loop.Post(r.ctrl.Cancel) {
		return ErrStopped
	}
	return nil
}

// Background tears down a running session before returning
func (r *Runtime) Background() error {
	if !r.loop.Do(r.ctrl.OnBackgrounded) {
		return ErrStopped
	}
	return nil
}

// Snapshot reads controller state on the loop
func (r *Runtime) Snapshot() (state session.State, remaining int, err error) {
	ok := r.loop.Do(func() {
		state = r.ctrl.State()
		remaining = r.ctrl.Remaining()
	})
	if !ok {
		return session.StateIdle, session.Duration, ErrStopped
	}
	return state, remaining, nil
}
