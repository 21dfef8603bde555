package ggapp

import (
	"fmt"

	"github.com/gogpu/ggapp/internal/mainthread"
	"github.com/gogpu/ggapp/store"
)

// Run resolves the backend, commits to it, and blocks inside the matching
// runtime's event loop until the application exits. newApp is called once,
// after the window exists.
//
// Run must be called from the main thread. Lock it before the runtime
// spawns anything:
//
//	func init() {
//		runtime.LockOSThread()
//	}
//
// On platforms where the main thread cannot be identified, Run proceeds
// and leaves the check to the windowing layer.
//
// Launching is one-shot per process, even after the event loop returns:
// window systems generally cannot be reinitialized in-process, so a second
// Run returns ErrAlreadyLaunched. When the probe is indeterminate, Run
// falls back to software rendering. Errors from the runtime's event loop
// are returned unchanged.
func (s *Selector) Run(appName string, cfg Config, newApp NewAppFunc) error {
	if s.onThread() == mainthread.NotMain {
		return ErrWrongThread
	}
	if s.IsLaunched() {
		return ErrAlreadyLaunched
	}
	b, ok := s.Resolve()
	if !ok {
		b = BackendSoftware
		Logger().Warn("ggapp: probe indeterminate, defaulting to software rendering")
	}
	rt, ok := s.runtimeFor(b)
	if !ok {
		return fmt.Errorf("%w: %s (import %s)", ErrNoRuntime, b, driverHint(b))
	}
	s.state.Store(uint32(launchedState(b)))
	Logger().Info("ggapp: launching application", "app", appName, "backend", b)

	opts := launchOptions(appName, cfg)
	start := func() *Session {
		st := openStore(b, appName, cfg)
		app := newApp(CreationContext{Backend: b, Store: st})
		return NewSession(app, st)
	}
	return rt.Run(opts, start)
}

// Run runs an application on the default selector. See Selector.Run.
func Run(appName string, cfg Config, newApp NewAppFunc) error {
	return defaultSelector.Run(appName, cfg, newApp)
}

// openStore opens the persisted store for a session. Only the software
// path has one; the hardware path's host owns no storage mechanism.
// Open failures degrade to an in-memory store so sessions never abort
// over persistence.
func openStore(b Backend, appName string, cfg Config) store.Store {
	if b != BackendSoftware || cfg.DisablePersistence {
		return nil
	}
	var (
		st  store.Store
		err error
	)
	if cfg.StateDir != "" {
		st, err = store.OpenDir(cfg.StateDir)
	} else {
		st, err = store.Open(appName)
	}
	if err != nil {
		Logger().Warn("ggapp: opening persisted store failed, continuing without persistence", "error", err)
		return store.Null()
	}
	return st
}

// driverHint names the driver package whose blank import registers the
// runtime for b.
func driverHint(b Backend) string {
	if b == BackendHardware {
		return "github.com/gogpu/ggapp/driver/gpu"
	}
	return "github.com/gogpu/ggapp/driver/cpu"
}
