package ggapp

import (
	"sync"
)

// RuntimeOptions is the resolved launch configuration a runtime receives.
// Run fills every field before dispatching: the shared Viewport has been
// merged into both backend blocks and defaults applied, so runtimes read
// their own block without further fallbacks.
type RuntimeOptions struct {
	// AppName identifies the application for window titles and storage.
	AppName string

	// Hardware is the resolved GPU path configuration.
	Hardware HardwareOptions

	// Software is the resolved CPU path configuration.
	Software SoftwareOptions
}

// StartFunc builds the application session. The runtime calls it exactly
// once, from its event loop, after the window exists.
type StartFunc func() *Session

// AppRuntime drives one rendering path. Implementations live in the
// driver subpackages and register themselves from init, so linking a
// driver is enough:
//
//	import (
//		_ "github.com/gogpu/ggapp/driver/cpu"
//		_ "github.com/gogpu/ggapp/driver/gpu"
//	)
//
// Run blocks until the application exits and returns the event loop's
// error, if any.
type AppRuntime interface {
	Backend() Backend
	Run(opts RuntimeOptions, start StartFunc) error
}

// registry holds registered runtimes, one per backend.
var (
	runtimesMu sync.RWMutex
	runtimes   = make(map[Backend]AppRuntime)
)

// RegisterRuntime registers a runtime for its backend. This is typically
// called from init() functions in driver packages. A runtime already
// registered for the same backend is replaced.
func RegisterRuntime(rt AppRuntime) {
	if rt == nil {
		panic("ggapp: RegisterRuntime called with nil runtime")
	}
	runtimesMu.Lock()
	defer runtimesMu.Unlock()
	runtimes[rt.Backend()] = rt
}

// RuntimeRegistered checks if a runtime for the given backend is
// registered.
func RuntimeRegistered(b Backend) bool {
	runtimesMu.RLock()
	defer runtimesMu.RUnlock()
	_, ok := runtimes[b]
	return ok
}

// registeredRuntime returns the runtime for b from the registry.
func registeredRuntime(b Backend) (AppRuntime, bool) {
	runtimesMu.RLock()
	defer runtimesMu.RUnlock()
	rt, ok := runtimes[b]
	return rt, ok
}
