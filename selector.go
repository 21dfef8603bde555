package ggapp

import (
	"sync/atomic"

	"github.com/gogpu/ggapp/internal/mainthread"
)

// Selector decides which rendering path a process uses and remembers the
// decision. It is safe for concurrent use; the decision is made at most
// once and launching is one-shot.
//
// Most applications use the package-level functions, which share the
// default selector. Constructing a Selector directly is for tests and for
// embedding in processes that manage several configurations.
type Selector struct {
	state     atomic.Uint32
	probe     ProbeFunc
	onThread  func() mainthread.State
	overrides map[Backend]AppRuntime
}

// Option configures a Selector.
type Option func(*Selector)

// WithProbe replaces the platform probe.
func WithProbe(probe ProbeFunc) Option {
	return func(s *Selector) {
		if probe == nil {
			panic("ggapp: WithProbe called with nil probe")
		}
		s.probe = probe
	}
}

// WithRuntime installs a runtime for its backend on this selector only,
// shadowing the package registry. Useful for tests and for embedding
// custom runtimes without touching global state.
func WithRuntime(rt AppRuntime) Option {
	return func(s *Selector) {
		if rt == nil {
			panic("ggapp: WithRuntime called with nil runtime")
		}
		if s.overrides == nil {
			s.overrides = make(map[Backend]AppRuntime)
		}
		s.overrides[rt.Backend()] = rt
	}
}

// NewSelector returns a Selector in the undecided state.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		probe:    platformProbe,
		onThread: mainthread.On,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSelector = NewSelector()

// Default returns the process-wide selector used by the package-level
// functions.
func Default() *Selector { return defaultSelector }

// Overwrite pins the backend choice, overriding whatever the probe would
// pick. It is a no-op once the application has launched, and best-effort
// before that: a concurrent Overwrite or Resolve can win the slot.
// Invalid backends are ignored.
func (s *Selector) Overwrite(b Backend) {
	if !b.valid() {
		Logger().Warn("ggapp: ignoring overwrite with invalid backend", "backend", int(b))
		return
	}
	cur := s.state.Load()
	if selState(cur).launched() {
		Logger().Debug("ggapp: overwrite after launch ignored", "backend", b)
		return
	}
	// Single attempt against the snapshot above. A transition between the
	// load and the swap makes this overwrite lose; the window is
	// deliberate, do not serialize it away.
	s.state.CompareAndSwap(cur, uint32(decidedState(b)))
}

// IsLaunched reports whether Run has committed to a backend in this
// process.
func (s *Selector) IsLaunched() bool {
	return selState(s.state.Load()).launched()
}

// Resolve returns the backend this process will use, deciding it now if
// necessary. The first call probes the platform; later calls return the
// cached decision. ok is false only when the probe is indeterminate, in
// which case nothing is recorded and a later call may still decide.
func (s *Selector) Resolve() (Backend, bool) {
	if b, ok := selState(s.state.Load()).backend(); ok {
		return b, true
	}
	b, ok := s.probe()
	if !ok {
		return 0, false
	}
	// Another goroutine may decide between the load above and this swap.
	// The stored value wins for future calls; this call still reports its
	// own probe answer.
	s.state.CompareAndSwap(uint32(stateUndecided), uint32(decidedState(b)))
	return b, true
}

// runtimeFor finds the runtime for b, preferring selector overrides over
// the package registry.
func (s *Selector) runtimeFor(b Backend) (AppRuntime, bool) {
	if rt, ok := s.overrides[b]; ok {
		return rt, true
	}
	return registeredRuntime(b)
}

// OverwriteBackend pins the default selector's backend choice. See
// Selector.Overwrite.
func OverwriteBackend(b Backend) { defaultSelector.Overwrite(b) }

// IsLaunched reports whether the default selector has launched. See
// Selector.IsLaunched.
func IsLaunched() bool { return defaultSelector.IsLaunched() }

// ResolveBackend resolves the default selector's backend. See
// Selector.Resolve.
func ResolveBackend() (Backend, bool) { return defaultSelector.Resolve() }
