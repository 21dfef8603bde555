package ggapp

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggapp/internal/mainthread"
	"github.com/gogpu/ggapp/store"
)

// recordingRuntime stands in for a driver. It runs the start function
// immediately and records everything it was handed.
type recordingRuntime struct {
	backend Backend
	runs    int
	opts    RuntimeOptions
	started *Session
	inRun   func()
	err     error
}

func (rt *recordingRuntime) Backend() Backend { return rt.backend }

func (rt *recordingRuntime) Run(opts RuntimeOptions, start StartFunc) error {
	rt.runs++
	rt.opts = opts
	rt.started = start()
	if rt.inRun != nil {
		rt.inRun()
	}
	return rt.err
}

// newTestSelector wires a selector that believes it runs on the main
// thread, with rts shadowing the package registry.
func newTestSelector(probe ProbeFunc, rts ...AppRuntime) *Selector {
	opts := []Option{WithProbe(probe)}
	for _, rt := range rts {
		opts = append(opts, WithRuntime(rt))
	}
	s := NewSelector(opts...)
	s.onThread = func() mainthread.State { return mainthread.Main }
	return s
}

type nopApp struct{}

func (nopApp) Update(*gg.Context, Frame) {}

func newNopApp(CreationContext) App { return nopApp{} }

func TestRunDispatchesProbedBackend(t *testing.T) {
	sw := &recordingRuntime{backend: BackendSoftware}
	hw := &recordingRuntime{backend: BackendHardware}
	s := newTestSelector(fixedProbe(BackendHardware), sw, hw)

	if err := s.Run("app", Config{DisablePersistence: true}, newNopApp); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if hw.runs != 1 {
		t.Errorf("hardware runtime ran %d times, want 1", hw.runs)
	}
	if sw.runs != 0 {
		t.Errorf("software runtime ran %d times, want 0", sw.runs)
	}
	if !s.IsLaunched() {
		t.Error("IsLaunched() = false after Run")
	}
}

func TestRunIndeterminateProbeDefaultsToSoftware(t *testing.T) {
	sw := &recordingRuntime{backend: BackendSoftware}
	s := newTestSelector(indeterminateProbe, sw)

	if err := s.Run("app", Config{DisablePersistence: true}, newNopApp); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sw.runs != 1 {
		t.Errorf("software runtime ran %d times, want 1", sw.runs)
	}
}

func TestRunSecondCallFails(t *testing.T) {
	sw := &recordingRuntime{backend: BackendSoftware}
	s := newTestSelector(fixedProbe(BackendSoftware), sw)

	if err := s.Run("app", Config{DisablePersistence: true}, newNopApp); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	err := s.Run("app", Config{DisablePersistence: true}, newNopApp)
	if !errors.Is(err, ErrAlreadyLaunched) {
		t.Errorf("second Run() error = %v, want %v", err, ErrAlreadyLaunched)
	}
	if sw.runs != 1 {
		t.Errorf("runtime ran %d times, want 1", sw.runs)
	}
}

func TestRunWrongThread(t *testing.T) {
	calls := 0
	sw := &recordingRuntime{backend: BackendSoftware}
	s := newTestSelector(countingProbe(BackendSoftware, &calls), sw)
	s.onThread = func() mainthread.State { return mainthread.NotMain }

	err := s.Run("app", Config{}, newNopApp)
	if !errors.Is(err, ErrWrongThread) {
		t.Fatalf("Run() error = %v, want %v", err, ErrWrongThread)
	}
	if calls != 0 {
		t.Errorf("probe ran %d times, want 0", calls)
	}
	if got := s.state.Load(); got != uint32(stateUndecided) {
		t.Errorf("state after failed Run = %d, want %d", got, stateUndecided)
	}
	if sw.runs != 0 {
		t.Errorf("runtime ran %d times, want 0", sw.runs)
	}
}

func TestRunUnknownThreadProceeds(t *testing.T) {
	sw := &recordingRuntime{backend: BackendSoftware}
	s := newTestSelector(fixedProbe(BackendSoftware), sw)
	s.onThread = func() mainthread.State { return mainthread.Unknown }

	if err := s.Run("app", Config{DisablePersistence: true}, newNopApp); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sw.runs != 1 {
		t.Errorf("runtime ran %d times, want 1", sw.runs)
	}
}

func TestRunMarksLaunchedBeforeRuntime(t *testing.T) {
	sw := &recordingRuntime{backend: BackendSoftware}
	s := newTestSelector(fixedProbe(BackendSoftware), sw)
	launchedInside := false
	sw.inRun = func() { launchedInside = s.IsLaunched() }

	if err := s.Run("app", Config{DisablePersistence: true}, newNopApp); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !launchedInside {
		t.Error("IsLaunched() = false inside the runtime's Run")
	}
}

func TestRunPropagatesRuntimeError(t *testing.T) {
	boom := errors.New("event loop exploded")
	sw := &recordingRuntime{backend: BackendSoftware, err: boom}
	s := newTestSelector(fixedProbe(BackendSoftware), sw)

	if err := s.Run("app", Config{DisablePersistence: true}, newNopApp); err != boom {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
	// The launch is still spent: the event loop ran.
	if !s.IsLaunched() {
		t.Error("IsLaunched() = false after a failed event loop")
	}
}

func TestRunNoRuntime(t *testing.T) {
	s := newTestSelector(fixedProbe(BackendHardware))

	err := s.Run("app", Config{}, newNopApp)
	if !errors.Is(err, ErrNoRuntime) {
		t.Fatalf("Run() error = %v, want %v", err, ErrNoRuntime)
	}
	if !strings.Contains(err.Error(), "driver/gpu") {
		t.Errorf("Run() error %q does not name the missing driver", err)
	}
	// A missing runtime must not spend the one-shot launch.
	if s.IsLaunched() {
		t.Error("IsLaunched() = true after failed runtime lookup")
	}
}

func TestRunConfigMerge(t *testing.T) {
	sw := &recordingRuntime{backend: BackendSoftware}
	s := newTestSelector(fixedProbe(BackendSoftware), sw)

	cfg := Config{
		Viewport: Viewport{Title: "merged", Width: 320, Height: 200},
		Hardware: &HardwareOptions{
			Viewport: Viewport{Title: "ignored", Width: 1, Height: 1},
			Pipeline: gg.PipelineModeCompute,
		},
		Software: &SoftwareOptions{
			Viewport:   Viewport{Title: "ignored", Width: 2, Height: 2},
			Rasterizer: gg.RasterizerSparseStrips,
			Filter:     FilterCatmullRom,
		},
		DisablePersistence: true,
	}
	if err := s.Run("app", cfg, newNopApp); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := Viewport{Title: "merged", Width: 320, Height: 200}
	if sw.opts.Hardware.Viewport != want {
		t.Errorf("Hardware.Viewport = %+v, want %+v", sw.opts.Hardware.Viewport, want)
	}
	if sw.opts.Software.Viewport != want {
		t.Errorf("Software.Viewport = %+v, want %+v", sw.opts.Software.Viewport, want)
	}
	if sw.opts.Hardware.Pipeline != gg.PipelineModeCompute {
		t.Errorf("Hardware.Pipeline = %v, want %v", sw.opts.Hardware.Pipeline, gg.PipelineModeCompute)
	}
	if sw.opts.Software.Rasterizer != gg.RasterizerSparseStrips {
		t.Errorf("Software.Rasterizer = %v, want %v", sw.opts.Software.Rasterizer, gg.RasterizerSparseStrips)
	}
	if sw.opts.Software.Filter != FilterCatmullRom {
		t.Errorf("Software.Filter = %v, want %v", sw.opts.Software.Filter, FilterCatmullRom)
	}
	if sw.opts.AppName != "app" {
		t.Errorf("AppName = %q, want %q", sw.opts.AppName, "app")
	}
}

func TestRunViewportDefaults(t *testing.T) {
	sw := &recordingRuntime{backend: BackendSoftware}
	s := newTestSelector(fixedProbe(BackendSoftware), sw)

	if err := s.Run("app", Config{DisablePersistence: true}, newNopApp); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := Viewport{Title: "app", Width: defaultWidth, Height: defaultHeight}
	if sw.opts.Software.Viewport != want {
		t.Errorf("Software.Viewport = %+v, want %+v", sw.opts.Software.Viewport, want)
	}
	if sw.opts.Hardware.Pipeline != gg.PipelineModeAuto {
		t.Errorf("Hardware.Pipeline = %v, want %v", sw.opts.Hardware.Pipeline, gg.PipelineModeAuto)
	}
	if sw.opts.Software.Filter != FilterBilinear {
		t.Errorf("Software.Filter = %v, want %v", sw.opts.Software.Filter, FilterBilinear)
	}
}

func TestRunSessionStoreWiring(t *testing.T) {
	dir := t.TempDir()
	sw := &recordingRuntime{backend: BackendSoftware}
	s := newTestSelector(fixedProbe(BackendSoftware), sw)

	var got CreationContext
	factoryCalls := 0
	err := s.Run("app", Config{StateDir: dir}, func(cc CreationContext) App {
		factoryCalls++
		got = cc
		return nopApp{}
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if factoryCalls != 1 {
		t.Fatalf("factory ran %d times, want 1", factoryCalls)
	}
	if got.Backend != BackendSoftware {
		t.Errorf("CreationContext.Backend = %v, want %v", got.Backend, BackendSoftware)
	}
	if got.Store == nil {
		t.Fatal("CreationContext.Store = nil, want open store")
	}
	if sw.started.Store() != got.Store {
		t.Error("session store differs from the one handed to the factory")
	}
	fs, ok := got.Store.(*store.FileStore)
	if !ok {
		t.Fatalf("CreationContext.Store is %T, want *store.FileStore", got.Store)
	}
	if !strings.HasPrefix(fs.Path(), dir) {
		t.Errorf("store path %q not under %q", fs.Path(), dir)
	}
}

func TestRunPersistenceDisabled(t *testing.T) {
	sw := &recordingRuntime{backend: BackendSoftware}
	s := newTestSelector(fixedProbe(BackendSoftware), sw)

	var got CreationContext
	err := s.Run("app", Config{DisablePersistence: true}, func(cc CreationContext) App {
		got = cc
		return nopApp{}
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got.Store != nil {
		t.Errorf("CreationContext.Store = %v, want nil", got.Store)
	}
}

func TestRunHardwareHasNoStore(t *testing.T) {
	hw := &recordingRuntime{backend: BackendHardware}
	s := newTestSelector(fixedProbe(BackendHardware), hw)

	var got CreationContext
	err := s.Run("app", Config{StateDir: t.TempDir()}, func(cc CreationContext) App {
		got = cc
		return nopApp{}
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got.Store != nil {
		t.Errorf("CreationContext.Store = %v on hardware path, want nil", got.Store)
	}
}

func TestRunAfterOverwriteSkipsProbe(t *testing.T) {
	calls := 0
	sw := &recordingRuntime{backend: BackendSoftware}
	s := newTestSelector(countingProbe(BackendHardware, &calls), sw)

	s.Overwrite(BackendSoftware)
	if err := s.Run("app", Config{DisablePersistence: true}, newNopApp); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if calls != 0 {
		t.Errorf("probe ran %d times after overwrite, want 0", calls)
	}
	if sw.runs != 1 {
		t.Errorf("software runtime ran %d times, want 1", sw.runs)
	}
}
