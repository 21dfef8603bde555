package ggapp

import (
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggapp/store"
)

// Session drives one application instance inside a runtime. Runtimes call
// the Update methods once per frame and Close when the event loop returns.
type Session struct {
	app   App
	st    store.Store
	stats FrameStats
}

// NewSession pairs a constructed application with its store. st may be
// nil when persistence is disabled or the path has no store.
func NewSession(app App, st store.Store) *Session {
	return &Session{app: app, st: st}
}

// Store returns the session's persisted store, or nil.
func (s *Session) Store() store.Store { return s.st }

// UpdateHardware runs one frame on the GPU path. The frame sees the
// previous frame's stats; this frame's cost is recorded for the next one.
func (s *Session) UpdateHardware(dc *gg.Context, provider gpucontext.DeviceProvider, textures TextureRegistrar) {
	frame := &HardwareFrame{stats: s.stats, provider: provider, textures: textures}
	start := time.Now()
	s.app.Update(dc, frame)
	s.stats.CPUTime = time.Since(start)
}

// UpdateSoftware runs one frame on the CPU path.
func (s *Session) UpdateSoftware(dc *gg.Context) {
	frame := &SoftwareFrame{stats: s.stats, st: s.st}
	start := time.Now()
	s.app.Update(dc, frame)
	s.stats.CPUTime = time.Since(start)
}

// Close runs the application's lifecycle hooks. With a live store the
// Saver hook runs first, then the store is flushed, then Exiter.
func (s *Session) Close() {
	if s.st != nil {
		if saver, ok := s.app.(Saver); ok {
			saver.Save(s.st)
		}
		if err := s.st.Flush(); err != nil {
			Logger().Warn("ggapp: flushing store on exit failed", "error", err)
		}
	}
	if exiter, ok := s.app.(Exiter); ok {
		exiter.OnExit()
	}
}
