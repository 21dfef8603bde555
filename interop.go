package ggapp

import (
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggapp/store"
)

// FrameStats carries per-frame diagnostics. The active runtime writes it
// once per frame; the application reads it on the next one.
type FrameStats struct {
	// CPUTime is how long the previous App.Update call took.
	CPUTime time.Duration
}

// TextureID identifies a native texture registered with the hardware
// runtime.
type TextureID uint64

// TextureNone is returned by RegisterTexture when the active path cannot
// host native textures. It never identifies a live registration.
const TextureNone TextureID = 0

// TextureRegistrar turns native texture handles into TextureIDs. The
// hardware runtime implements it; frames delegate RegisterTexture to it.
type TextureRegistrar interface {
	RegisterTexture(tex any) TextureID
}

// Frame is the per-frame view of the active rendering path, handed to
// App.Update next to the drawing context. Exactly two implementations
// exist, *HardwareFrame and *SoftwareFrame; the set is closed.
//
// Every method is callable on both variants. Where a capability does not
// exist on a path, the method returns a defined sentinel (nil graphics
// context, TextureNone) instead of failing, so application code never
// branches on the variant.
//
// A Frame is only valid during the Update call that received it; do not
// retain it across frames.
type Frame interface {
	// Backend reports which rendering path produced this frame.
	Backend() Backend

	// Name is a fixed human-readable name for the active path.
	Name() string

	// IsWeb reports whether the application runs browser-hosted.
	// Always false: there is no browser target.
	IsWeb() bool

	// Stats returns the previous frame's diagnostics.
	Stats() FrameStats

	// Store returns the persisted store, or nil when the active path has
	// none: persistence disabled, or the hardware path, whose host has no
	// storage mechanism to delegate to.
	Store() store.Store

	// GraphicsContext returns the GPU device provider on the hardware
	// path and nil on the software path.
	GraphicsContext() gpucontext.DeviceProvider

	// RegisterTexture registers a native texture for drawing. On the
	// software path it returns TextureNone.
	RegisterTexture(tex any) TextureID

	// isFrame keeps the implementation set closed.
	isFrame()
}

// HardwareFrame is the Frame variant produced by the GPU runtime.
type HardwareFrame struct {
	stats    FrameStats
	provider gpucontext.DeviceProvider
	textures TextureRegistrar
}

// Backend returns BackendHardware.
func (f *HardwareFrame) Backend() Backend { return BackendHardware }

// Name returns "gogpu".
func (f *HardwareFrame) Name() string { return "gogpu" }

// IsWeb returns false.
func (f *HardwareFrame) IsWeb() bool { return false }

// Stats returns the previous frame's diagnostics.
func (f *HardwareFrame) Stats() FrameStats { return f.stats }

// Store returns nil: gogpu has no storage mechanism to delegate to.
func (f *HardwareFrame) Store() store.Store { return nil }

// GraphicsContext returns the gogpu device provider.
func (f *HardwareFrame) GraphicsContext() gpucontext.DeviceProvider { return f.provider }

// RegisterTexture registers tex with the runtime's texture registry.
func (f *HardwareFrame) RegisterTexture(tex any) TextureID {
	if f.textures == nil {
		return TextureNone
	}
	return f.textures.RegisterTexture(tex)
}

func (f *HardwareFrame) isFrame() {}

// SoftwareFrame is the Frame variant produced by the CPU runtime.
type SoftwareFrame struct {
	stats FrameStats
	st    store.Store
}

// Backend returns BackendSoftware.
func (f *SoftwareFrame) Backend() Backend { return BackendSoftware }

// Name returns "software renderer".
func (f *SoftwareFrame) Name() string { return "software renderer" }

// IsWeb returns false.
func (f *SoftwareFrame) IsWeb() bool { return false }

// Stats returns the previous frame's diagnostics.
func (f *SoftwareFrame) Stats() FrameStats { return f.stats }

// Store returns the session's persisted store, or nil when persistence is
// disabled.
func (f *SoftwareFrame) Store() store.Store { return f.st }

// GraphicsContext returns nil: there is no GPU device on this path.
func (f *SoftwareFrame) GraphicsContext() gpucontext.DeviceProvider { return nil }

// RegisterTexture returns TextureNone: native textures need the GPU path.
func (f *SoftwareFrame) RegisterTexture(tex any) TextureID { return TextureNone }

func (f *SoftwareFrame) isFrame() {}
