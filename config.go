package ggapp

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Default window geometry, applied when the caller leaves Viewport empty.
const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Viewport describes the application window: title and logical size in
// pixels. The zero value is usable; empty fields are filled at launch with
// the application name and the default geometry.
type Viewport struct {
	Title  string
	Width  int
	Height int
}

// withDefaults fills empty viewport fields.
func (v Viewport) withDefaults(appName string) Viewport {
	if v.Title == "" {
		v.Title = appName
	}
	if v.Width <= 0 {
		v.Width = defaultWidth
	}
	if v.Height <= 0 {
		v.Height = defaultHeight
	}
	return v
}

// HardwareOptions configures the GPU-accelerated runtime.
type HardwareOptions struct {
	// Viewport is the window geometry. Config.Viewport overwrites it at
	// launch; set it only when constructing RuntimeOptions by hand.
	Viewport Viewport

	// Pipeline selects the accelerator's rendering pipeline.
	Pipeline gg.PipelineMode
}

// DefaultHardwareOptions returns the GPU runtime defaults.
func DefaultHardwareOptions() HardwareOptions {
	return HardwareOptions{Pipeline: gg.PipelineModeAuto}
}

// ScaleFilter selects the filter the software path uses to scale its
// fixed-resolution frame to the window.
type ScaleFilter int

const (
	// FilterNearest is nearest-neighbor sampling: fastest, blocky when
	// upscaling.
	FilterNearest ScaleFilter = iota

	// FilterBilinear interpolates between neighboring pixels. The default.
	FilterBilinear

	// FilterCatmullRom resamples with a Catmull-Rom kernel: the sharpest
	// result and the most expensive.
	FilterCatmullRom
)

// String returns the filter name.
func (f ScaleFilter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterBilinear:
		return "bilinear"
	case FilterCatmullRom:
		return "catmull-rom"
	default:
		return fmt.Sprintf("ScaleFilter(%d)", int(f))
	}
}

// SoftwareOptions configures the CPU-rasterized runtime.
type SoftwareOptions struct {
	// Viewport is the window geometry and the logical rendering
	// resolution: the software path always rasterizes at this size and
	// scales the result to the window. Config.Viewport overwrites it at
	// launch.
	Viewport Viewport

	// Rasterizer selects the CPU rasterization algorithm. RasterizerAuto
	// and RasterizerSDF consult the GPU accelerator, so the software
	// runtime coerces them to RasterizerAnalytic.
	Rasterizer gg.RasterizerMode

	// Filter selects how frames are scaled to the window.
	Filter ScaleFilter
}

// DefaultSoftwareOptions returns the CPU runtime defaults.
func DefaultSoftwareOptions() SoftwareOptions {
	return SoftwareOptions{
		Rasterizer: gg.RasterizerAnalytic,
		Filter:     FilterBilinear,
	}
}

// Config bundles everything Run needs besides the application itself. The
// zero value launches with defaults: viewport filled from the application
// name, per-path defaults, persistence enabled.
type Config struct {
	// Viewport is the shared window geometry. It always overrides the
	// geometry inside the Hardware and Software blocks.
	Viewport Viewport

	// Hardware configures the GPU path. Nil means DefaultHardwareOptions.
	Hardware *HardwareOptions

	// Software configures the CPU path. Nil means DefaultSoftwareOptions.
	Software *SoftwareOptions

	// DisablePersistence launches without a persisted store: the
	// application factory receives a nil store and nothing is written on
	// exit.
	DisablePersistence bool

	// StateDir overrides where the persisted store lives. Empty means the
	// platform per-application config directory.
	StateDir string
}

// launchOptions merges cfg into the options handed to the runtime. The
// caller-supplied per-path block is used when present, the defaults
// otherwise; the shared viewport overwrites the geometry of both blocks.
func launchOptions(appName string, cfg Config) RuntimeOptions {
	hw := DefaultHardwareOptions()
	if cfg.Hardware != nil {
		hw = *cfg.Hardware
	}
	sw := DefaultSoftwareOptions()
	if cfg.Software != nil {
		sw = *cfg.Software
	}
	vp := cfg.Viewport.withDefaults(appName)
	hw.Viewport = vp
	sw.Viewport = vp
	return RuntimeOptions{AppName: appName, Hardware: hw, Software: sw}
}
