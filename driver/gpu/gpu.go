// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu provides the hardware-accelerated application runtime. It
// opens a gogpu window and renders each frame through a GPU-backed canvas.
//
// Importing the package registers the runtime:
//
//	import _ "github.com/gogpu/ggapp/driver/gpu"
package gpu

import (
	"fmt"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // registers gg's GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"

	"github.com/gogpu/ggapp"
)

func init() {
	ggapp.RegisterRuntime(&driver{})
}

// driver runs applications in a gogpu window.
type driver struct{}

// Backend returns ggapp.BackendHardware.
func (*driver) Backend() ggapp.Backend { return ggapp.BackendHardware }

// Run opens the window and blocks in the gogpu event loop. The canvas is
// created lazily on the first frame with a usable surface, since the GPU
// context provider only exists once the window is up.
//
// Session lifecycle hooks do not run on this path; see ggapp.Saver.
func (*driver) Run(opts ggapp.RuntimeOptions, start ggapp.StartFunc) error {
	vp := opts.Hardware.Viewport
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(vp.Title).
		WithSize(vp.Width, vp.Height))

	var (
		canvas   *ggcanvas.Canvas
		sess     *ggapp.Session
		frameErr error
	)
	textures := newTextureRegistry()

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				// Not ready yet; try again next frame.
				return
			}
			var err error
			canvas, err = ggcanvas.New(provider, w, h)
			if err != nil {
				frameErr = fmt.Errorf("gpu: creating canvas: %w", err)
				app.Quit()
				return
			}
			canvas.Context().SetPipelineMode(opts.Hardware.Pipeline)
		}

		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				ggapp.Logger().Warn("gpu: resizing canvas failed", "width", w, "height", h, "error", err)
			}
		}

		if sess == nil {
			sess = start()
		}

		_ = canvas.Draw(func(cc *gg.Context) {
			sess.UpdateHardware(cc, app.GPUContextProvider(), textures)
		})
		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			ggapp.Logger().Warn("gpu: presenting frame failed", "error", err)
		}
	})

	err := app.Run()
	if canvas != nil {
		if cerr := canvas.Close(); cerr != nil {
			ggapp.Logger().Warn("gpu: closing canvas failed", "error", cerr)
		}
	}
	if err != nil {
		return err
	}
	return frameErr
}
