// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cpu provides the software-rendered application runtime. Frames
// are rasterized on the CPU into a fixed-size pixmap and blitted to the
// window, so it works where GPU rendering is broken or absent: remote
// desktops, CI machines, virtual machines with faulty drivers.
//
// Importing the package registers the runtime:
//
//	import _ "github.com/gogpu/ggapp/driver/cpu"
package cpu

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gogpu"

	"github.com/gogpu/ggapp"
)

func init() {
	ggapp.RegisterRuntime(&driver{})
}

// driver runs applications on the CPU rasterizer.
type driver struct{}

// Backend returns ggapp.BackendSoftware.
func (*driver) Backend() ggapp.Backend { return ggapp.BackendSoftware }

// Run rasterizes the application into a pixmap of the configured viewport
// size and scales it to the window each frame. The window itself still
// comes from gogpu; only the rendering is software.
//
// This is the path that tears the session down on exit, so Saver and
// Exiter hooks run here.
func (*driver) Run(opts ggapp.RuntimeOptions, start ggapp.StartFunc) error {
	sw := opts.Software
	vp := sw.Viewport

	cc := gg.NewContext(vp.Width, vp.Height)
	cc.SetRasterizerMode(cpuRasterizer(sw.Rasterizer))
	bl := newBlitter(sw.Filter)

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(vp.Title).
		WithSize(vp.Width, vp.Height))

	var sess *ggapp.Session
	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		if sess == nil {
			sess = start()
		}

		sess.UpdateSoftware(cc)

		// Pixel data is only complete after a flush.
		_ = cc.FlushGPU()
		if err := bl.present(cc.ResizeTarget(), dc.AsTextureDrawer(), w, h); err != nil {
			ggapp.Logger().Warn("cpu: presenting frame failed", "error", err)
		}
	})

	err := app.Run()
	bl.close()
	if sess != nil {
		sess.Close()
	}
	return err
}

// cpuRasterizer pins mode to a rasterizer that never consults a GPU
// accelerator. RasterizerAuto and RasterizerSDF hand shapes to one when
// registered, which happens whenever the binary also links the gpu
// driver.
func cpuRasterizer(mode gg.RasterizerMode) gg.RasterizerMode {
	switch mode {
	case gg.RasterizerAuto, gg.RasterizerSDF:
		return gg.RasterizerAnalytic
	default:
		return mode
	}
}
