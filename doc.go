// Package ggapp launches gg applications on the rendering path that suits
// the machine they run on.
//
// # Overview
//
// A GPU is not always the fast path for 2D rendering: remote desktop
// sessions, virtualized GPUs, and broken drivers can make the accelerated
// pipeline slower than a plain CPU rasterizer. ggapp probes the platform
// once per process, picks between the GPU path and the software path, and
// launches the application behind a per-frame facade that looks identical
// on both, so application code never branches on how it is rendered.
//
// # Quick Start
//
//	import (
//		"log"
//		"runtime"
//
//		"github.com/gogpu/gg"
//		"github.com/gogpu/ggapp"
//
//		_ "github.com/gogpu/ggapp/driver/cpu"
//		_ "github.com/gogpu/ggapp/driver/gpu"
//	)
//
//	func init() { runtime.LockOSThread() }
//
//	type myApp struct{}
//
//	func (myApp) Update(dc *gg.Context, frame ggapp.Frame) {
//		dc.ClearWithColor(gg.White)
//		dc.SetRGB(0.9, 0.2, 0.2)
//		dc.DrawCircle(400, 300, 120)
//		dc.Fill()
//	}
//
//	func main() {
//		cfg := ggapp.Config{Viewport: ggapp.Viewport{Title: "My App"}}
//		err := ggapp.Run("myapp", cfg, func(ggapp.CreationContext) ggapp.App {
//			return myApp{}
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Selection
//
// The decision is process-wide and one-shot. ResolveBackend answers which
// path Run will take; OverwriteBackend forces a path before launch (for a
// command-line switch or a user setting); once the application has
// launched the decision is terminal and a second Run fails. All of it is
// coordinated through a single atomic word, so any thread may ask or hint
// without locks.
//
// # Drivers
//
// The two runtimes live in driver/gpu and driver/cpu and register
// themselves on import. Only imported drivers are selectable; a build that
// only ever wants software rendering simply omits the gpu driver.
package ggapp

// Version is the current version of the library.
const Version = "0.1.0"
