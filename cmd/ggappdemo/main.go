// Command ggappdemo runs an animated demo through the backend selector.
// By default hardware rendering is used where the platform probe finds a
// usable GPU, with automatic software fallback on remote desktops and
// broken virtual GPUs. Pass -backend to force a path.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggapp"
	_ "github.com/gogpu/ggapp/driver/cpu"
	_ "github.com/gogpu/ggapp/driver/gpu"
	"github.com/gogpu/ggapp/store"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		backend   = flag.String("backend", "auto", "rendering backend: auto, software or hardware")
		title     = flag.String("title", "ggapp demo", "window title")
		width     = flag.Int("width", 1024, "window width")
		height    = flag.Int("height", 640, "window height")
		noPersist = flag.Bool("no-persist", false, "disable persisted state")
		stateDir  = flag.String("state-dir", "", "override the state directory")
		verbose   = flag.Bool("v", false, "log selection and lifecycle details")
	)
	flag.Parse()

	if *verbose {
		ggapp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *backend != "auto" {
		b, err := ggapp.ParseBackend(*backend)
		if err != nil {
			log.Fatalf("ggappdemo: %v", err)
		}
		ggapp.OverwriteBackend(b)
	}

	cfg := ggapp.Config{
		Viewport: ggapp.Viewport{
			Title:  *title,
			Width:  *width,
			Height: *height,
		},
		DisablePersistence: *noPersist,
		StateDir:           *stateDir,
	}

	err := ggapp.Run("ggappdemo", cfg, func(cc ggapp.CreationContext) ggapp.App {
		return newDemo(cc)
	})
	if err != nil {
		log.Fatalf("ggappdemo: %v", err)
	}
}

// demo draws an animated scene and keeps a launch counter in the
// persisted store.
type demo struct {
	start    time.Time
	launches int
	reported bool
	lastCPU  time.Duration
}

func newDemo(cc ggapp.CreationContext) ggapp.App {
	d := &demo{start: time.Now(), launches: 1}
	if cc.Store != nil {
		if prev, err := strconv.Atoi(cc.Store.GetString("launches")); err == nil {
			d.launches = prev + 1
		}
	}
	log.Printf("starting on %s backend (launch #%d)", cc.Backend, d.launches)
	return d
}

func (d *demo) Update(dc *gg.Context, frame ggapp.Frame) {
	if !d.reported {
		d.reported = true
		log.Printf("rendering via %s", frame.Name())
	}
	d.lastCPU = frame.Stats().CPUTime

	w, h := float64(dc.Width()), float64(dc.Height())
	elapsed := time.Since(d.start).Seconds()

	dc.ClearWithColor(gg.RGB(0.09, 0.10, 0.13))
	drawOrbits(dc, w/2, h/2, elapsed)
	drawWave(dc, w, h, elapsed)
	drawHUD(dc, frame, d.launches)
}

// Save runs when the session ends on the software path.
func (d *demo) Save(st store.Store) {
	st.SetString("launches", strconv.Itoa(d.launches))
}

func (d *demo) OnExit() {
	log.Printf("ran for %s, last frame cost %s",
		time.Since(d.start).Round(time.Millisecond), d.lastCPU)
}

func drawOrbits(dc *gg.Context, cx, cy, t float64) {
	dc.SetRGBA(1, 1, 1, 0.15)
	dc.SetLineWidth(1.5)
	dc.DrawCircle(cx, cy, 180)
	_ = dc.Stroke()

	for i := 0; i < 10; i++ {
		angle := float64(i)*math.Pi/5 + t*0.8
		x := cx + math.Cos(angle)*180
		y := cy + math.Sin(angle)*180

		c := gg.HSL(float64(i)*36, 0.7, 0.6)
		dc.SetColor(c)
		radius := 18 + 6*math.Sin(t*2+float64(i))
		dc.DrawCircle(x, y, radius)
		_ = dc.Fill()
	}

	// Rotating square in the center.
	dc.Push()
	dc.Translate(cx, cy)
	dc.Rotate(t * 0.5)
	dc.SetRGBA(0.3, 0.7, 1, 0.9)
	dc.DrawRoundedRectangle(-50, -50, 100, 100, 14)
	_ = dc.Fill()
	dc.Pop()
}

func drawWave(dc *gg.Context, w, h, t float64) {
	dc.SetRGBA(0.4, 0.9, 0.6, 0.8)
	dc.SetLineWidth(3)
	step := 14.0
	for x := 0.0; x < w; x += step {
		y := h - 80 + math.Sin(x*0.02+t*3)*24
		if x == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	_ = dc.Stroke()
}

func drawHUD(dc *gg.Context, frame ggapp.Frame, launches int) {
	dc.SetRGBA(0, 0, 0, 0.4)
	dc.DrawRoundedRectangle(12, 12, 250, 46, 8)
	_ = dc.Fill()

	// One dot per launch this install has seen, capped at ten.
	dots := launches
	if dots > 10 {
		dots = 10
	}
	dc.SetRGBA(1, 1, 1, 0.7)
	for i := 0; i < dots; i++ {
		dc.DrawCircle(28+float64(i)*14, 26, 4)
		_ = dc.Fill()
	}

	// A small bar visualizes the previous frame's CPU cost against a
	// 16 ms budget.
	budget := 16 * time.Millisecond
	used := frame.Stats().CPUTime
	ratio := math.Min(float64(used)/float64(budget), 1)
	dc.SetRGB(0.25, 0.27, 0.32)
	dc.DrawRectangle(22, 40, 230, 8)
	_ = dc.Fill()
	dc.SetColor(gg.HSL(120*(1-ratio), 0.7, 0.5))
	dc.DrawRectangle(22, 40, 230*ratio, 8)
	_ = dc.Fill()
}
