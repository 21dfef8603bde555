//go:build linux

package ggapp

import (
	"os"
	"strings"
)

// platformProbe decides between the rendering paths from the X11 display
// address. An unset DISPLAY means a Wayland or headless session, where the
// GPU path is the right default. A set DISPLAY is classified by address:
// local displays keep GPU acceleration, forwarded ones fall back to
// software rendering, since pushing GL over the wire is slower than
// sending finished frames.
func platformProbe() (Backend, bool) {
	display, ok := os.LookupEnv("DISPLAY")
	if !ok {
		Logger().Debug("probe: DISPLAY unset, assuming wayland", "backend", BackendHardware)
		return BackendHardware, true
	}
	b := classifyDisplay(display)
	Logger().Debug("probe: classified X11 display", "display", display, "backend", b)
	return b, true
}

// classifyDisplay reports which backend suits an X11 DISPLAY address.
// Local addresses are bare display numbers (":0", ":1.0") or socket paths
// containing "/unix:"; everything else is treated as network-forwarded.
func classifyDisplay(display string) Backend {
	if strings.HasPrefix(display, ":") || strings.Contains(display, "/unix:") {
		return BackendHardware
	}
	return BackendSoftware
}
