//go:build !linux && !windows

package ggapp

// platformProbe always recommends the GPU path. There is no useful
// heuristic on macOS and the BSDs: the compositors handle GPU contexts
// well and remote-desktop setups are rare.
func platformProbe() (Backend, bool) {
	return BackendHardware, true
}
