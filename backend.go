package ggapp

import "fmt"

// Backend identifies one of the two rendering paths an application can
// launch with. The set is closed: there are exactly two.
type Backend int

const (
	// BackendSoftware rasterizes every frame on the CPU and blits the
	// result to the window. It works everywhere, including remote
	// sessions and virtual machines with no usable GPU.
	BackendSoftware Backend = iota

	// BackendHardware renders through the GPU accelerator.
	BackendHardware
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendSoftware:
		return "software"
	case BackendHardware:
		return "hardware"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// valid reports whether b is one of the known backends.
func (b Backend) valid() bool {
	return b == BackendSoftware || b == BackendHardware
}

// ParseBackend converts a backend name, as produced by String, back to a
// Backend. It is meant for command-line flags and settings files.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "software":
		return BackendSoftware, nil
	case "hardware":
		return BackendHardware, nil
	default:
		return 0, fmt.Errorf("ggapp: unknown backend %q", s)
	}
}
