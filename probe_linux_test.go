//go:build linux

package ggapp

import (
	"os"
	"testing"
)

func TestClassifyDisplay(t *testing.T) {
	tests := []struct {
		display string
		want    Backend
	}{
		{":0", BackendHardware},
		{":1", BackendHardware},
		{":0.0", BackendHardware},
		{"/tmp/launch-12345/unix:0", BackendHardware},
		{"localhost:10.0", BackendSoftware},
		{"remote.host:0", BackendSoftware},
		{"192.168.0.7:0.0", BackendSoftware},
		{"", BackendSoftware},
	}
	for _, tt := range tests {
		if got := classifyDisplay(tt.display); got != tt.want {
			t.Errorf("classifyDisplay(%q) = %v, want %v", tt.display, got, tt.want)
		}
	}
}

func TestPlatformProbeLocalDisplay(t *testing.T) {
	t.Setenv("DISPLAY", ":0")
	b, ok := platformProbe()
	if !ok || b != BackendHardware {
		t.Errorf("platformProbe() = %v, %v, want %v, true", b, ok, BackendHardware)
	}
}

func TestPlatformProbeForwardedDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "somehost:3")
	b, ok := platformProbe()
	if !ok || b != BackendSoftware {
		t.Errorf("platformProbe() = %v, %v, want %v, true", b, ok, BackendSoftware)
	}
}

func TestPlatformProbeNoDisplay(t *testing.T) {
	// Setenv first so the original value is restored on cleanup, then
	// drop the variable for the probe itself.
	t.Setenv("DISPLAY", "")
	os.Unsetenv("DISPLAY")

	b, ok := platformProbe()
	if !ok || b != BackendHardware {
		t.Errorf("platformProbe() = %v, %v, want %v, true", b, ok, BackendHardware)
	}
}
