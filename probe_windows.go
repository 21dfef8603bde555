//go:build windows

package ggapp

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gogpu/ggapp/internal/mainthread"
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/windows"
)

// smRemoteSession is the GetSystemMetrics index reporting whether the
// process runs in a remote desktop session.
const smRemoteSession = 0x1000

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

// platformProbe decides between the rendering paths on Windows. The GPU
// device check needs the main thread; off it the probe reports
// indeterminate so a later call from the right thread can decide.
//
// Remote desktop sessions get software rendering outright: the session's
// GPU is emulated and the bitmaps travel better when rendered locally.
// The same goes for the VMware and VirtualBox guest GL drivers, which
// advertise modern GL but rasterize slower than the CPU. Everything else
// is settled by creating a throwaway headless GPU device.
func platformProbe() (Backend, bool) {
	if mainthread.On() != mainthread.Main {
		Logger().Debug("probe: not on the main thread, deferring")
		return 0, false
	}
	if remoteSession() {
		Logger().Info("probe: remote desktop session", "backend", BackendSoftware)
		return BackendSoftware, true
	}
	if dll, ok := brokenVirtualGPU(); ok {
		Logger().Info("probe: virtual GPU driver present", "driver", dll, "backend", BackendSoftware)
		return BackendSoftware, true
	}
	if err := probeGPUDevice(); err != nil {
		Logger().Info("probe: GPU device check failed", "error", err, "backend", BackendSoftware)
		return BackendSoftware, true
	}
	return BackendHardware, true
}

// remoteSession reports whether the process runs inside a remote desktop
// session.
func remoteSession() bool {
	ret, _, _ := procGetSystemMetrics.Call(uintptr(smRemoteSession))
	return ret != 0
}

// brokenVirtualGPU reports whether the machine runs under a hypervisor
// with one of the known-bad guest GL drivers installed. VMware ships
// vm3dgl64.dll and VirtualBox VBoxGL.dll; the returned name identifies
// which marker was found.
func brokenVirtualGPU() (string, bool) {
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		return "", false
	}
	if !cpuid.CPU.Has(cpuid.HYPERVISOR) {
		return "", false
	}
	sysDir, err := windows.GetSystemDirectory()
	if err != nil {
		return "", false
	}
	for _, dll := range []string{"vm3dgl64.dll", "VBoxGL.dll"} {
		if _, err := os.Stat(filepath.Join(sysDir, dll)); err == nil {
			return dll, true
		}
	}
	return "", false
}
