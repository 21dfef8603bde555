package ggapp

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

// probeMinTextureDim is the smallest 2D texture limit a usable adapter
// must report. Anything below cannot back a window surface at common
// desktop sizes.
const probeMinTextureDim = 2048

// probeGPUDevice creates a throwaway headless GPU device to verify that
// the accelerated path would actually come up. Everything acquired here is
// released before returning; the real device is created later by the
// hardware runtime.
func probeGPUDevice() error {
	// Instance needs no explicit cleanup.
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("ggapp: no suitable GPU adapter: %w", err)
	}
	defer func() {
		if err := core.AdapterDrop(adapterID); err != nil {
			Logger().Warn("probe: adapter release failed", "error", err)
		}
	}()

	if info, err := core.GetAdapterInfo(adapterID); err == nil {
		Logger().Debug("probe: GPU adapter",
			"name", info.Name,
			"backend", info.Backend,
			"driver", info.Driver)
	}

	deviceID, err := core.RequestDevice(adapterID, &gputypes.DeviceDescriptor{
		Label:          "ggapp probe",
		RequiredLimits: gputypes.DefaultLimits(),
	})
	if err != nil {
		return fmt.Errorf("ggapp: GPU device creation failed: %w", err)
	}
	defer func() {
		if err := core.DeviceDrop(deviceID); err != nil {
			Logger().Warn("probe: device release failed", "error", err)
		}
	}()

	limits, err := core.GetDeviceLimits(deviceID)
	if err != nil {
		return fmt.Errorf("ggapp: GPU device limits unavailable: %w", err)
	}
	if limits.MaxTextureDimension2D < probeMinTextureDim {
		return fmt.Errorf("ggapp: GPU texture limit %d below required %d",
			limits.MaxTextureDimension2D, probeMinTextureDim)
	}
	return nil
}
