// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux && !windows

package mainthread

// On reports Unknown: this platform has no portable way to identify the
// main thread, so callers proceed and let the windowing layer enforce
// its own requirements.
func On() State {
	return Unknown
}
