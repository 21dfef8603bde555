// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package mainthread

import (
	"golang.org/x/sys/windows"
)

// mainThreadID is captured during package initialization, which the Go
// runtime performs on the thread that entered main.
var mainThreadID = windows.GetCurrentThreadId()

// On reports whether the caller runs on the thread that initialized the
// process.
func On() State {
	if windows.GetCurrentThreadId() == mainThreadID {
		return Main
	}
	return NotMain
}
