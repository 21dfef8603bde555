// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package mainthread

import (
	"os"

	"golang.org/x/sys/unix"
)

// On reports whether the caller runs on the main thread. On Linux the
// main thread's TID equals the PID.
func On() State {
	if unix.Gettid() == os.Getpid() {
		return Main
	}
	return NotMain
}
