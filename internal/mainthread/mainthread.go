// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mainthread reports whether the calling goroutine runs on the
// process main thread. Window systems on most platforms require event
// loops to run there.
//
// Detection is best-effort: the calling goroutine must be locked to its
// OS thread (runtime.LockOSThread) for the answer to stay valid, and not
// every platform can identify the main thread at all.
package mainthread

import "fmt"

// State is the answer to "is this the main thread?".
type State int

const (
	// Unknown means this platform cannot identify the main thread.
	Unknown State = iota
	// Main means the caller runs on the process main thread.
	Main
	// NotMain means the caller runs on some other thread.
	NotMain
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Main:
		return "main"
	case NotMain:
		return "not main"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
