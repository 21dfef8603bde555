package ggapp

import "errors"

// Errors returned by Run. Precondition failures are reported before any
// selection state is modified.
var (
	// ErrWrongThread is returned when Run is called off the main thread on
	// platforms where that can be detected.
	ErrWrongThread = errors.New("ggapp: run must be called from the main thread")

	// ErrAlreadyLaunched is returned when an application has already
	// launched in this process. The backend decision is one-shot.
	ErrAlreadyLaunched = errors.New("ggapp: application already launched in this process")

	// ErrNoRuntime is returned when no runtime is registered for the
	// chosen backend. Importing the matching driver package registers one.
	ErrNoRuntime = errors.New("ggapp: no runtime registered for backend")
)
