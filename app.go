package ggapp

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggapp/store"
)

// App is the application callback surface. Run drives it once per frame on
// whichever rendering path was selected.
//
// Implementations may optionally satisfy Saver and Exiter for lifecycle
// hooks.
type App interface {
	// Update draws one frame into dc and may inspect the active path
	// through frame. dc is sized to the window and already cleared.
	Update(dc *gg.Context, frame Frame)
}

// Saver is an optional App extension. When the session ends with a live
// store, Save runs before the store is flushed to disk.
//
// Only the software runtime tears its session down before returning, so
// Save is only guaranteed to run on the software path. Keep state the
// application cannot lose in the store during Update instead.
type Saver interface {
	Save(st store.Store)
}

// Exiter is an optional App extension. OnExit runs after the final save,
// with the same software-path caveat as Saver.
type Exiter interface {
	OnExit()
}

// CreationContext is what an application learns about its environment
// before its first frame.
type CreationContext struct {
	// Backend is the rendering path the process committed to.
	Backend Backend

	// Store is the persisted store for this session, or nil when
	// persistence is disabled or unavailable on this path.
	Store store.Store
}

// NewAppFunc constructs the application once the rendering path is
// committed. It runs inside the active runtime, after the window exists.
type NewAppFunc func(cc CreationContext) App
