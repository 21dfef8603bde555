// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/gogpu/ggapp"
)

// textureRegistry hands out TextureIDs for native texture handles. The
// refs map keeps registered handles reachable so the GPU resources behind
// them outlive the caller's references.
//
// No locking: registration happens inside OnDraw, which gogpu runs on a
// single thread.
type textureRegistry struct {
	next ggapp.TextureID
	refs map[ggapp.TextureID]any
}

func newTextureRegistry() *textureRegistry {
	return &textureRegistry{refs: make(map[ggapp.TextureID]any)}
}

// RegisterTexture records tex and returns its ID. IDs start at 1;
// ggapp.TextureNone is never handed out.
func (r *textureRegistry) RegisterTexture(tex any) ggapp.TextureID {
	r.next++
	id := r.next
	r.refs[id] = tex
	return id
}
