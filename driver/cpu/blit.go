// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cpu

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggapp"
)

var (
	// errNilTarget is returned when the context has no pixmap to present.
	errNilTarget = errors.New("cpu: nil render target")

	// errNoTextureCreator is returned when the draw context cannot create
	// textures.
	errNoTextureCreator = errors.New("cpu: draw context has no texture creator")

	// errNotDrawable is returned when the window texture does not implement
	// gpucontext.Texture.
	errNotDrawable = errors.New("cpu: texture is not drawable")
)

// textureDestroyer matches the texture Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// blitter uploads CPU-rasterized pixels into a window texture, scaling
// them to the window size first when the two differ.
//
// No locking: present runs inside OnDraw, which gogpu runs on a single
// thread.
type blitter struct {
	scaler  xdraw.Scaler
	texture any
	w, h    int
	buf     *image.RGBA
}

func newBlitter(filter ggapp.ScaleFilter) *blitter {
	return &blitter{scaler: interpolator(filter)}
}

// interpolator maps a ScaleFilter to its x/image scaler.
func interpolator(filter ggapp.ScaleFilter) xdraw.Scaler {
	switch filter {
	case ggapp.FilterNearest:
		return xdraw.NearestNeighbor
	case ggapp.FilterCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.ApproxBiLinear
	}
}

// present puts the pixmap on screen at w x h.
func (b *blitter) present(pix *gg.Pixmap, dc gpucontext.TextureDrawer, w, h int) error {
	if pix == nil {
		return errNilTarget
	}
	data := b.frame(pix, w, h)

	if b.texture == nil || b.w != w || b.h != h {
		return b.realloc(dc, data, w, h)
	}
	updater, ok := b.texture.(gpucontext.TextureUpdater)
	if !ok {
		// No in-place update path; recreate the texture.
		return b.realloc(dc, data, w, h)
	}
	if err := updater.UpdateData(data); err != nil {
		return fmt.Errorf("cpu: updating window texture: %w", err)
	}
	return b.draw(dc)
}

// realloc replaces the window texture with a new one holding data.
func (b *blitter) realloc(dc gpucontext.TextureDrawer, data []byte, w, h int) error {
	creator := dc.TextureCreator()
	if creator == nil {
		return errNoTextureCreator
	}
	// NewTextureFromRGBA waits for the GPU internally, so the old texture
	// can be destroyed as soon as it returns.
	tex, err := creator.NewTextureFromRGBA(w, h, data)
	if err != nil {
		return fmt.Errorf("cpu: creating window texture: %w", err)
	}
	// gg pixmap data is premultiplied alpha; mark the texture so the
	// window compositor blends it correctly.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	old := b.texture
	b.texture = tex
	b.w, b.h = w, h
	if old != nil {
		if destroyer, ok := old.(textureDestroyer); ok {
			destroyer.Destroy()
		}
	}
	return b.draw(dc)
}

func (b *blitter) draw(dc gpucontext.TextureDrawer) error {
	tex, ok := b.texture.(gpucontext.Texture)
	if !ok {
		return errNotDrawable
	}
	return dc.DrawTexture(tex, 0, 0)
}

// frame returns pixel data for one w x h frame. Matching sizes pass the
// pixmap through untouched; anything else is scaled through a reused
// buffer.
func (b *blitter) frame(pix *gg.Pixmap, w, h int) []byte {
	pw, ph := pix.Width(), pix.Height()
	if pw == w && ph == h {
		return pix.Data()
	}

	src := &image.RGBA{
		Pix:    pix.Data(),
		Stride: pw * 4,
		Rect:   image.Rect(0, 0, pw, ph),
	}
	if b.buf == nil || b.buf.Rect.Dx() != w || b.buf.Rect.Dy() != h {
		b.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	b.scaler.Scale(b.buf, b.buf.Rect, src, src.Rect, xdraw.Src, nil)
	return b.buf.Pix
}

// close destroys the window texture and drops the scale buffer.
func (b *blitter) close() {
	if b.texture != nil {
		if destroyer, ok := b.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		b.texture = nil
	}
	b.buf = nil
}
