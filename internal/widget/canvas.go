package widget

import (
	"image/color"

	"github.com/xonecas/vscroll/internal/geom"
)

// Canvas is the drawing surface a host provides. Coordinates are pixels
// after the current translation; drawing outside the current clip is
// discarded.
type Canvas interface {
	FillRect(r geom.Rectangle, c color.Color)
	// Text draws a single line with its top-left corner at p.
	Text(p geom.Point, s string, c color.Color)
	PushClip(r geom.Rectangle)
	PopClip()
	PushTranslation(v geom.Vector)
	PopTranslation()
}

// Transform tracks the clip and translation stacks for a Canvas
// implementation. The zero value has no clip and no translation.
type Transform struct {
	offsets []geom.Vector
	clips   []geom.Rectangle
}

// Offset is the accumulated translation.
func (t *Transform) Offset() geom.Vector {
	if len(t.offsets) == 0 {
		return geom.Vector{}
	}
	return t.offsets[len(t.offsets)-1]
}

// Clip is the current clip in device coordinates.
func (t *Transform) Clip() (geom.Rectangle, bool) {
	if len(t.clips) == 0 {
		return geom.Rectangle{}, false
	}
	return t.clips[len(t.clips)-1], true
}

// PushTranslation adds v to the current translation.
func (t *Transform) PushTranslation(v geom.Vector) {
	t.offsets = append(t.offsets, t.Offset().Add(v))
}

func (t *Transform) PopTranslation() {
	if len(t.offsets) > 0 {
		t.offsets = t.offsets[:len(t.offsets)-1]
	}
}

// PushClip intersects r, in local coordinates, with the current clip.
func (t *Transform) PushClip(r geom.Rectangle) {
	r = r.Translate(t.Offset())
	if cur, ok := t.Clip(); ok {
		var visible bool
		if r, visible = cur.Intersection(r); !visible {
			r = geom.Rect(r.X, r.Y, 0, 0)
		}
	}
	t.clips = append(t.clips, r)
}

func (t *Transform) PopClip() {
	if len(t.clips) > 0 {
		t.clips = t.clips[:len(t.clips)-1]
	}
}

// Apply maps r from local to device coordinates and clips it. ok is false
// when nothing of r is visible.
func (t *Transform) Apply(r geom.Rectangle) (geom.Rectangle, bool) {
	r = r.Translate(t.Offset())
	if clip, ok := t.Clip(); ok {
		var visible bool
		if r, visible = clip.Intersection(r); !visible {
			return r, false
		}
	}
	return r, r.Width > 0 && r.Height > 0
}
