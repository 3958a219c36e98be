package gui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/xonecas/vscroll/internal/geom"
	"github.com/xonecas/vscroll/internal/widget"
)

// newFace loads the Go Regular font at size.
func newFace(size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// imageCanvas is a widget.Canvas drawing onto an ebiten image.
type imageCanvas struct {
	widget.Transform

	dst  *ebiten.Image
	face *text.GoTextFace
}

func newImageCanvas(dst *ebiten.Image, face *text.GoTextFace) *imageCanvas {
	return &imageCanvas{dst: dst, face: face}
}

func (c *imageCanvas) FillRect(r geom.Rectangle, col color.Color) {
	if col == nil {
		return
	}
	dev, ok := c.Apply(r)
	if !ok {
		return
	}
	vector.DrawFilledRect(c.dst, float32(dev.X), float32(dev.Y), float32(dev.Width), float32(dev.Height), col, true)
}

func (c *imageCanvas) Text(p geom.Point, s string, col color.Color) {
	if col == nil || s == "" || c.face == nil {
		return
	}
	dst := c.dst
	if clip, ok := c.Clip(); ok {
		rect := pixelRect(clip)
		if rect.Empty() {
			return
		}
		dst = dst.SubImage(rect).(*ebiten.Image)
	}

	dev := p.Add(c.Offset())
	op := &text.DrawOptions{}
	// Center the line in a row as tall as the text plus padding.
	op.GeoM.Translate(dev.X, dev.Y+(c.face.Size*0.25))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, c.face, op)
}

// pixelRect is the smallest pixel rectangle covering r.
func pixelRect(r geom.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)),
		int(math.Ceil(r.Y+r.Height)),
	)
}
