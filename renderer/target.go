package renderer

import (
	"image"
	"image/color"
	"math"

	donburimath "github.com/yohamta/donburi/features/math"
	"golang.org/x/image/draw"
)

// Target is the drawing backend the renderer blits onto.
type Target interface {
	// Blit draws img with its top-left corner at the given screen point.
	Blit(img image.Image, at donburimath.Vec2)
	Bounds() image.Rectangle
}

// ImageTarget blits onto an in-memory image. Destination points are
// floored to whole pixels.
type ImageTarget struct {
	dst draw.Image
}

func NewImageTarget(dst draw.Image) *ImageTarget {
	return &ImageTarget{dst: dst}
}

func (t *ImageTarget) Blit(img image.Image, at donburimath.Vec2) {
	dp := image.Pt(int(math.Floor(at.X)), int(math.Floor(at.Y)))
	draw.Copy(t.dst, dp, img, img.Bounds(), draw.Over, nil)
}

func (t *ImageTarget) Bounds() image.Rectangle {
	return t.dst.Bounds()
}

// At reads back a pixel from the destination.
func (t *ImageTarget) At(x, y int) color.Color {
	return t.dst.At(x, y)
}
