// Package ebitentarget lets a renderer draw onto an ebiten screen.
package ebitentarget

import (
	"image"

	"github.com/Matiiss/plasma-engine/renderer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

var _ renderer.Target = (*Target)(nil)

// Target blits onto an *ebiten.Image.
//
// Images that are not already ebiten images are uploaded to the GPU. Uploads
// are reused while the source stays the same value, up to DefaultCacheSize
// sources; past that the whole cache is released. Callers that generate
// images every frame should Evict them once done. Sources that are not
// comparable (e.g. struct values holding slices) are uploaded each frame and
// released on the next Reset.
type Target struct {
	screen *ebiten.Image
	cache  *uploadCache[*ebiten.Image]
}

func New(screen *ebiten.Image) *Target {
	return &Target{
		screen: screen,
		cache:  newUploadCache(DefaultCacheSize, ebiten.NewImageFromImage, (*ebiten.Image).Deallocate),
	}
}

// Reset points the target at a new screen for the next frame. Cached uploads
// are kept; per-frame uploads from the previous frame are released.
func (t *Target) Reset(screen *ebiten.Image) {
	t.screen = screen
	t.cache.releaseTransients()
}

// Evict releases the GPU copy of img, if one was made.
func (t *Target) Evict(img image.Image) {
	t.cache.evict(img)
}

func (t *Target) Blit(img image.Image, at math.Vec2) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(at.X, at.Y)
	t.screen.DrawImage(t.ebitenImage(img), drawOp)
}

func (t *Target) Bounds() image.Rectangle {
	return t.screen.Bounds()
}

func (t *Target) ebitenImage(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	return t.cache.get(img)
}
