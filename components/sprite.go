package components

import (
	"image"

	"github.com/Matiiss/plasma-engine/shared/gamemath"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image  image.Image
	Rect   gamemath.Rect // World-space placement
	ZIndex int
}

var Sprite = donburi.NewComponentType[SpriteData]()
