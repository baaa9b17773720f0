package tags

import "github.com/yohamta/donburi"

var (
	// Target marks the sprite the camera follows.
	Target = donburi.NewTag().SetName("Target")
)
