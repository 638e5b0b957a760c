package components

import (
	"github.com/automoto/platformer/assets"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Texture *assets.Texture
}

var Sprite = donburi.NewComponentType[SpriteData]()
