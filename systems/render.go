package systems

import (
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Canvas is the part of *ebiten.Image the render step uses.
type Canvas interface {
	Clear()
	DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions)
}

// DrawPlayer clears the back buffer and draws each player's texture into its rectangle.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	drawPlayers(ecs, screen)
}

func drawPlayers(ecs *ecs.ECS, canvas Canvas) {
	canvas.Clear()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		obj := components.Object.Get(e)
		DrawSprite(canvas, sprite.Texture, obj)
	})
}

// DrawSprite draws the whole texture stretched over obj. Ebiten's draw calls
// report no errors, so nothing is checked here.
func DrawSprite(canvas Canvas, tex *assets.Texture, obj *components.ObjectData) {
	if tex == nil || tex.Width == 0 || tex.Height == 0 {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(float64(obj.W)/float64(tex.Width), float64(obj.H)/float64(tex.Height))
	drawOp.GeoM.Translate(float64(obj.X), float64(obj.Y))
	canvas.DrawImage(tex.Image, drawOp)
}
