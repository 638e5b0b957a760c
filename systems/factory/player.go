package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at the origin, sized from its texture.
func CreatePlayer(ecs *ecs.ECS, tex *assets.Texture) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Object.SetValue(player, components.ObjectData{
		X: 0,
		Y: 0,
		W: tex.Width,
		H: tex.Height,
	})
	components.Player.SetValue(player, components.PlayerData{
		Dy:         cfg.Player.RestingSpeed,
		IsJumping:  false,
		IsGrounded: false,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Texture: tex,
	})

	return player
}
