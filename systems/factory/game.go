package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the entity carrying the run state and the input state.
func CreateGame(ecs *ecs.ECS) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	components.Game.SetValue(game, components.GameData{State: cfg.StateRunning})
	// Zero-value keyboard and mouse are correct (nothing pressed, cursor at 0,0)

	return game
}
