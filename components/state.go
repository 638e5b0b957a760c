package components

import (
	"github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

type GameData struct {
	State config.GameStateID
}

// Running reports whether the loop should keep iterating.
func (g *GameData) Running() bool {
	return g.State == config.StateRunning
}

var Game = donburi.NewComponentType[GameData]()
