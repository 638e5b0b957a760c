package components

import (
	"github.com/yohamta/donburi"
)

// KeyboardData is the level-triggered state of the four directions.
type KeyboardData struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

var Keyboard = donburi.NewComponentType[KeyboardData]()

// MouseData is overwritten once per frame from a cursor poll.
type MouseData struct {
	X, Y   int
	Button uint32 // bitmask, see config.MouseButtonLeft
}

var Mouse = donburi.NewComponentType[MouseData]()
