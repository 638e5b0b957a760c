package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/input"
	"github.com/yohamta/donburi/ecs"
)

// NewInputSystem drains src once per frame into the game entity's keyboard
// and mouse state. Must run BEFORE UpdatePlayer in the system order.
func NewInputSystem(src input.Source) func(*ecs.ECS) {
	// Reusable slice to avoid allocations
	var events []input.Event

	return func(e *ecs.ECS) {
		entry, ok := components.Game.First(e.World)
		if !ok {
			return // No game entity yet
		}
		game := components.Game.Get(entry)
		keyboard := components.Keyboard.Get(entry)

		events = src.PollEvents(events[:0])
		for _, ev := range events {
			ApplyEvent(game, keyboard, ev)
		}

		// The mouse is polled every frame, independent of the event queue.
		mouse := components.Mouse.Get(entry)
		x, y, buttons := src.MouseState()
		*mouse = components.MouseData{X: x, Y: y, Button: buttons}
	}
}

// ApplyEvent folds a single event into the game and keyboard state.
func ApplyEvent(game *components.GameData, keyboard *components.KeyboardData, ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		game.State = cfg.StateExit
	case input.EventKeyDown:
		setDirection(keyboard, cfg.Input.DirectionFor(ev.Key), true)
	case input.EventKeyUp:
		setDirection(keyboard, cfg.Input.DirectionFor(ev.Key), false)
	}
}

func setDirection(keyboard *components.KeyboardData, dir cfg.Direction, pressed bool) {
	switch dir {
	case cfg.DirectionUp:
		keyboard.Up = pressed
	case cfg.DirectionDown:
		keyboard.Down = pressed
	case cfg.DirectionLeft:
		keyboard.Left = pressed
	case cfg.DirectionRight:
		keyboard.Right = pressed
	}
}
