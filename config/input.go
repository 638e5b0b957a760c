package config

import "github.com/hajimehoshi/ebiten/v2"

// Direction is one of the four tracked keyboard directions
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionCount // Must be last - used for array sizing
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return "None"
	}
}

// InputConfig holds all keyboard mappings
type InputConfig struct {
	Bindings map[Direction][]ebiten.Key

	// reverse lookup built from Bindings
	byKey map[ebiten.Key]Direction
}

// DirectionFor returns the direction bound to key, or DirectionNone.
func (c *InputConfig) DirectionFor(key ebiten.Key) Direction {
	if d, ok := c.byKey[key]; ok {
		return d
	}
	return DirectionNone
}

// Input is the global input configuration
var Input InputConfig

// Mouse button bits as reported in MouseData.Button
const (
	MouseButtonLeft    uint32 = 1 << 0
	MouseButtonMiddle  uint32 = 1 << 1
	MouseButtonRight   uint32 = 1 << 2
	MouseButtonBack    uint32 = 1 << 3
	MouseButtonForward uint32 = 1 << 4
)

func init() {
	Input = InputConfig{
		Bindings: map[Direction][]ebiten.Key{
			DirectionUp:    {ebiten.KeyW, ebiten.KeyUp},
			DirectionDown:  {ebiten.KeyS, ebiten.KeyDown},
			DirectionLeft:  {ebiten.KeyA, ebiten.KeyLeft},
			DirectionRight: {ebiten.KeyD, ebiten.KeyRight},
		},
	}

	Input.byKey = make(map[ebiten.Key]Direction)
	for dir, keys := range Input.Bindings {
		for _, key := range keys {
			Input.byKey[key] = dir
		}
	}
}
