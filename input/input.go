// Package input turns the platform's per-tick input state into a queue of
// discrete events plus an absolute mouse poll.
package input

import "github.com/hajimehoshi/ebiten/v2"

type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
	EventKeyUp
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	default:
		return "none"
	}
}

// Event is a single queued platform event. Key is only set for key events.
type Event struct {
	Type EventType
	Key  ebiten.Key
}

// Source is drained once per frame by the input system.
type Source interface {
	// PollEvents appends every pending event to dst and returns it. It never blocks.
	PollEvents(dst []Event) []Event
	// MouseState returns the cursor position and the pressed-button bitmask.
	MouseState() (x, y int, buttons uint32)
}
