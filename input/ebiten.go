package input

import (
	"github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseBits = []struct {
	button ebiten.MouseButton
	bit    uint32
}{
	{ebiten.MouseButtonLeft, config.MouseButtonLeft},
	{ebiten.MouseButtonMiddle, config.MouseButtonMiddle},
	{ebiten.MouseButtonRight, config.MouseButtonRight},
	{ebiten.MouseButton3, config.MouseButtonBack},
	{ebiten.MouseButton4, config.MouseButtonForward},
}

// Ebiten is a Source backed by Ebiten's input state. It must be polled from
// the game's Update.
type Ebiten struct {
	// Reusable slice to avoid allocations
	keys []ebiten.Key
}

func NewEbiten() *Ebiten {
	return &Ebiten{}
}

func (e *Ebiten) PollEvents(dst []Event) []Event {
	// Window close is only reported while SetWindowClosingHandled(true) is on.
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, Event{Type: EventQuit})
	}

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		dst = append(dst, Event{Type: EventKeyDown, Key: k})
	}

	e.keys = inpututil.AppendJustReleasedKeys(e.keys[:0])
	for _, k := range e.keys {
		dst = append(dst, Event{Type: EventKeyUp, Key: k})
	}

	return dst
}

func (e *Ebiten) MouseState() (x, y int, buttons uint32) {
	x, y = ebiten.CursorPosition()
	for _, mb := range mouseBits {
		if ebiten.IsMouseButtonPressed(mb.button) {
			buttons |= mb.bit
		}
	}
	return x, y, buttons
}
