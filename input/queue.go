package input

import "github.com/hajimehoshi/ebiten/v2"

// Queue is a Source fed by hand. Events pushed between polls are delivered in
// order on the next PollEvents; the mouse state is returned as last set.
type Queue struct {
	pending []Event
	x, y    int
	buttons uint32
}

func (q *Queue) Push(events ...Event) {
	q.pending = append(q.pending, events...)
}

func (q *Queue) KeyDown(keys ...ebiten.Key) {
	for _, k := range keys {
		q.Push(Event{Type: EventKeyDown, Key: k})
	}
}

func (q *Queue) KeyUp(keys ...ebiten.Key) {
	for _, k := range keys {
		q.Push(Event{Type: EventKeyUp, Key: k})
	}
}

func (q *Queue) Quit() {
	q.Push(Event{Type: EventQuit})
}

func (q *Queue) SetMouse(x, y int, buttons uint32) {
	q.x, q.y, q.buttons = x, y, buttons
}

func (q *Queue) PollEvents(dst []Event) []Event {
	dst = append(dst, q.pending...)
	q.pending = q.pending[:0]
	return dst
}

func (q *Queue) MouseState() (x, y int, buttons uint32) {
	return q.x, q.y, q.buttons
}
