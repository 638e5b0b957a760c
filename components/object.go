package components

import (
	"github.com/yohamta/donburi"
)

// ObjectData is the player's destination rectangle in window pixels.
// W and H come from the texture and never change after spawn.
type ObjectData struct {
	X, Y int
	W, H int
}

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (o *ObjectData) Bottom() int {
	return o.Y + o.H
}

var Object = donburi.NewComponentType[ObjectData]()
