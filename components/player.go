package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Dy         float64 // vertical velocity, pixels per frame
	IsJumping  bool    // one-frame pulse set by the jump trigger
	IsGrounded bool
}

var Player = donburi.NewComponentType[PlayerData]()
