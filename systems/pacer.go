package systems

import (
	"github.com/automoto/platformer/timing"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewFrameStartSystem stamps the start of the frame. Must be the first system.
func NewFrameStartSystem(p *timing.Pacer) func(*ecs.ECS) {
	return func(*ecs.ECS) {
		p.Begin()
	}
}

// NewFramePacer sleeps out the rest of the frame budget once drawing is done.
func NewFramePacer(p *timing.Pacer) func(*ecs.ECS, *ebiten.Image) {
	return func(*ecs.ECS, *ebiten.Image) {
		p.End()
	}
}
