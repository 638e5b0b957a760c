package config

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want Direction
	}{
		{ebiten.KeyW, DirectionUp},
		{ebiten.KeyUp, DirectionUp},
		{ebiten.KeyS, DirectionDown},
		{ebiten.KeyDown, DirectionDown},
		{ebiten.KeyA, DirectionLeft},
		{ebiten.KeyLeft, DirectionLeft},
		{ebiten.KeyD, DirectionRight},
		{ebiten.KeyRight, DirectionRight},
		{ebiten.KeySpace, DirectionNone},
		{ebiten.KeyQ, DirectionNone},
	}

	for _, tc := range tests {
		if got := Input.DirectionFor(tc.key); got != tc.want {
			t.Errorf("DirectionFor(%v) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}

func TestFrameBudgetUsesIntegerDivision(t *testing.T) {
	if C.FrameBudget.Milliseconds() != 16 {
		t.Errorf("FrameBudget = %v, expected 16ms", C.FrameBudget)
	}
}
