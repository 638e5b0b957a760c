package main

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/platform"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeScene struct {
	running bool
	updates int
}

func (s *fakeScene) Update()            { s.updates++ }
func (s *fakeScene) Draw(*ebiten.Image) {}
func (s *fakeScene) Running() bool      { return s.running }

func TestGameUpdateWhileRunning(t *testing.T) {
	scene := &fakeScene{running: true}
	res := platform.NewResources(log.New(io.Discard))
	released := false
	res.Acquire("texture", func() { released = true })

	g := NewGame(scene, res)
	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}
	if scene.updates != 3 {
		t.Errorf("scene updated %d times, expected 3", scene.updates)
	}
	if released {
		t.Error("resources released while running")
	}
}

func TestGameTerminatesAfterExit(t *testing.T) {
	scene := &fakeScene{running: false}
	res := platform.NewResources(log.New(io.Discard))
	releases := 0
	res.Acquire("texture", func() { releases++ })

	g := NewGame(scene, res)
	for i := 0; i < 2; i++ {
		if err := g.Update(); !errors.Is(err, ebiten.Termination) {
			t.Fatalf("Update() error = %v, expected ebiten.Termination", err)
		}
	}
	if scene.updates != 0 {
		t.Errorf("scene updated %d times after exit, expected 0", scene.updates)
	}
	if releases != 1 {
		t.Errorf("texture released %d times, expected 1", releases)
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g := NewGame(&fakeScene{}, platform.NewResources(log.New(io.Discard)))
	for _, size := range [][2]int{{640, 480}, {1920, 1080}} {
		w, h := g.Layout(size[0], size[1])
		if w != config.C.Width || h != config.C.Height {
			t.Errorf("Layout(%d, %d) = (%d, %d), expected (%d, %d)",
				size[0], size[1], w, h, config.C.Width, config.C.Height)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("bootstrap: %w", platform.ErrWindow), "could not create window"},
		{fmt.Errorf("load x: %w", assets.ErrDecode), "could not load image"},
		{fmt.Errorf("load x: %w", assets.ErrTextureUpload), "could not create texture"},
		{fmt.Errorf("%w: boom", platform.ErrRun), "could not start platform"},
		{errors.New("other"), "platformer failed"},
	}
	for _, tc := range tests {
		if got := describe(tc.err); got != tc.want {
			t.Errorf("describe(%v) = %q, expected %q", tc.err, got, tc.want)
		}
	}
}
