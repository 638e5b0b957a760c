// Package platform brings up the windowing, graphics and audio subsystems
// and tracks resources that must be released in reverse acquisition order.
package platform

import (
	"errors"
	"fmt"

	"github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var (
	ErrWindow = errors.New("create window")
	ErrRun    = errors.New("run game loop")
)

type Platform struct {
	Audio *audio.Context
}

// Bootstrap applies the window and renderer options and initializes audio.
// Ebiten creates the window and renderer itself once RunGame starts.
func Bootstrap(c *config.Config) (*Platform, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrWindow, c.Width, c.Height)
	}

	// Ebiten centers new windows and is high-DPI aware out of the box.
	ebiten.SetWindowTitle(c.Title)
	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetVsyncEnabled(true)

	// One Update per presented frame; the frame pacer does the capping.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	// Turn window close into a quit event instead of an immediate exit.
	ebiten.SetWindowClosingHandled(true)

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}

	return &Platform{Audio: ctx}, nil
}
