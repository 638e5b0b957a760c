package main

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/input"
	"github.com/automoto/platformer/platform"
	"github.com/automoto/platformer/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Running() bool
}

type Game struct {
	bounds    image.Rectangle
	scene     Scene
	resources *platform.Resources
}

func NewGame(scene Scene, resources *platform.Resources) *Game {
	return &Game{
		bounds:    image.Rectangle{},
		scene:     scene,
		resources: resources,
	}
}

// Update runs one loop iteration. Once the scene has left the running state
// the held resources are released and the loop never iterates again.
func (g *Game) Update() error {
	if !g.scene.Running() {
		g.resources.Release()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "platformer",
})

var rootCmd = &cobra.Command{
	Use:           "platformer",
	Short:         "Single-sprite platformer prototype",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	resources := platform.NewResources(logger)
	defer resources.Release()

	if _, err := platform.Bootstrap(config.C); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	tex, err := assets.LoadTexture(config.Player.ImagePath)
	if err != nil {
		return err
	}
	resources.Acquire("texture", tex.Release)

	scene := scenes.NewPlatformerScene(scenes.Options{
		Source:  input.NewEbiten(),
		Texture: tex,
		Logger:  logger,
	})

	if err := ebiten.RunGame(NewGame(scene, resources)); err != nil {
		return fmt.Errorf("%w: %v", platform.ErrRun, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(describe(err), "err", err)
		os.Exit(1)
	}
}

// describe names the initialization step that failed.
func describe(err error) string {
	switch {
	case errors.Is(err, platform.ErrWindow):
		return "could not create window"
	case errors.Is(err, assets.ErrDecode):
		return "could not load image"
	case errors.Is(err, assets.ErrTextureUpload):
		return "could not create texture"
	case errors.Is(err, platform.ErrRun):
		return "could not start platform"
	default:
		return "platformer failed"
	}
}
