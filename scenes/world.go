package scenes

import (
	"io"
	"os"
	"sync"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/input"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/automoto/platformer/timing"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options wires the scene to its input, texture and outputs.
type Options struct {
	Source  input.Source
	Texture *assets.Texture
	Pacer   *timing.Pacer // defaults to the configured frame budget
	Debug   io.Writer     // defaults to os.Stdout
	Logger  *log.Logger
}

type PlatformerScene struct {
	ecs  *ecs.ECS
	opts Options
	once sync.Once

	game    *donburi.Entry
	player  *donburi.Entry
	stopped bool
}

// NewPlatformerScene creates the single-player scene. The world is built on first use.
func NewPlatformerScene(opts Options) *PlatformerScene {
	if opts.Pacer == nil {
		opts.Pacer = timing.NewPacer(cfg.C.FrameBudget)
	}
	if opts.Debug == nil {
		opts.Debug = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &PlatformerScene{opts: opts}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.stopped {
		return
	}
	ps.ecs.Update()

	if !ps.Running() {
		ps.stopped = true
		ps.opts.Logger.Info("quit requested")
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Running reports whether the loop is still in the running state.
func (ps *PlatformerScene) Running() bool {
	ps.once.Do(ps.configure)
	return components.Game.Get(ps.game).Running()
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: stamp → sample input → physics
	ecs.AddSystem(systems.NewFrameStartSystem(ps.opts.Pacer))
	ecs.AddSystem(systems.NewInputSystem(ps.opts.Source))
	ecs.AddSystem(systems.UpdatePlayer)

	// Render → pace → dump
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.NewFramePacer(ps.opts.Pacer))
	ecs.AddRenderer(cfg.Default, systems.NewDebugRenderer(ps.opts.Debug))

	ps.ecs = ecs
	ps.game = factory.CreateGame(ecs)
	ps.player = factory.CreatePlayer(ecs, ps.opts.Texture)
}
