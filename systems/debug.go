package systems

import (
	"fmt"
	"io"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewDebugRenderer dumps keyboard, mouse and player state to w every frame.
func NewDebugRenderer(w io.Writer) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, _ *ebiten.Image) {
		gameEntry, ok := components.Game.First(ecs.World)
		if !ok {
			return
		}
		playerEntry, ok := tags.Player.First(ecs.World)
		if !ok {
			return
		}

		_ = WriteDebug(w,
			components.Keyboard.Get(gameEntry),
			components.Mouse.Get(gameEntry),
			components.Player.Get(playerEntry),
			components.Object.Get(playerEntry),
		)
	}
}

func WriteDebug(w io.Writer, kb *components.KeyboardData, mouse *components.MouseData, player *components.PlayerData, obj *components.ObjectData) error {
	_, err := fmt.Fprintf(w,
		"--- Keyboard ----\nKeyboard.Up:%d\nKeyboard.Down:%d\nKeyboard.Left:%d\nKeyboard.Right:%d\n"+
			"--- Mouse ----\nMouse.Button:%d\nMouse.X:%d\nMouse.Y:%d\n"+
			"--- Player ----\nPlayer.Rect.X:%d\nPlayer.Rect.Y:%d\nPlayer.IsJumping:%d\nPlayer.dy:%f\nPlayer.IsGrounded:%d\n",
		btoi(kb.Up), btoi(kb.Down), btoi(kb.Left), btoi(kb.Right),
		mouse.Button, mouse.X, mouse.Y,
		obj.X, obj.Y, btoi(player.IsJumping), player.Dy, btoi(player.IsGrounded),
	)
	return err
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
