package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances every player by one frame using the current input.
func UpdatePlayer(ecs *ecs.ECS) {
	gameEntry, ok := components.Game.First(ecs.World)
	if !ok {
		return
	}
	keyboard := *components.Keyboard.Get(gameEntry)
	mouse := *components.Mouse.Get(gameEntry)

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		obj := components.Object.Get(playerEntry)
		StepPlayer(player, obj, keyboard, mouse)
	})
}

// StepPlayer runs the four physics stages in their fixed order.
func StepPlayer(player *components.PlayerData, obj *components.ObjectData, keyboard components.KeyboardData, mouse components.MouseData) {
	TriggerJump(player, keyboard)
	MoveHorizontal(obj, keyboard)
	if ApplyMouseOverride(player, obj, mouse) {
		return
	}
	ApplyGravity(player, obj, cfg.C.Height)
}

// TriggerJump only sets velocity; the rectangle moves in ApplyGravity.
func TriggerJump(player *components.PlayerData, keyboard components.KeyboardData) {
	if keyboard.Up && !keyboard.Down && player.IsGrounded {
		player.Dy = -cfg.Player.JumpForce
		player.IsJumping = true
	}
}

// MoveHorizontal applies a fixed step. Holding both directions cancels out.
func MoveHorizontal(obj *components.ObjectData, keyboard components.KeyboardData) {
	if keyboard.Left && !keyboard.Right {
		obj.X -= cfg.Player.MoveSpeed
	}
	if keyboard.Right && !keyboard.Left {
		obj.X += cfg.Player.MoveSpeed
	}
}

// ApplyMouseOverride centers the player on the cursor while only the primary
// button is held. It reports whether the override was applied.
func ApplyMouseOverride(player *components.PlayerData, obj *components.ObjectData, mouse components.MouseData) bool {
	if mouse.Button != cfg.MouseButtonLeft {
		return false
	}
	obj.X = mouse.X - obj.W/2
	obj.Y = mouse.Y - obj.H/2
	player.Dy = cfg.Player.RestingSpeed
	return true
}

// ApplyGravity integrates one Euler step while airborne, or clamps to the floor.
// IsJumping forces one integration step even from the floor and is cleared
// in the same call, so it never survives past the frame that set it.
func ApplyGravity(player *components.PlayerData, obj *components.ObjectData, floor int) {
	if obj.Bottom() < floor || player.IsJumping {
		obj.Y += int(player.Dy)
		player.Dy += cfg.Player.Gravity
		player.IsJumping = false
		player.IsGrounded = false
		return
	}

	obj.Y = floor - obj.H
	player.IsJumping = false
	player.Dy = cfg.Player.RestingSpeed
	player.IsGrounded = true
}
