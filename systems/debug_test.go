package systems

import (
	"strings"
	"testing"

	"github.com/automoto/platformer/components"
)

func TestWriteDebugFormat(t *testing.T) {
	var b strings.Builder
	err := WriteDebug(&b,
		&components.KeyboardData{Up: true, Right: true},
		&components.MouseData{X: 640, Y: 360, Button: 1},
		&components.PlayerData{Dy: -18, IsJumping: false, IsGrounded: true},
		&components.ObjectData{X: -5, Y: 656, W: 64, H: 64},
	)
	if err != nil {
		t.Fatalf("WriteDebug() error = %v", err)
	}

	want := `--- Keyboard ----
Keyboard.Up:1
Keyboard.Down:0
Keyboard.Left:0
Keyboard.Right:1
--- Mouse ----
Mouse.Button:1
Mouse.X:640
Mouse.Y:360
--- Player ----
Player.Rect.X:-5
Player.Rect.Y:656
Player.IsJumping:0
Player.dy:-18.000000
Player.IsGrounded:1
`
	if got := b.String(); got != want {
		t.Errorf("WriteDebug() =\n%s\nexpected\n%s", got, want)
	}
}
