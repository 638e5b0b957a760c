package systems

import (
	"testing"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type drawCall struct {
	img  *ebiten.Image
	geoM ebiten.GeoM
}

type recordingCanvas struct {
	clears int
	draws  []drawCall
	log    []string
}

func (c *recordingCanvas) Clear() {
	c.clears++
	c.log = append(c.log, "clear")
}

func (c *recordingCanvas) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	c.draws = append(c.draws, drawCall{img: img, geoM: op.GeoM})
	c.log = append(c.log, "draw")
}

func TestDrawSpritePlacesTexture(t *testing.T) {
	tests := []struct {
		name          string
		obj           components.ObjectData
		wantX, wantY  float64
		wantW, wantH  float64
	}{
		{"origin", components.ObjectData{X: 0, Y: 0, W: 64, H: 64}, 0, 0, 64, 64},
		{"on floor", components.ObjectData{X: 300, Y: 656, W: 64, H: 64}, 300, 656, 364, 720},
		{"off screen left", components.ObjectData{X: -40, Y: 10, W: 64, H: 64}, -40, 10, 24, 74},
		{"stretched", components.ObjectData{X: 10, Y: 20, W: 128, H: 32}, 10, 20, 138, 52},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			canvas := &recordingCanvas{}
			tex := &assets.Texture{Width: 64, Height: 64}
			obj := tc.obj

			DrawSprite(canvas, tex, &obj)

			if len(canvas.draws) != 1 {
				t.Fatalf("draw calls = %d, expected 1", len(canvas.draws))
			}
			g := canvas.draws[0].geoM
			x0, y0 := g.Apply(0, 0)
			x1, y1 := g.Apply(float64(tex.Width), float64(tex.Height))
			if x0 != tc.wantX || y0 != tc.wantY {
				t.Errorf("top-left = (%v, %v), expected (%v, %v)", x0, y0, tc.wantX, tc.wantY)
			}
			if x1 != tc.wantW || y1 != tc.wantH {
				t.Errorf("bottom-right = (%v, %v), expected (%v, %v)", x1, y1, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestDrawSpriteSkipsMissingTexture(t *testing.T) {
	canvas := &recordingCanvas{}
	DrawSprite(canvas, nil, &components.ObjectData{W: 10, H: 10})
	DrawSprite(canvas, &assets.Texture{}, &components.ObjectData{W: 10, H: 10})
	if len(canvas.draws) != 0 {
		t.Errorf("draw calls = %d, expected 0", len(canvas.draws))
	}
}

func TestDrawPlayersClearsFirst(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateGame(e)
	factory.CreatePlayer(e, &assets.Texture{Width: 32, Height: 48})

	canvas := &recordingCanvas{}
	drawPlayers(e, canvas)

	if len(canvas.log) != 2 || canvas.log[0] != "clear" || canvas.log[1] != "draw" {
		t.Errorf("calls = %v, expected [clear draw]", canvas.log)
	}
}
