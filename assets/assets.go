package assets

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Decoders picked up by image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrDecode        = errors.New("decode image")
	ErrTextureUpload = errors.New("create texture")
)

// Texture is a GPU-side image plus its native size.
type Texture struct {
	Image  *ebiten.Image
	Width  int
	Height int

	released bool
}

// Release frees the GPU image. Calling it more than once is a no-op.
func (t *Texture) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	if t.Image != nil {
		t.Image.Deallocate()
	}
}

// Released reports whether Release has run.
func (t *Texture) Released() bool {
	return t.released
}

// Decode reads an image in any registered format and returns it with the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, format, nil
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	return Decode(f)
}

// NewTexture uploads img. The caller must not use img afterwards.
func NewTexture(img image.Image) (*Texture, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrTextureUpload, b.Dx(), b.Dy())
	}

	gpu := ebiten.NewImageFromImage(img)
	w, h := gpu.Bounds().Dx(), gpu.Bounds().Dy()
	return &Texture{Image: gpu, Width: w, Height: h}, nil
}

// LoadTexture decodes the file at path and uploads it as a texture.
// The decoded pixels are dropped as soon as the upload has been attempted.
func LoadTexture(path string) (*Texture, error) {
	surface, _, err := DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	tex, err := NewTexture(surface)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tex, nil
}
