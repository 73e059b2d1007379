// Package graphics is the one place in this engine allowed to depend on
// ebiten.Image: it resolves a sprite's logical animation-set id to decoded
// pixels (spec.md §6 "Resource images/sounds: accessed by logical id; the
// engine does not depend on file layout beyond a blocking loader returns
// decoded pixels"), keeping internal/sprite itself free of any rendering
// backend coupling.
package graphics

import (
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageStore resolves an AnimationSet id to its source sheet image,
// loading on first request and caching the result. A missing file falls
// back to a generated placeholder rather than failing, so maps with
// unfinished art still run.
type ImageStore struct {
	images map[string]*ebiten.Image
}

func NewImageStore() *ImageStore {
	return &ImageStore{images: make(map[string]*ebiten.Image)}
}

// Get returns the sheet image for an AnimationSet id (e.g.
// "hero/tunic1", "enemy/octorok"), loading it from
// assets/sprites/<id>.png on first use.
func (s *ImageStore) Get(id string) *ebiten.Image {
	if img, ok := s.images[id]; ok {
		return img
	}
	img := s.load(id)
	s.images[id] = img
	return img
}

func (s *ImageStore) load(id string) *ebiten.Image {
	path := "assets/sprites/" + id + ".png"
	file, err := os.Open(path)
	if err != nil {
		return placeholder(id)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return placeholder(id)
	}
	return ebiten.NewImageFromImage(decoded)
}

// placeholder is a flat-colored stand-in sheet, sized so a single-frame
// lookup at (0,0,16,16) never goes out of bounds.
func placeholder(id string) *ebiten.Image {
	img := ebiten.NewImage(16, 16)
	img.Fill(placeholderColor(id))
	return img
}

// placeholderColor derives a stable color from the id so distinct
// missing sprites are at least visually distinguishable during
// development.
func placeholderColor(id string) color.RGBA {
	var h uint32
	for i := 0; i < len(id); i++ {
		h = h*31 + uint32(id[i])
	}
	return color.RGBA{R: uint8(h), G: uint8(h >> 8), B: uint8(h >> 16), A: 255}
}
