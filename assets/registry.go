// Package assets owns the images the game draws. Each image is decoded or
// generated once and shared read-only afterwards.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// SheetSpec describes the placeholder generated when a sheet has no file on
// disk: Cols x Rows frames of FrameW x FrameH.
type SheetSpec struct {
	FrameW int
	FrameH int
	Cols   int
	Rows   int
	Color  color.RGBA
	// BlankFirst leaves frame 0 transparent, for tilesets where id 0 is air.
	BlankFirst bool
}

// Registry caches images by name.
type Registry struct {
	fsys   fs.FS
	images map[string]*ebiten.Image
}

// NewRegistry looks up "<name>.png" files in dir.
func NewRegistry(dir string) *Registry {
	return &Registry{fsys: os.DirFS(dir), images: map[string]*ebiten.Image{}}
}

// Sheet returns the image called name, decoding "<name>.png" on first use or
// generating a placeholder from spec when the file does not exist.
func (r *Registry) Sheet(name string, spec SheetSpec) (*ebiten.Image, error) {
	if img, ok := r.images[name]; ok {
		return img, nil
	}

	img, err := r.load(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("assets: generating placeholder", "name", name)
		img = ebiten.NewImageFromImage(Placeholder(spec))
	case err != nil:
		return nil, err
	}
	r.images[name] = img
	return img, nil
}

func (r *Registry) load(name string) (*ebiten.Image, error) {
	f, err := r.fsys.Open(cleanAssetPath(name) + ".png")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Placeholder draws a sheet of frames in alternating shades of spec.Color so
// animation is visible without art.
func Placeholder(spec SheetSpec) *image.RGBA {
	fw, fh := max(spec.FrameW, 1), max(spec.FrameH, 1)
	w, h := fw*max(spec.Cols, 1), fh*max(spec.Rows, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	base := spec.Color
	if base == (color.RGBA{}) {
		base = colornames.Magenta
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			col, row := x/fw, y/fh
			if spec.BlankFirst && col == 0 && row == 0 {
				continue
			}
			c := base
			if (col+row)%2 == 1 {
				c = shade(base)
			}
			// 1px outline per frame
			if x%fw == 0 || y%fh == 0 {
				c = colornames.Black
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func shade(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 4 * 3, G: c.G / 4 * 3, B: c.B / 4 * 3, A: c.A}
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "assets/")
	return strings.TrimSuffix(s, ".png")
}
