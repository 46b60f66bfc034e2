package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSet holds parsed fonts. Faces are built per render because a truetype
// face caches glyphs without locking.
type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
}

func loadFonts() (*fontSet, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &fontSet{regular: regular, bold: bold}, nil
}

func (f *fontSet) face(bold bool, size float64) font.Face {
	ttf := f.regular
	if bold {
		ttf = f.bold
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: size})
}
