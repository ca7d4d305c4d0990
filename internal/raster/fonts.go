package raster

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	bold   bool
	italic bool
	size   float64
}

// fontBank holds the parsed Go fonts and the faces built from them. Cell
// font families are not resolved; every family renders with the Go fonts.
type fontBank struct {
	regular    *opentype.Font
	bold       *opentype.Font
	italic     *opentype.Font
	boldItalic *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

var (
	bankOnce sync.Once
	bank     *fontBank
	bankErr  error
)

func loadFonts() (*fontBank, error) {
	bankOnce.Do(func() {
		b := &fontBank{faces: map[faceKey]font.Face{}}
		for _, f := range []struct {
			dst **opentype.Font
			ttf []byte
		}{
			{&b.regular, goregular.TTF},
			{&b.bold, gobold.TTF},
			{&b.italic, goitalic.TTF},
			{&b.boldItalic, gobolditalic.TTF},
		} {
			parsed, err := opentype.Parse(f.ttf)
			if err != nil {
				bankErr = fmt.Errorf("raster: parse font: %w", err)
				return
			}
			*f.dst = parsed
		}
		bank = b
	})
	return bank, bankErr
}

func (b *fontBank) face(bold, italic bool, size float64) (font.Face, error) {
	key := faceKey{bold: bold, italic: italic, size: size}

	b.mu.Lock()
	defer b.mu.Unlock()
	if f, ok := b.faces[key]; ok {
		return f, nil
	}

	src := b.regular
	switch {
	case bold && italic:
		src = b.boldItalic
	case bold:
		src = b.bold
	case italic:
		src = b.italic
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: new face: %w", err)
	}
	b.faces[key] = f
	return f, nil
}
