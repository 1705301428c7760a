package svgraster

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/benoitkugler/forkmonkey/svgscene"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Text is drawn with the Go fonts, whatever the requested family.

var (
	fontsOnce     sync.Once
	regular, bold *opentype.Font
	errFonts      error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if regular, errFonts = opentype.Parse(goregular.TTF); errFonts != nil {
			errFonts = fmt.Errorf("svgraster: loading regular font: %w", errFonts)
			return
		}
		if bold, errFonts = opentype.Parse(gobold.TTF); errFonts != nil {
			errFonts = fmt.Errorf("svgraster: loading bold font: %w", errFonts)
		}
	})
	return errFonts
}

type faceKey struct {
	bold bool
	size float64
}

type face struct {
	src *opentype.Font
	font.Face
}

// face returns a cached face for the given style
func (rd *Renderer) face(isBold bool, size float64) (*face, error) {
	key := faceKey{bold: isBold, size: size}
	if f, ok := rd.faces[key]; ok {
		return f, nil
	}
	if err := loadFonts(); err != nil {
		return nil, err
	}
	fnt := regular
	if isBold {
		fnt = bold
	}
	ff, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, err
	}
	f := &face{src: fnt, Face: ff}
	rd.faces[key] = f
	return f, nil
}

// printable drops the runes missing from the font
func (rd *Renderer) printable(fnt *opentype.Font, text string) string {
	var sb strings.Builder
	for _, r := range text {
		index, err := fnt.GlyphIndex(&rd.buf, r)
		if err != nil || index == 0 {
			svgscene.Logger().Debug("svgraster: glyph missing from font, skipped", "rune", string(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// DrawText paints a text run, anchored at its position.
func (rd *Renderer) DrawText(run svgscene.TextRun) {
	if run.Size <= 0 {
		return
	}
	col, ok := patternColor(run.Color, run.Opacity)
	if !ok {
		return
	}
	f, err := rd.face(run.Bold, run.Size)
	if err != nil {
		svgscene.Logger().Debug("svgraster: text skipped", "error", err)
		return
	}
	text := rd.printable(f.src, run.Text)
	if text == "" {
		return
	}
	dot := run.Position
	switch run.Anchor {
	case svgscene.AnchorMiddle:
		dot.X -= font.MeasureString(f, text) / 2
	case svgscene.AnchorEnd:
		dot.X -= font.MeasureString(f, text)
	}
	dr := font.Drawer{Dst: rd.target(), Src: image.NewUniform(col), Face: f, Dot: dot}
	dr.DrawString(text)
}
