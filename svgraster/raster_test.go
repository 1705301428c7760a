package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/benoitkugler/forkmonkey/dna"
	"github.com/benoitkugler/forkmonkey/monkey"
	"github.com/benoitkugler/forkmonkey/svgscene"
)

func rgba(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestRasterMonkey(t *testing.T) {
	d := dna.MustNew(map[dna.TraitCategory]string{
		dna.BodyColor:      "blue",
		dna.FaceExpression: "happy",
		dna.Accessory:      "sunglasses",
		dna.Pattern:        "solid",
		dna.Background:     "white",
		dna.Special:        "none",
	}, 3, 72, "")
	img, err := RasterDrawing(monkey.Render(d, 200, 200))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("unexpected size %v", b)
	}
	if c := rgba(img, 1, 199); c != (color.RGBA{0xF8, 0xF9, 0xFA, 0xFF}) {
		t.Errorf("expected the white background in the corner, got %v", c)
	}
	if c := rgba(img, 100, 100); c != (color.RGBA{0xFF, 0xDA, 0xB9, 0xFF}) {
		t.Errorf("expected the muzzle at the center, got %v", c)
	}
}

func clippedDrawing() *svgscene.Drawing {
	return &svgscene.Drawing{
		Width: 40, Height: 40,
		Defs: []*svgscene.Element{
			svgscene.New("clipPath").Set("id", "disk").Append(svgscene.Circle(20, 20, 10)),
		},
		Layers: []svgscene.Layer{{Name: "main", Elements: []*svgscene.Element{
			svgscene.Rect(0, 0, 40, 40).Fill("#000"),
			svgscene.Group(svgscene.Rect(0, 0, 40, 40).Fill("#FF0000")).Set("clip-path", "url(#disk)"),
			svgscene.Rect(30, 30, 10, 10).Fill("#00FF00"),
		}}},
	}
}

func TestClip(t *testing.T) {
	img, err := RasterDrawing(clippedDrawing())
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		x, y int
		want color.RGBA
	}{
		{20, 20, color.RGBA{0xFF, 0, 0, 0xFF}}, // inside the clip
		{2, 2, color.RGBA{0, 0, 0, 0xFF}},      // outside
		{35, 35, color.RGBA{0, 0xFF, 0, 0xFF}}, // painted after the clip
	} {
		if c := rgba(img, test.x, test.y); c != test.want {
			t.Errorf("pixel (%d, %d): expected %v, got %v", test.x, test.y, test.want, c)
		}
	}
}

func TestText(t *testing.T) {
	dr := &svgscene.Drawing{
		Width: 80, Height: 30,
		Layers: []svgscene.Layer{{Elements: []*svgscene.Element{
			svgscene.Rect(0, 0, 80, 30).Fill("#000"),
			svgscene.Text(40, 20, "RARE ♔").Set("font-size", "16").Fill("#FFF").Set("text-anchor", "middle"),
		}}},
	}
	img, err := RasterDrawing(dr)
	if err != nil {
		t.Fatal(err)
	}
	lit, left, right := 0, 80, 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 80; x++ {
			if img.RGBAAt(x, y).R > 0x80 {
				lit++
				left, right = min(left, x), max(right, x)
			}
		}
	}
	if lit == 0 {
		t.Fatal("no text painted")
	}
	// the text is centered on x = 40
	if center := (left + right) / 2; center < 34 || center > 46 {
		t.Errorf("text should be centered, spans [%d, %d]", left, right)
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, clippedDrawing()); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Errorf("unexpected size %v", b)
	}

	if err := EncodePNG(&buf, &svgscene.Drawing{}); err == nil {
		t.Error("expected an error for an empty drawing")
	}
}
