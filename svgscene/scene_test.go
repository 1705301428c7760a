package svgscene

import (
	"bytes"
	"image/color"
	"math"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFormatNumber(t *testing.T) {
	a, b := 0.1, 0.2
	for _, test := range []struct {
		in       float64
		expected string
	}{
		{200, "200"},
		{-90, "-90"},
		{0.5, "0.5"},
		{math.Copysign(0, -1), "0"},
		{a + b, "0.30000000000000004"},
	} {
		if got := FormatNumber(test.in); got != test.expected {
			t.Errorf("FormatNumber(%v) = %s, expected %s", test.in, got, test.expected)
		}
	}
}

func TestElementBuilders(t *testing.T) {
	e := Ellipse(200, 185, 18, 20).Fill("white").Opacity(0.3)
	if v, _ := e.Get("ry"); v != "20" {
		t.Errorf("unexpected ry %s", v)
	}
	e.Fill("black")
	if len(e.Attrs) != 6 {
		t.Errorf("Set should replace existing attributes, got %v", e.Attrs)
	}
	if got, _ := Polygon(1, 2, 3.5, 4).Get("points"); got != "1,2 3.5,4" {
		t.Errorf("unexpected points %s", got)
	}
	txt := Text(10, 20, "★")
	if txt.Text != "★" || txt.Tag != "text" {
		t.Errorf("unexpected text element %v", txt)
	}
}

func TestPathString(t *testing.T) {
	p := Path{}.MoveTo(170, 260).QuadTo(200, 285, 230, 260)
	if s := p.String(); s != "M170 260 Q200 285 230 260" {
		t.Errorf("unexpected path %s", s)
	}
	p = Path{}.MoveTo(0, 550).QuadTo(100, 538, 200, 550).SmoothQuadTo(400, 550).Close()
	if s := p.String(); s != "M0 550 Q100 538 200 550 T400 550 Z" {
		t.Errorf("unexpected path %s", s)
	}
}

func TestParsePath(t *testing.T) {
	for _, test := range []struct {
		d        string
		expected Path
	}{
		{"M170 260 Q200 285 230 260", Path{MoveTo{170, 260}, QuadTo{{200, 285}, {230, 260}}}},
		{"M0 10 Q100 -2 200 10 T400 10", Path{MoveTo{0, 10}, QuadTo{{100, -2}, {200, 10}}, SmoothQuadTo{400, 10}}},
		{"m10 10 l5 0 h5 v5 z", Path{MoveTo{10, 10}, LineTo{15, 10}, LineTo{20, 10}, LineTo{20, 15}, Close{}}},
		{"M0,0 10,0 10,10Z", Path{MoveTo{0, 0}, LineTo{10, 0}, LineTo{10, 10}, Close{}}},
		{"M0 0 C1 1 2 2 3 3 S5 5 6 6", Path{MoveTo{0, 0}, CubicTo{{1, 1}, {2, 2}, {3, 3}}, CubicTo{{4, 4}, {5, 5}, {6, 6}}}},
		{"M-1.5-2.5L.5.5", Path{MoveTo{-1.5, -2.5}, LineTo{0.5, 0.5}}},
		{"M1e1 0", Path{MoveTo{10, 0}}},
	} {
		got, err := ParsePath(test.d)
		if err != nil {
			t.Fatalf("ParsePath(%q): %s", test.d, err)
		}
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("ParsePath(%q) = %v, expected %v", test.d, got, test.expected)
		}
	}

	for _, d := range []string{"M0 0 X1 1", "M0", "L1 2 3", "Z 4"} {
		if _, err := ParsePath(d); err == nil {
			t.Errorf("expected error for %q", d)
		}
	}
}

func TestParseArc(t *testing.T) {
	p, err := ParsePath("M0 0 A10 10 0 0 1 20 0")
	if err != nil {
		t.Fatal(err)
	}
	last, ok := p[len(p)-1].(CubicTo)
	if !ok {
		t.Fatalf("expected cubic approximation, got %v", p)
	}
	if last[2] != (Point{20, 0}) {
		t.Errorf("arc should end exactly on its end point, got %v", last[2])
	}
}

func TestParseTransform(t *testing.T) {
	m, err := ParseTransform("rotate(-15 200 200)")
	if err != nil {
		t.Fatal(err)
	}
	if x, y := m.Transform(200, 200); math.Abs(x-200) > 1e-9 || math.Abs(y-200) > 1e-9 {
		t.Errorf("rotation center should be fixed, got %v %v", x, y)
	}
	m, err = ParseTransform("translate(325, 15) scale(2)")
	if err != nil {
		t.Fatal(err)
	}
	if x, y := m.Transform(1, 1); x != 327 || y != 17 {
		t.Errorf("unexpected transform result %v %v", x, y)
	}
	for _, v := range []string{"rotate(1 2)", "shear(3)", "translate"} {
		if _, err := ParseTransform(v); err == nil {
			t.Errorf("expected error for %q", v)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in       string
		expected PlainColor
		ok       bool
	}{
		{"#FFF", NewPlainColor(0xff, 0xff, 0xff, 0xff), true},
		{"#0D1B2A", NewPlainColor(0x0d, 0x1b, 0x2a, 0xff), true},
		{"white", NewPlainColor(0xff, 0xff, 0xff, 0xff), true},
		{"rgb(255, 0, 10)", NewPlainColor(0xff, 0, 10, 0xff), true},
		{"none", PlainColor{}, false},
	} {
		got, ok, err := ParseColor(test.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %s", test.in, err)
		}
		if ok != test.ok || got != test.expected {
			t.Errorf("ParseColor(%q) = %v %v", test.in, got, ok)
		}
	}
	var c color.Color = NewPlainColor(0x10, 0x20, 0x30, 0xff)
	if r, g, b, a := c.RGBA(); r != 0x1010 || g != 0x2020 || b != 0x3030 || a != 0xffff {
		t.Errorf("unexpected RGBA %x %x %x %x", r, g, b, a)
	}
	if nrgba := color.NRGBAModel.Convert(NewPlainColor(0xff, 0, 0, 0xff)).(color.NRGBA); nrgba != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Errorf("unexpected conversion %v", nrgba)
	}

	for _, v := range []string{"#12", "#GGGGGG", "notacolor", "rgb(1,2)"} {
		if _, _, err := ParseColor(v); err == nil {
			t.Errorf("expected error for %q", v)
		}
	}
}

func sampleDrawing() *Drawing {
	grad := New("linearGradient").Set("id", "sky").
		Set("x1", "0%").Set("y1", "0%").Set("x2", "0%").Set("y2", "100%").
		Append(
			New("stop").Set("offset", "0%").Set("stop-color", "#87CEEB"),
			New("stop").Set("offset", "100%").Set("stop-color", "#E0F4FF").Set("stop-opacity", "0.5"),
		)
	clip := New("clipPath").Set("id", "head").Append(Ellipse(200, 200, 110, 115))
	return &Drawing{
		Width: 400, Height: 400,
		Defs: []*Element{grad, clip},
		Layers: []Layer{
			{Name: "background", Elements: []*Element{Rect(0, 0, 400, 400).Fill("url(#sky)")}},
			{Name: "empty"},
			{Name: "body", Elements: []*Element{
				Group(Circle(200, 200, 12).Fill("#000").Opacity(0.12)).Set("clip-path", "url(#head)"),
				PathElement(Path{}.MoveTo(170, 260).QuadTo(200, 285, 230, 260)).
					Set("stroke", "#5D2E0C").SetNum("stroke-width", 4).Fill("none"),
			}},
			{Name: "badge", Elements: []*Element{
				Group(Text(32, 15, "RARE").Set("text-anchor", "middle").Fill("#FFF")).
					Set("transform", "translate(325, 15)"),
			}},
		},
	}
}

func TestMarshal(t *testing.T) {
	out, err := sampleDrawing().MarshalSVG()
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.HasPrefix(s, `<svg width="400" height="400" viewBox="0 0 400 400" xmlns="http://www.w3.org/2000/svg">`) {
		t.Errorf("unexpected root: %s", s[:80])
	}
	if strings.Contains(s, `id="empty"`) {
		t.Error("empty layers should be omitted")
	}
	for _, frag := range []string{`<g id="background">`, `d="M170 260 Q200 285 230 260"`, `>RARE</text>`, `<defs>`} {
		if !strings.Contains(s, frag) {
			t.Errorf("missing %s in\n%s", frag, s)
		}
	}
	if strings.Index(s, `id="background"`) > strings.Index(s, `id="body"`) {
		t.Error("layers are out of order")
	}
}

func TestRoundTrip(t *testing.T) {
	first, err := sampleDrawing().MarshalSVG()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(bytes.NewReader(first))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Width != 400 || decoded.Height != 400 {
		t.Errorf("unexpected size %dx%d", decoded.Width, decoded.Height)
	}
	if len(decoded.Layers) != 3 || decoded.Layer("badge") == nil {
		t.Errorf("unexpected layers %v", decoded.Layers)
	}
	if decoded.Def("head") == nil {
		t.Error("missing clip definition")
	}
	second, err := decoded.MarshalSVG()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("round trip mismatch:\n%s\n%s", first, second)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, doc := range []string{"", "<html></html>", "<svg><g></svg>", `<svg width="abc"></svg>`} {
		if _, err := Decode(strings.NewReader(doc)); err == nil {
			t.Errorf("expected error for %q", doc)
		}
	}
}

// recorder is a Driver logging the paint operations it receives.
type recorder struct {
	ops   []string
	texts []TextRun
}

type recordDrawer struct {
	r    *recorder
	kind string
	n    int
}

func (rd *recordDrawer) Clear() {}
func (rd *recordDrawer) Start(a fixed.Point26_6) { rd.n++ }
func (rd *recordDrawer) Line(b fixed.Point26_6) { rd.n++ }
func (rd *recordDrawer) QuadBezier(b, c fixed.Point26_6) { rd.n++ }
func (rd *recordDrawer) CubeBezier(b, c, d fixed.Point26_6) { rd.n++ }
func (rd *recordDrawer) Stop(closeLoop bool) {}
func (rd *recordDrawer) SetWinding(bool) {}
func (rd *recordDrawer) SetStrokeOptions(options StrokeOptions) {}
func (rd *recordDrawer) SetColor(color Pattern, opacity float64) {
	switch color.(type) {
	case Gradient:
		rd.kind += "-gradient"
	}
}
func (rd *recordDrawer) Draw() { rd.r.ops = append(rd.r.ops, rd.kind) }

func (r *recorder) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var (
		f Filler
		s Stroker
	)
	if willFill {
		f = &recordDrawer{r: r, kind: "fill"}
	}
	if willStroke {
		s = &recordDrawer{r: r, kind: "stroke"}
	}
	return f, s
}

func (r *recorder) DrawText(run TextRun) { r.texts = append(r.texts, run) }

func (r *recorder) BeginClip() Filler {
	r.ops = append(r.ops, "begin-clip")
	return &recordDrawer{r: r, kind: "clip"}
}

func (r *recorder) EndClip() { r.ops = append(r.ops, "end-clip") }

func TestDraw(t *testing.T) {
	var r recorder
	if err := sampleDrawing().Draw(&r); err != nil {
		t.Fatal(err)
	}
	expected := []string{"fill-gradient", "begin-clip", "clip", "fill", "end-clip", "stroke"}
	if !reflect.DeepEqual(r.ops, expected) {
		t.Errorf("unexpected paint operations %v", r.ops)
	}
	if len(r.texts) != 1 {
		t.Fatalf("expected one text run, got %d", len(r.texts))
	}
	run := r.texts[0]
	if run.Text != "RARE" || run.Anchor != AnchorMiddle {
		t.Errorf("unexpected text run %v", run)
	}
	if run.Position != toFixedP(357, 30) {
		t.Errorf("text position should be transformed, got %v", run.Position)
	}
}

func TestDrawErrors(t *testing.T) {
	d := &Drawing{Width: 10, Height: 10, Layers: []Layer{
		{Name: "bad", Elements: []*Element{Rect(0, 0, 10, 10).Fill("#XYZ")}},
	}}
	if err := d.Draw(new(recorder)); err == nil {
		t.Error("expected error for invalid fill")
	}
	d.Layers[0].Elements[0] = Rect(0, 0, 10, 10).Fill("url(#missing)")
	var r recorder
	if err := d.Draw(&r); err != nil || len(r.ops) != 0 {
		t.Errorf("dangling reference should paint nothing, got %v %v", r.ops, err)
	}
}
