package monkey

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/benoitkugler/forkmonkey/catalog"
	"github.com/benoitkugler/forkmonkey/dna"
	"github.com/benoitkugler/forkmonkey/svgscene"
	"golang.org/x/image/math/fixed"
)

func newDNA(body, expr, acc, pattern, bg, sp string, gen int, rarity float64, fp string) dna.DNA {
	return dna.MustNew(map[dna.TraitCategory]string{
		dna.BodyColor:      body,
		dna.FaceExpression: expr,
		dna.Accessory:      acc,
		dna.Pattern:        pattern,
		dna.Background:     bg,
		dna.Special:        sp,
	}, gen, rarity, fp)
}

func exampleDNA() dna.DNA {
	return newDNA("blue", "happy", "sunglasses", "stripes", "space", "glow", 3, 72, "")
}

func render(t *testing.T, d dna.DNA, w, h int) string {
	t.Helper()
	b, err := RenderSVG(d, w, h)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestDeterminism(t *testing.T) {
	d := newDNA("galaxy", "winking", "crown", "spots", "city", "particles", 12, 55.5, "a3f29c01deadbeef")
	ref := render(t, d, 400, 400)
	if ref != render(t, d, 400, 400) {
		t.Fatal("two renderings of the same DNA differ")
	}

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, _ := RenderSVG(d, 400, 400)
			results[i] = string(b)
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		if r != ref {
			t.Errorf("concurrent rendering %d differs", i)
		}
	}
}

func TestFallbackSafety(t *testing.T) {
	unknown := newDNA("chartreuse", "grumpy", "top_hat", "plaid", "mars", "lasers", 0, 10, "zz")
	defaults := newDNA("brown", "neutral", "none", "none", "white", "none", 0, 10, "zz")
	if render(t, unknown, 400, 400) != render(t, defaults, 400, 400) {
		t.Error("unknown trait values should render as the category defaults")
	}

	dr := Render(dna.DNA{}, 400, 400)
	if len(dr.Layers) != len(LayerOrder) {
		t.Fatalf("expected %d layers, got %d", len(LayerOrder), len(dr.Layers))
	}
	for _, name := range []string{LayerSpecialBack, LayerAccessory, LayerSpecialFront} {
		if l := dr.Layer(name); len(l.Elements) != 0 {
			t.Errorf("layer %s should be empty for the zero DNA", name)
		}
	}
	if bg := dr.Layer(LayerBackground).Elements; len(bg) != 1 {
		t.Errorf("expected a single background rect, got %d elements", len(bg))
	} else if fill, _ := bg[0].Get("fill"); fill != "#F8F9FA" {
		t.Errorf("unexpected default background %s", fill)
	}
}

func TestUnknownTraitLogged(t *testing.T) {
	var buf bytes.Buffer
	svgscene.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer svgscene.SetLogger(nil)

	render(t, newDNA("plaid", "happy", "sunglasses", "stripes", "space", "glow", 3, 72, ""), 200, 200)
	if out := buf.String(); !strings.Contains(out, "value=plaid") || !strings.Contains(out, "category=body_color") {
		t.Errorf("unknown trait not logged: %q", out)
	}

	buf.Reset()
	render(t, exampleDNA(), 200, 200)
	if strings.Contains(buf.String(), "unknown trait") {
		t.Errorf("known traits should not be logged: %q", buf.String())
	}
}

func TestLayerOrder(t *testing.T) {
	dr := Render(newDNA("golden", "cosmic", "halo", "nebula", "aurora", "godlike", 1, 90, ""), 400, 400)
	for i, name := range LayerOrder {
		if dr.Layers[i].Name != name {
			t.Errorf("layer %d: expected %s, got %s", i, name, dr.Layers[i].Name)
		}
		if len(dr.Layers[i].Elements) == 0 {
			t.Errorf("layer %s should not be empty", name)
		}
	}

	out := render(t, newDNA("golden", "cosmic", "halo", "nebula", "aurora", "godlike", 1, 90, ""), 400, 400)
	last := strings.Index(out, "</defs>")
	if last < 0 {
		t.Fatal("missing definitions")
	}
	for _, name := range LayerOrder {
		i := strings.Index(out, `<g id="`+name+`">`)
		if i < last {
			t.Fatalf("layer %s is out of order", name)
		}
		last = i
	}
}

func TestCanvasSizing(t *testing.T) {
	d := exampleDNA()
	for _, size := range [][2]int{{400, 400}, {100, 100}, {640, 480}} {
		dr := Render(d, size[0], size[1])
		if dr.Width != size[0] || dr.Height != size[1] {
			t.Errorf("expected %v, got %dx%d", size, dr.Width, dr.Height)
		}
	}

	thumb, err := RenderThumbnail(d, 100).MarshalSVG()
	if err != nil {
		t.Fatal(err)
	}
	if string(thumb) != render(t, d, 100, 100) {
		t.Error("thumbnail should equal a square rendering")
	}
	if !bytes.HasPrefix(thumb, []byte(`<svg width="100" height="100" viewBox="0 0 100 100"`)) {
		t.Errorf("unexpected root %s", thumb[:80])
	}

	if dr := Render(d, 0, -5); dr.Width != 1 || dr.Height != 1 {
		t.Errorf("non positive sizes should be clamped, got %dx%d", dr.Width, dr.Height)
	}
}

func clipGroups(l *svgscene.Layer) []*svgscene.Element {
	var out []*svgscene.Element
	for _, e := range l.Elements {
		if v, _ := e.Get("clip-path"); v == "url(#head-clip)" {
			out = append(out, e)
		}
	}
	return out
}

func TestPatternClipping(t *testing.T) {
	for _, pattern := range catalog.Values(dna.Pattern) {
		dr := Render(newDNA("tan", "happy", "none", pattern, "white", "none", 0, 0, ""), 400, 400)
		groups := clipGroups(dr.Layer(LayerBody))
		switch pattern {
		case "solid", "none":
			if len(groups) != 0 {
				t.Errorf("%s: no overlay expected", pattern)
			}
		default:
			if len(groups) != 1 || len(groups[0].Children) == 0 {
				t.Errorf("%s: expected one clipped overlay", pattern)
			}
		}
	}

	dr := Render(newDNA("tan", "happy", "none", "plaid", "white", "none", 0, 0, ""), 400, 400)
	if len(clipGroups(dr.Layer(LayerBody))) != 0 {
		t.Error("unknown pattern should not draw an overlay")
	}

	clip := Render(dna.DNA{}, 300, 200).Def("head-clip")
	if clip == nil || len(clip.Children) != 1 {
		t.Fatal("missing head clip")
	}
	cx, _ := clip.Children[0].Get("cx")
	cy, _ := clip.Children[0].Get("cy")
	if cx != "150" || cy != "100" {
		t.Errorf("head clip should be centered, got (%s, %s)", cx, cy)
	}
}

func TestRarityTier(t *testing.T) {
	for _, test := range []struct {
		score float64
		label string
		color string
	}{
		{100, "LEGENDARY", "#FFD700"},
		{85, "LEGENDARY", "#FFD700"},
		{80, "LEGENDARY", "#FFD700"},
		{79.99, "RARE", "#9370DB"},
		{65, "RARE", "#9370DB"},
		{60, "RARE", "#9370DB"},
		{45, "UNCOMMON", "#4ECDC4"},
		{40, "UNCOMMON", "#4ECDC4"},
		{39.9, "COMMON", "#A0A0A0"},
		{10, "COMMON", "#A0A0A0"},
		{0, "COMMON", "#A0A0A0"},
		{math.NaN(), "COMMON", "#A0A0A0"},
	} {
		tier := RarityTier(test.score)
		if tier.Label != test.label || tier.Color != test.color {
			t.Errorf("score %g: expected %s %s, got %v", test.score, test.label, test.color, tier)
		}
	}
}

func TestSeedPlacement(t *testing.T) {
	stars := func(fp string) []*svgscene.Element {
		d := newDNA("brown", "happy", "none", "none", "space", "none", 0, 0, fp)
		return Render(d, 400, 400).Layer(LayerBackground).Elements[1:]
	}
	for _, test := range []struct {
		fingerprint string
		cx, cy      string
	}{
		{"00000001ffff", "7", "13"},
		{"", "15", "85"},        // fallback seed 12345
		{"not-hex!", "15", "85"}, // fallback seed 12345
	} {
		s := stars(test.fingerprint)
		if len(s) != 40 {
			t.Fatalf("expected 40 stars, got %d", len(s))
		}
		cx, _ := s[0].Get("cx")
		cy, _ := s[0].Get("cy")
		if cx != test.cx || cy != test.cy {
			t.Errorf("%q: expected first star at (%s, %s), got (%s, %s)", test.fingerprint, test.cx, test.cy, cx, cy)
		}
	}
}

func TestEndToEnd(t *testing.T) {
	out := render(t, exampleDNA(), 400, 400)
	for _, want := range []string{
		`<rect width="400" height="400" fill="#0D1B2A"></rect>`, // space scene
		`<ellipse cx="200" cy="200" rx="110" ry="115" fill="#4169E1" filter="url(#shadow)">`, // blue head
		`<g clip-path="url(#head-clip)">`,
		`transform="rotate(-15 200 200)"`, // stripes
		`<circle cx="162" cy="185" r="12" fill="#3D2314">`, // open eyes
		`d="M170 260 Q200 285 230 260" stroke="#5D2E0C" stroke-width="4" fill="none"`, // happy mouth
		`<rect x="142" y="175" width="38" height="28" rx="4" fill="#000" opacity="0.85">`,
		`<circle cx="200" cy="200" r="135" fill="none" stroke="#FFD700" stroke-width="6" opacity="0.25">`,
		`font-weight="bold">RARE</text>`,
		`>Gen 3</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s", want)
		}
	}

	dr := Render(exampleDNA(), 400, 400)
	if n := len(dr.Layer(LayerBackground).Elements); n != 41 {
		t.Errorf("expected the base rect and 40 stars, got %d elements", n)
	}
	if n := len(clipGroups(dr.Layer(LayerBody))[0].Children); n != 6 {
		t.Errorf("expected 6 stripes, got %d", n)
	}
	if n := len(dr.Layer(LayerSpecialBack).Elements); n != 0 {
		t.Errorf("glow has no back effect, got %d elements", n)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	out := render(t, exampleDNA(), 400, 400)
	dr, err := svgscene.Decode(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	back, err := dr.MarshalSVG()
	if err != nil {
		t.Fatal(err)
	}
	if string(back) != out {
		t.Error("decoding then encoding a rendering should be lossless")
	}
}

type nopDrawer struct{ paths int }

func (*nopDrawer) Clear()                                  {}
func (*nopDrawer) Start(fixed.Point26_6)                   {}
func (*nopDrawer) Line(fixed.Point26_6)                    {}
func (*nopDrawer) QuadBezier(_, _ fixed.Point26_6)         {}
func (*nopDrawer) CubeBezier(_, _, _ fixed.Point26_6)      {}
func (*nopDrawer) Stop(bool)                               {}
func (*nopDrawer) SetColor(svgscene.Pattern, float64)      {}
func (d *nopDrawer) Draw()                                 { d.paths++ }
func (*nopDrawer) SetWinding(bool)                         {}
func (*nopDrawer) SetStrokeOptions(svgscene.StrokeOptions) {}
func (d *nopDrawer) SetupDrawers(fill, stroke bool) (svgscene.Filler, svgscene.Stroker) {
	var (
		f svgscene.Filler
		s svgscene.Stroker
	)
	if fill {
		f = d
	}
	if stroke {
		s = d
	}
	return f, s
}

// Every known trait value must produce a paintable drawing.
func TestRenderPaintable(t *testing.T) {
	for _, cat := range dna.Categories {
		for _, v := range catalog.Values(cat) {
			traits := exampleDNA().Traits()
			traits[cat] = v
			d := dna.MustNew(traits, 1, 50, "0badc0de")
			var nd nopDrawer
			if err := Render(d, 400, 400).Draw(&nd); err != nil {
				t.Errorf("%s=%s: %s", cat, v, err)
			}
			if nd.paths == 0 {
				t.Errorf("%s=%s: nothing painted", cat, v)
			}
		}
	}
}
