package svgpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/forkmonkey/dna"
	"github.com/benoitkugler/forkmonkey/monkey"
	"github.com/benoitkugler/forkmonkey/svgscene"
)

func TestRenderToFile(t *testing.T) {
	d := dna.MustNew(map[dna.TraitCategory]string{
		dna.BodyColor:      "rainbow",
		dna.FaceExpression: "legendary",
		dna.Accessory:      "golden_crown",
		dna.Pattern:        "swirls",
		dna.Background:     "sunset",
		dna.Special:        "mythical",
	}, 7, 91, "c0ffee00")

	name := filepath.Join(t.TempDir(), "monkey.pdf")
	if err := RenderToFile(monkey.Render(d, 400, 400), name); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF-")) {
		t.Errorf("unexpected header %q", content[:min(len(content), 8)])
	}
	if !bytes.Contains(content, []byte("/Page")) {
		t.Error("expected a page object")
	}
}

func TestRenderEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty.pdf")
	if err := RenderToFile(&svgscene.Drawing{}, name); err == nil {
		t.Error("expected an error for an empty drawing")
	}
}
