package catalog

import (
	"strings"
	"testing"

	"github.com/benoitkugler/forkmonkey/dna"
)

func TestBodyColorFallback(t *testing.T) {
	c, ok := LookupBodyColor("blue")
	if !ok || c.Main != "#4169E1" {
		t.Errorf("unexpected blue palette %v", c)
	}
	for _, id := range []string{"", "chartreuse", "BLUE"} {
		c, ok := LookupBodyColor(id)
		if ok {
			t.Errorf("%q should not be known", id)
		}
		if c != BodyColorOf(DefaultBodyColor) {
			t.Errorf("%q should fall back to brown, got %v", id, c)
		}
	}
}

func TestBackgroundFallback(t *testing.T) {
	b := BackgroundOf("space")
	if b.Kind != Scene || b.Elements != Stars || b.Color != "#0D1B2A" {
		t.Errorf("unexpected space background %v", b)
	}
	b, ok := LookupBackground("mars")
	if ok || b.Kind != Solid || b.Color != "#F8F9FA" {
		t.Errorf("unexpected fallback %v", b)
	}
}

func TestGradientReferencesResolve(t *testing.T) {
	for _, id := range Values(dna.BodyColor) {
		main := BodyColorOf(id).Main
		if strings.HasPrefix(main, "url(#") {
			ref := strings.TrimSuffix(strings.TrimPrefix(main, "url(#"), ")")
			if _, ok := LookupGradient(ref); !ok {
				t.Errorf("body color %s references unknown gradient %s", id, ref)
			}
		}
	}
	for _, id := range Values(dna.Background) {
		b := BackgroundOf(id)
		switch b.Kind {
		case Gradient:
			if _, ok := LookupGradient(b.GradientID); !ok {
				t.Errorf("background %s references unknown gradient %s", id, b.GradientID)
			}
		case Scene:
			if b.Elements == "" || b.Color == "" {
				t.Errorf("scene background %s is incomplete", id)
			}
		}
	}
}

func TestGradientIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range Gradients {
		if seen[g.ID] {
			t.Errorf("duplicate gradient %s", g.ID)
		}
		seen[g.ID] = true
		if len(g.Stops) < 2 {
			t.Errorf("gradient %s has too few stops", g.ID)
		}
	}
}

func TestValues(t *testing.T) {
	for _, c := range dna.Categories {
		vs := Values(c)
		if len(vs) == 0 {
			t.Errorf("no values for %s", c)
		}
		vs[0] = "mutated"
		if Values(c)[0] == "mutated" {
			t.Errorf("Values(%s) exposes internal storage", c)
		}
	}
	if !Known(dna.Pattern, "cosmic_dust") || Known(dna.Pattern, "plaid") {
		t.Error("unexpected Known result")
	}
	if Values(dna.TraitCategory(99)) != nil {
		t.Error("unknown category should have no values")
	}
	if Known(dna.TraitCategory(99), "blue") {
		t.Error("unknown category should know no value")
	}
}

func TestKnownDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		for _, c := range dna.Categories {
			Known(c, "blue")
		}
	})
	if allocs != 0 {
		t.Errorf("expected no allocation, got %v", allocs)
	}
}
