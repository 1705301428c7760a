// Package dna defines the trait assignment a monkey is rendered from.
//
// A DNA value is produced outside of this module (generation, mutation
// and rarity scoring live elsewhere); this package only models it, checks
// its structure at the boundary and decodes it from YAML or JSON records.
package dna

import (
	"fmt"
	"math"
	"strings"
)

// TraitCategory is one axis of variation.
type TraitCategory uint8

const (
	BodyColor TraitCategory = iota
	FaceExpression
	Accessory
	Pattern
	Background
	Special

	numCategories
)

// Categories lists every category, in canonical order.
var Categories = [numCategories]TraitCategory{
	BodyColor, FaceExpression, Accessory, Pattern, Background, Special,
}

var categoryNames = [numCategories]string{
	BodyColor:      "body_color",
	FaceExpression: "face_expression",
	Accessory:      "accessory",
	Pattern:        "pattern",
	Background:     "background",
	Special:        "special",
}

func (c TraitCategory) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("<unknown TraitCategory %d>", uint8(c))
}

// ParseCategory returns the category named s. The short form
// "expression" is accepted for FaceExpression.
func ParseCategory(s string) (TraitCategory, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "expression" {
		return FaceExpression, true
	}
	for c, name := range categoryNames {
		if name == s {
			return TraitCategory(c), true
		}
	}
	return 0, false
}

// DNA is an immutable trait assignment. The zero value is a valid input
// for rendering: every missing trait falls back to its default visual.
type DNA struct {
	traits      [numCategories]string
	generation  int
	rarity      float64
	fingerprint string
}

// New checks the structure of a trait assignment and returns the
// corresponding DNA. Every category must be present with a non empty
// value; trait values themselves are not checked against the catalog.
func New(traits map[TraitCategory]string, generation int, rarity float64, fingerprint string) (DNA, error) {
	var d DNA
	for c := range traits {
		if c >= numCategories {
			return DNA{}, &ValidationError{Field: c.String(), Err: ErrUnknownCategory}
		}
	}
	for _, c := range Categories {
		v := strings.TrimSpace(traits[c])
		if v == "" {
			return DNA{}, &ValidationError{Field: c.String(), Err: ErrMissingTrait}
		}
		d.traits[c] = v
	}
	if generation < 0 {
		return DNA{}, &ValidationError{Field: "generation", Err: ErrInvalidGeneration}
	}
	if math.IsNaN(rarity) || rarity < 0 || rarity > 100 {
		return DNA{}, &ValidationError{Field: "rarity_score", Err: ErrInvalidRarity}
	}
	d.generation = generation
	d.rarity = rarity
	d.fingerprint = strings.TrimSpace(fingerprint)
	return d, nil
}

// MustNew is like New but panics on error. Intended for tests and
// static fixtures.
func MustNew(traits map[TraitCategory]string, generation int, rarity float64, fingerprint string) DNA {
	d, err := New(traits, generation, rarity, fingerprint)
	if err != nil {
		panic(err)
	}
	return d
}

// Trait returns the value assigned to c, or "" for an unknown category.
func (d DNA) Trait(c TraitCategory) string {
	if c >= numCategories {
		return ""
	}
	return d.traits[c]
}

// Traits returns a copy of the trait assignment.
func (d DNA) Traits() map[TraitCategory]string {
	out := make(map[TraitCategory]string, numCategories)
	for _, c := range Categories {
		out[c] = d.traits[c]
	}
	return out
}

// Generation is the number of forks separating this DNA from its root.
func (d DNA) Generation() int { return d.generation }

// Rarity is the derived rarity score, in [0, 100].
func (d DNA) Rarity() float64 { return d.rarity }

// Fingerprint is the stable hash of the trait assignment. It may be empty.
func (d DNA) Fingerprint() string { return d.fingerprint }

func (d DNA) String() string {
	var sb strings.Builder
	sb.WriteString("DNA{")
	for i, c := range Categories {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%s", c, d.traits[c])
	}
	fmt.Fprintf(&sb, " gen:%d rarity:%g}", d.generation, d.rarity)
	return sb.String()
}
