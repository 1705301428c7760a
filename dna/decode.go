package dna

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// record is the on-disk shape of a DNA. JSON documents are valid YAML,
// so both formats go through the same decoder.
type record struct {
	Traits      map[string]string `yaml:"traits"`
	Generation  int               `yaml:"generation"`
	Rarity      float64           `yaml:"rarity_score"`
	Fingerprint string            `yaml:"dna_hash"`
}

// Decode reads one DNA record from r.
func Decode(r io.Reader) (DNA, error) {
	var rec record
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return DNA{}, errors.New("dna: empty document")
		}
		return DNA{}, fmt.Errorf("dna: decoding record: %w", err)
	}
	traits := make(map[TraitCategory]string, len(rec.Traits))
	for name, value := range rec.Traits {
		c, ok := ParseCategory(name)
		if !ok {
			return DNA{}, &ValidationError{Field: name, Err: ErrUnknownCategory}
		}
		traits[c] = value
	}
	return New(traits, rec.Generation, rec.Rarity, rec.Fingerprint)
}

// Load reads the DNA record stored in the named file.
func Load(path string) (DNA, error) {
	f, err := os.Open(path)
	if err != nil {
		return DNA{}, err
	}
	defer f.Close()
	d, err := Decode(f)
	if err != nil {
		return DNA{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
