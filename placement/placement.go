// Package placement derives a deterministic seed from a DNA fingerprint
// and positions decorative elements from it.
//
// There is no generator state: every position is recomputed from the
// seed, the element index and fixed multipliers, so that any layer can be
// rendered again in isolation and yield the same output.
package placement

import "strconv"

// Seed drives the placement formulas.
type Seed uint32

// FallbackSeed is used when no usable fingerprint is available.
const FallbackSeed Seed = 12345

// seedDigits is the number of leading hex characters read from a fingerprint.
const seedDigits = 8

// FromFingerprint returns the integer value of the first eight hex
// characters of fp (or all of them, if fp is shorter).
// An empty or non hexadecimal prefix yields FallbackSeed.
func FromFingerprint(fp string) Seed {
	if len(fp) > seedDigits {
		fp = fp[:seedDigits]
	}
	if fp == "" {
		return FallbackSeed
	}
	v, err := strconv.ParseUint(fp, 16, 32)
	if err != nil {
		return FallbackSeed
	}
	return Seed(v)
}

// Scalar returns (s * n * multiplier) mod bound. The modulo follows the
// floor convention: a non zero result has the sign of bound.
// A zero bound yields 0.
func (s Seed) Scalar(n, multiplier, bound int) int {
	return floorMod(int64(s)*int64(n)*int64(multiplier), int64(bound))
}

// Offset maps Scalar into [-span/2, span/2), which is how patterns scatter
// elements around a center point.
func (s Seed) Offset(n, multiplier, span int) int {
	return s.Scalar(n, multiplier, span) - span/2
}

// Point returns the (x, y) position of element n, using one multiplier and
// one bound per axis.
func (s Seed) Point(n, mx, my, bx, by int) (x, y int) {
	return s.Scalar(n, mx, bx), s.Scalar(n, my, by)
}

// Add returns (s + k) mod bound, used by grids where each cell must get
// its own value from a shared seed.
func (s Seed) Add(k, bound int) int {
	return floorMod(int64(s)+int64(k), int64(bound))
}

func floorMod(a, b int64) int {
	if b == 0 {
		return 0
	}
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return int(m)
}
