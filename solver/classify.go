package solver

import (
	"math"
	"math/cmplx"
)

// tripletTotal is the normalization target for each field triplet.
const tripletTotal = 100.0

// energy sums |field|² over the grid (map-reduce per component; the input
// array is never mutated).
func energy(f [][]complex128) float64 {
	var sum float64
	for _, row := range f {
		for _, v := range row {
			a := cmplx.Abs(v)
			sum += a * a
		}
	}

	return sum
}

// overlapOf computes the per-component energy fractions of one mode in
// FieldOrder, normalizing the E-triplet and the H-triplet independently so
// each sums to 100. Missing components count as zero energy.
func overlapOf(m Mode) Overlap {
	raw := make(Overlap, len(FieldOrder))
	for i, name := range FieldOrder {
		if f, ok := m.Fields[name]; ok {
			raw[i] = energy(f)
		}
	}
	normalizeTriplet(raw[0:3])
	normalizeTriplet(raw[3:6])

	return raw
}

func normalizeTriplet(t []float64) {
	total := t[0] + t[1] + t[2]
	if total == 0 {
		return
	}
	for i := range t {
		t[i] *= tripletTotal / total
	}
}

// classify derives the overlap vector and polarization label for each mode.
// The label is positional over the E-triplet argmax — 0 → qTE, 1 → qTM,
// 2 → qTE/qTM — and this mapping is fixed. The reported fraction is the
// winning percentage rounded to 2 decimal digits.
// Complexity: O(modes × NX×NY).
func classify(modes ModeSet) ([]Overlap, []ModeType) {
	var (
		overlaps = make([]Overlap, len(modes))
		types    = make([]ModeType, len(modes))
		labels   = [3]string{LabelQTE, LabelQTM, LabelHybrid}
	)
	for i, m := range modes {
		ov := overlapOf(m)
		overlaps[i] = ov

		best := 0
		for j := 1; j < 3; j++ {
			if ov[j] > ov[best] {
				best = j
			}
		}
		types[i] = ModeType{
			Label:    labels[best],
			Fraction: math.Round(ov[best]*100) / 100,
		}
	}

	return overlaps, types
}
