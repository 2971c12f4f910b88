package solver

// Formulation selects the discretization: one dominant transverse component
// (semi-vectorial) or the coupled transverse system (fully-vectorial).
type Formulation int

const (
	// SemiVectorialEx solves for a single x-polarized field component.
	SemiVectorialEx Formulation = iota
	// SemiVectorialEy solves for a single y-polarized field component.
	SemiVectorialEy
	// FullyVectorial solves the coupled (Ex, Ey) system and derives the
	// remaining four components from the discretized Maxwell relations.
	FullyVectorial
)

// String implements fmt.Stringer.
func (f Formulation) String() string {
	switch f {
	case SemiVectorialEx:
		return "semi-vectorial(Ex)"
	case SemiVectorialEy:
		return "semi-vectorial(Ey)"
	case FullyVectorial:
		return "fully-vectorial"
	default:
		return "unknown"
	}
}

// DominantComponent returns the field name carried by the eigenvector for
// semi-vectorial formulations; FullyVectorial returns FieldEx (the leading
// block of the coupled solution).
func (f Formulation) DominantComponent() string {
	if f == SemiVectorialEy {
		return FieldEy
	}

	return FieldEx
}

// Field component names. FieldOrder fixes the reporting order used by
// overlaps and mode persistence; it must not be reordered (the classifier's
// 3-way label mapping is positional).
const (
	FieldEx = "Ex"
	FieldEy = "Ey"
	FieldEz = "Ez"
	FieldHx = "Hx"
	FieldHy = "Hy"
	FieldHz = "Hz"
)

// FieldOrder lists all six components: E-triplet first, then H-triplet.
var FieldOrder = [6]string{FieldEx, FieldEy, FieldEz, FieldHx, FieldHy, FieldHz}

// Mode is one solved eigenpair: a complex effective index plus one 2D complex
// field array per component, each matching the grid shape [NY][NX].
// Immutable once returned.
type Mode struct {
	NEff   complex128
	Fields map[string][][]complex128
}

// ModeSet is the ordered eigenpair sequence for one (structure, wavelength)
// solve: descending real effective index, fundamental mode first.
type ModeSet []Mode

// Overlap holds per-component energy fractions for one mode in FieldOrder;
// the E-triplet and the H-triplet each sum to 100.
type Overlap []float64

// Polarization labels, positional over the E-triplet argmax:
// 0 → qTE (x-dominant), 1 → qTM (y-dominant), 2 → mixed.
const (
	LabelQTE    = "qTE"
	LabelQTM    = "qTM"
	LabelHybrid = "qTE/qTM"
)

// ModeType is a mode's polarization label plus the winning energy fraction
// (percent, rounded to 2 decimal digits).
type ModeType struct {
	Label    string
	Fraction float64
}

// Guess biases the eigensolver toward the physically expected solution.
// NEff (when > 0) fixes the spectral target directly; Field (when non-nil)
// is a grid-shaped magnitude array used both as the iteration start vector
// and, absent NEff, to derive the target. The zero value means "no bias":
// the target falls back to the grid's maximum refractive index.
type Guess struct {
	NEff  float64
	Field [][]float64
}

// Result is the immutable outcome of one single-point solve.
type Result struct {
	// NEffs are the effective indices, descending real part.
	NEffs []complex128
	// Modes carries the reconstructed field profiles, same order as NEffs.
	Modes ModeSet
	// Overlaps and Types are populated by the fully-vectorial formulation.
	Overlaps []Overlap
	Types    []ModeType
	// FundamentalMagnitude is a standalone copy of |fundamental field|,
	// suitable as the next warm-start guess. Kept separate so Modes retains
	// the original complex values for every consumer.
	FundamentalMagnitude [][]float64
	// Iterations is the total inverse-iteration count spent by the
	// eigensolver; warm starts shrink it without moving the eigenvalues.
	Iterations int
}
