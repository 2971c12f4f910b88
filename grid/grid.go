package grid

// Grid is the concrete immutable Structure carrier: uniform coordinate axes
// plus a refractive-index sample per grid point, indexed [iy][ix].
// It deep-copies all inputs on construction.
type Grid struct {
	xc, yc []float64
	n      [][]float64 // n[iy][ix]
	xStep  float64
	yStep  float64
	maxN   float64
}

// Compile-time conformance check.
var _ Structure = (*Grid)(nil)

// New constructs a Grid from coordinate axes and a refractive-index sample.
// n must be rectangular with len(n) == len(yc) rows of len(xc) columns.
// Inputs are deep-copied to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrShapeMismatch or ErrNonMonotonic.
// Complexity: O(NX×NY) time and memory.
func New(xc, yc []float64, n [][]float64) (*Grid, error) {
	if len(xc) == 0 || len(yc) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(n) != len(yc) {
		return nil, ErrShapeMismatch
	}
	for _, row := range n {
		if len(row) != len(xc) {
			if len(row) != len(n[0]) {
				return nil, ErrNonRectangular
			}

			return nil, ErrShapeMismatch
		}
	}
	for i := 1; i < len(xc); i++ {
		if xc[i] <= xc[i-1] {
			return nil, ErrNonMonotonic
		}
	}
	for i := 1; i < len(yc); i++ {
		if yc[i] <= yc[i-1] {
			return nil, ErrNonMonotonic
		}
	}

	// Deep copy to prevent external mutation.
	g := &Grid{
		xc: append([]float64(nil), xc...),
		yc: append([]float64(nil), yc...),
		n:  make([][]float64, len(yc)),
	}
	for iy := range n {
		g.n[iy] = append([]float64(nil), n[iy]...)
		for _, v := range n[iy] {
			if v > g.maxN {
				g.maxN = v
			}
		}
	}
	if len(xc) > 1 {
		g.xStep = xc[1] - xc[0]
	}
	if len(yc) > 1 {
		g.yStep = yc[1] - yc[0]
	}

	return g, nil
}

// XC returns the x coordinate axis. The returned slice must not be mutated.
func (g *Grid) XC() []float64 { return g.xc }

// YC returns the y coordinate axis. The returned slice must not be mutated.
func (g *Grid) YC() []float64 { return g.yc }

// NX returns the number of grid points along x. Complexity: O(1).
func (g *Grid) NX() int { return len(g.xc) }

// NY returns the number of grid points along y. Complexity: O(1).
func (g *Grid) NY() int { return len(g.yc) }

// XStep returns the uniform grid step along x. Complexity: O(1).
func (g *Grid) XStep() float64 { return g.xStep }

// YStep returns the uniform grid step along y. Complexity: O(1).
func (g *Grid) YStep() float64 { return g.yStep }

// Bounds returns the window extents (xmin, xmax, ymin, ymax). Complexity: O(1).
func (g *Grid) Bounds() (xmin, xmax, ymin, ymax float64) {
	return g.xc[0], g.xc[len(g.xc)-1], g.yc[0], g.yc[len(g.yc)-1]
}

// Index returns the refractive index at grid point (ix, iy). Complexity: O(1).
func (g *Grid) Index(ix, iy int) float64 { return g.n[iy][ix] }

// MaxIndex returns the largest refractive index on the grid. Complexity: O(1).
func (g *Grid) MaxIndex() float64 { return g.maxN }

// FlatIndex maps (ix, iy) to a row-major index: iy*NX + ix. Complexity: O(1).
func (g *Grid) FlatIndex(ix, iy int) int { return iy*len(g.xc) + ix }

// Coordinate converts a row-major index back to (ix, iy). Complexity: O(1).
func (g *Grid) Coordinate(idx int) (ix, iy int) {
	return idx % len(g.xc), idx / len(g.xc)
}
