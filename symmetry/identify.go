package symmetry

import (
	"fmt"

	"github.com/matmodlab/goelastic/utils"
)

// DefaultTolerance is the absolute and relative tolerance used when
// comparing a candidate reconstruction against the input matrix.
const DefaultTolerance = 1e-6

// Identify finds the most symmetric class consistent with C. The
// candidates are probed in ascending order of independent-constant
// count: only the entries at a candidate's independent positions are
// copied into a sparse probe matrix, the candidate's completion rules
// reconstruct its ideal full matrix, and the first reconstruction that
// matches C within tol wins. A 6x6 input is classified against the 3D
// classes, a 3x3 input against the 2D classes; Triclinic and Oblique
// always match, so the search cannot exhaust.
func Identify(C utils.Matrix, tol float64) (Class, error) {
	nr, nc := C.Dims()
	if nr != nc {
		return Triclinic, fmt.Errorf("matrix is not square: %dx%d", nr, nc)
	}
	var order []Class
	switch nr {
	case 6:
		order = Order3D()
	case 3:
		order = Order2D()
	default:
		return Triclinic, fmt.Errorf("matrix must be 3x3 or 6x6, got %dx%d", nr, nc)
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	for _, c := range order {
		probe := utils.NewMatrix(nr, nc)
		for _, pos := range c.Independent() {
			val := C.At(pos.I, pos.J)
			probe.Set(pos.I, pos.J, val)
			probe.Set(pos.J, pos.I, val)
		}
		ideal, err := c.Complete(probe)
		if err != nil {
			return Triclinic, err
		}
		if C.InDelta(ideal, tol, tol) {
			return c, nil
		}
	}
	// Reached only for an asymmetric input; the least restrictive
	// class is still the honest answer.
	return order[len(order)-1], nil
}
