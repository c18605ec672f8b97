package vrh

import (
	"fmt"

	"github.com/matmodlab/goelastic/tensor"
	"github.com/matmodlab/goelastic/utils"
)

// zeroTol decides whether the out-of-plane block of a 6x6 matrix is
// identically zero, marking an embedded 2D material.
const zeroTol = 1e-12

// Stability reports the Born criterion: stable iff every eigenvalue of
// the (possibly 2D-reduced) stiffness matrix has a strictly positive
// real part.
type Stability struct {
	Stable        bool
	Eigenvalues   []float64 // real parts, ascending
	MinEigenvalue float64
	TwoD          bool // input was reduced to its in-plane block
	Message       string
}

// CheckStability validates the matrix shape, auto-detects a 2D
// material embedded in a 6x6 (rows/cols 2..4 all zero) and reduces it
// to the {0,1,5} block, then tests the eigenvalue criterion. Shape
// violations are errors, not a silent false.
func CheckStability(C utils.Matrix) (st Stability, err error) {
	nr, nc := C.Dims()
	if nr != nc {
		err = fmt.Errorf("matrix is not square: %dx%d", nr, nc)
		return
	}
	switch nr {
	case 6:
		if tensor.Embedded2D(C, zeroTol) {
			C = C.Subset(tensor.PlaneIndex)
			st.TwoD = true
		}
	case 3:
		st.TwoD = true
	default:
		err = fmt.Errorf("matrix must be 3x3 or 6x6, got %dx%d", nr, nc)
		return
	}
	st.Eigenvalues = C.Eigenvalues()
	st.MinEigenvalue = st.Eigenvalues[0]

	nonPositive := 0
	for _, ev := range st.Eigenvalues {
		if ev <= 0 {
			nonPositive++
		}
	}
	suffix := ""
	if st.TwoD {
		suffix = " (2D)"
	}
	if nonPositive == 0 {
		st.Stable = true
		st.Message = "Structure is mechanically STABLE" + suffix
	} else {
		st.Message = fmt.Sprintf("Structure is UNSTABLE%s (%d non-positive eigenvalue(s))",
			suffix, nonPositive)
	}
	return
}

func (st Stability) Print() {
	fmt.Printf("%s\n", st.Message)
	fmt.Printf("%10.4f\t= minimum eigenvalue (GPa)\n", st.MinEigenvalue)
	fmt.Printf("eigenvalues = %v\n", st.Eigenvalues)
}
