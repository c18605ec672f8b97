// Package tensor holds the index bookkeeping between Voigt 6x6
// notation, full rank-4 tensor notation, and direction/angle
// representations of points on the unit sphere.
package tensor

import (
	"fmt"
	"math"

	"github.com/matmodlab/goelastic/utils"
)

// Radius floor for degenerate (zero-length) directions.
const DirEps = 1e-10

// PlaneIndex selects the in-plane components (11, 22, 66) of a 6x6
// stiffness matrix.
var PlaneIndex = utils.Index{0, 1, 5}

// voigtPairs maps Voigt index 0..5 to its tensor index pair.
var voigtPairs = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}}

// DirectionToAngles converts a Cartesian direction to spherical angles,
// theta in [0, pi] from +z and phi in [0, 2*pi) from +x. A zero-length
// input gets its radius clamped to DirEps instead of failing; on-axis
// directions (rxy ~ 0) report phi = 0.
func DirectionToAngles(x, y, z float64) (theta, phi float64) {
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		r = DirEps
	}
	theta = math.Acos(z / r)
	rxy := math.Sqrt(x*x + y*y)
	if rxy > DirEps {
		phi = math.Acos(utils.Clamp(x/rxy, -1, 1))
		if y < 0 {
			phi = 2*math.Pi - phi
		}
	}
	return
}

// AnglesToDirection is the inverse of DirectionToAngles away from the
// poles.
func AnglesToDirection(theta, phi float64) (x, y, z float64) {
	x = math.Sin(theta) * math.Cos(phi)
	y = math.Sin(theta) * math.Sin(phi)
	z = math.Cos(theta)
	return
}

// Rank4 is a compliance tensor in full index notation, S_ijkl.
type Rank4 [3][3][3][3]float64

// VoigtToTensor expands a 6x6 Voigt compliance matrix to rank-4 tensor
// notation. Each Voigt entry is divided by 2 for every shear index
// (Voigt index >= 3) it involves, then broadcast to all index
// permutations allowed by minor symmetry. This is the standard
// engineering-to-tensor strain conversion; every shear-dependent
// quantity downstream relies on these factors.
func VoigtToTensor(S utils.Matrix) (T Rank4, err error) {
	if nr, nc := S.Dims(); nr != 6 || nc != 6 {
		err = fmt.Errorf("compliance matrix must be 6x6, got %dx%d", nr, nc)
		return
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			factor := 1.0
			if i >= 3 {
				factor *= 2
			}
			if j >= 3 {
				factor *= 2
			}
			val := S.At(i, j) / factor
			u, v := voigtPairs[i][0], voigtPairs[i][1]
			x, y := voigtPairs[j][0], voigtPairs[j][1]
			T[u][v][x][y] = val
			T[v][u][x][y] = val
			T[u][v][y][x] = val
			T[v][u][y][x] = val
		}
	}
	return
}

// BondMatrix builds the 6x6 stress transformation matrix for a 3x3
// rotation R, following the classical Bond construction.
func BondMatrix(R utils.Matrix) (M utils.Matrix) {
	M = utils.NewMatrix(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M.Set(i, j, R.At(i, j)*R.At(i, j))
		}
	}
	// Upper right block: 2 * products within a row of R
	for i := 0; i < 3; i++ {
		M.Set(i, 3, 2*R.At(i, 1)*R.At(i, 2))
		M.Set(i, 4, 2*R.At(i, 0)*R.At(i, 2))
		M.Set(i, 5, 2*R.At(i, 0)*R.At(i, 1))
	}
	// Lower left and lower right blocks: products across row pairs
	rowPairs := [3][2]int{{1, 2}, {0, 2}, {0, 1}}
	for bi, p := range rowPairs {
		a, b := p[0], p[1]
		for j := 0; j < 3; j++ {
			M.Set(3+bi, j, R.At(a, j)*R.At(b, j))
		}
		M.Set(3+bi, 3, R.At(a, 1)*R.At(b, 2)+R.At(a, 2)*R.At(b, 1))
		M.Set(3+bi, 4, R.At(a, 0)*R.At(b, 2)+R.At(a, 2)*R.At(b, 0))
		M.Set(3+bi, 5, R.At(a, 0)*R.At(b, 1)+R.At(a, 1)*R.At(b, 0))
	}
	return
}

// RotateStiffness applies C' = M C M^T with M the Bond matrix of R.
func RotateStiffness(C, R utils.Matrix) (CR utils.Matrix, err error) {
	if nr, nc := C.Dims(); nr != 6 || nc != 6 {
		err = fmt.Errorf("stiffness matrix must be 6x6, got %dx%d", nr, nc)
		return
	}
	if nr, nc := R.Dims(); nr != 3 || nc != 3 {
		err = fmt.Errorf("rotation matrix must be 3x3, got %dx%d", nr, nc)
		return
	}
	M := BondMatrix(R)
	CR = M.Mul(C).Mul(M.Transpose())
	return
}

// Embed2D places a 3x3 in-plane stiffness matrix at the {0,1,5}
// positions of a zero 6x6 matrix.
func Embed2D(C3 utils.Matrix) (C6 utils.Matrix, err error) {
	if nr, nc := C3.Dims(); nr != 3 || nc != 3 {
		err = fmt.Errorf("in-plane stiffness matrix must be 3x3, got %dx%d", nr, nc)
		return
	}
	C6 = utils.NewMatrix(6, 6)
	for i, iO := range PlaneIndex {
		for j, jO := range PlaneIndex {
			C6.Set(iO, jO, C3.At(i, j))
		}
	}
	return
}

// Embedded2D reports whether a 6x6 matrix holds a purely in-plane
// material: rows and columns 2..4, coupling terms included, all vanish
// within tol.
func Embedded2D(C utils.Matrix, tol float64) bool {
	if nr, nc := C.Dims(); nr != 6 || nc != 6 {
		return false
	}
	for i := 0; i < 6; i++ {
		for _, j := range []int{2, 3, 4} {
			if math.Abs(C.At(i, j)) > tol || math.Abs(C.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// Extract2D pulls the 3x3 in-plane block back out of a 6x6 matrix.
func Extract2D(C6 utils.Matrix) (C3 utils.Matrix, err error) {
	if nr, nc := C6.Dims(); nr != 6 || nc != 6 {
		err = fmt.Errorf("stiffness matrix must be 6x6, got %dx%d", nr, nc)
		return
	}
	C3 = C6.Subset(PlaneIndex)
	return
}
