// Package vrh computes polycrystalline Voigt-Reuss-Hill averages,
// derived engineering constants, and Born mechanical stability from a
// single stiffness matrix.
package vrh

import (
	"fmt"
	"math"

	"github.com/matmodlab/goelastic/tensor"
	"github.com/matmodlab/goelastic/utils"
)

// Result holds the 3D polycrystalline constants. Moduli in GPa.
type Result struct {
	KV, KR, KVRH   float64 // bulk modulus bounds and Hill average
	GV, GR, GVRH   float64 // shear modulus bounds and Hill average
	E              float64 // Young's modulus
	Nu             float64 // Poisson's ratio
	A              float64 // universal anisotropy index
	CauchyPressure float64 // C12 - C44
	PughRatio      float64 // K/G
	Hardness       float64 // Chen's bulk/shear model
}

// Average evaluates the Voigt and Reuss bounds, their Hill means, and
// the derived constants. Fails if C is not 6x6 or not invertible.
func Average(C utils.Matrix) (r Result, err error) {
	if nr, nc := C.Dims(); nr != 6 || nc != 6 {
		err = fmt.Errorf("stiffness matrix must be 6x6, got %dx%d", nr, nc)
		return
	}
	r.KV = (C.At(0, 0) + C.At(1, 1) + C.At(2, 2) +
		2*(C.At(0, 1)+C.At(0, 2)+C.At(1, 2))) / 9
	r.GV = (C.At(0, 0) + C.At(1, 1) + C.At(2, 2) -
		(C.At(0, 1) + C.At(0, 2) + C.At(1, 2)) +
		3*(C.At(3, 3)+C.At(4, 4)+C.At(5, 5))) / 15

	S, err := C.Inverse()
	if err != nil {
		return
	}
	r.KR = 1 / (S.At(0, 0) + S.At(1, 1) + S.At(2, 2) +
		2*(S.At(0, 1)+S.At(0, 2)+S.At(1, 2)))
	r.GR = 15 / (4*(S.At(0, 0)+S.At(1, 1)+S.At(2, 2)) -
		4*(S.At(0, 1)+S.At(0, 2)+S.At(1, 2)) +
		3*(S.At(3, 3)+S.At(4, 4)+S.At(5, 5)))

	r.KVRH = (r.KV + r.KR) / 2
	r.GVRH = (r.GV + r.GR) / 2
	r.E = 9 * r.KVRH * r.GVRH / (3*r.KVRH + r.GVRH)
	r.Nu = (3*r.KVRH - 2*r.GVRH) / (6*r.KVRH + 2*r.GVRH)
	r.A = 5*r.GV/r.GR + r.KV/r.KR - 6
	r.CauchyPressure = C.At(0, 1) - C.At(3, 3)
	r.PughRatio = r.KVRH / r.GVRH
	r.Hardness = 2*math.Pow(r.GVRH*r.GVRH/r.KVRH, 0.585) - 3
	return
}

func (r Result) Print() {
	fmt.Printf("%10.4f\t= K_V (GPa)\n", r.KV)
	fmt.Printf("%10.4f\t= K_R (GPa)\n", r.KR)
	fmt.Printf("%10.4f\t= K_VRH (GPa)\n", r.KVRH)
	fmt.Printf("%10.4f\t= G_V (GPa)\n", r.GV)
	fmt.Printf("%10.4f\t= G_R (GPa)\n", r.GR)
	fmt.Printf("%10.4f\t= G_VRH (GPa)\n", r.GVRH)
	fmt.Printf("%10.4f\t= E (GPa)\n", r.E)
	fmt.Printf("%10.4f\t= Poisson ratio\n", r.Nu)
	fmt.Printf("%10.4f\t= Universal anisotropy index\n", r.A)
	fmt.Printf("%10.4f\t= Cauchy pressure (GPa)\n", r.CauchyPressure)
	fmt.Printf("%10.4f\t= Pugh ratio K/G\n", r.PughRatio)
	fmt.Printf("%10.4f\t= Hardness (GPa)\n", r.Hardness)
}

// Result2D holds the in-plane polycrystalline constants for a 2D
// material. Hardness has no physical 2D definition and is deliberately
// absent.
type Result2D struct {
	KV, KR, KVRH float64
	GV, GR, GVRH float64
	E            float64
	Nu           float64
	A            float64
	PughRatio    float64
}

// Average2D evaluates the 2D bounds over the in-plane submatrix.
// Accepts the 3x3 block directly or a 6x6 with the material embedded
// at {0,1,5}. Zero denominators in the Reuss bulk bound and in the
// engineering relations yield zeros; a singular in-plane matrix is an
// error.
func Average2D(C utils.Matrix) (r Result2D, err error) {
	nr, nc := C.Dims()
	switch {
	case nr == 6 && nc == 6:
		if C, err = tensor.Extract2D(C); err != nil {
			return
		}
	case nr == 3 && nc == 3:
	default:
		err = fmt.Errorf("stiffness matrix must be 3x3 or 6x6, got %dx%d", nr, nc)
		return
	}
	var (
		c11 = C.At(0, 0)
		c22 = C.At(1, 1)
		c12 = C.At(0, 1)
		c66 = C.At(2, 2)
	)
	r.KV = (c11 + c22 + 2*c12) / 4
	r.GV = (c11 + c22 - 2*c12 + 4*c66) / 8

	S, err := C.Inverse()
	if err != nil {
		return
	}
	var (
		s11 = S.At(0, 0)
		s22 = S.At(1, 1)
		s12 = S.At(0, 1)
		s66 = S.At(2, 2)
	)
	if den := s11 + s22 + 2*s12; den != 0 {
		r.KR = 1 / den
	}
	r.GR = 2 / (s11 + s22 - 2*s12 + s66)

	r.KVRH = (r.KV + r.KR) / 2
	r.GVRH = (r.GV + r.GR) / 2
	if den := r.KVRH + r.GVRH; den != 0 {
		r.E = 4 * r.KVRH * r.GVRH / den
		r.Nu = (r.KVRH - r.GVRH) / den
	}
	if r.KR != 0 && r.GR != 0 {
		r.A = r.KV/r.KR + r.GV/r.GR - 2
	}
	if r.GVRH != 0 {
		r.PughRatio = r.KVRH / r.GVRH
	}
	return
}

func (r Result2D) Print() {
	fmt.Printf("%10.4f\t= K_V (GPa)\n", r.KV)
	fmt.Printf("%10.4f\t= K_R (GPa)\n", r.KR)
	fmt.Printf("%10.4f\t= K_VRH (GPa)\n", r.KVRH)
	fmt.Printf("%10.4f\t= G_V (GPa)\n", r.GV)
	fmt.Printf("%10.4f\t= G_R (GPa)\n", r.GR)
	fmt.Printf("%10.4f\t= G_VRH (GPa)\n", r.GVRH)
	fmt.Printf("%10.4f\t= E (GPa)\n", r.E)
	fmt.Printf("%10.4f\t= Poisson ratio\n", r.Nu)
	fmt.Printf("%10.4f\t= Anisotropy index\n", r.A)
	fmt.Printf("%10.4f\t= Pugh ratio K/G\n", r.PughRatio)
	fmt.Printf("%10s\t= Hardness (not defined in 2D)\n", "n/a")
}
