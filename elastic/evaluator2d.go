package elastic

import (
	"fmt"
	"math"

	"github.com/matmodlab/goelastic/tensor"
	"github.com/matmodlab/goelastic/utils"
)

// Evaluator2D computes in-plane directional properties of a purely
// two-dimensional (plate/monolayer) material from the 3x3 in-plane
// compliance. The transverse in-plane direction is unique up to sign,
// so shear and Poisson need no chi aggregation here.
type Evaluator2D struct {
	S utils.Matrix // in-plane compliance, 3x3
}

// NewEvaluator2D accepts either the 3x3 in-plane stiffness block or a
// full 6x6 with the material embedded at positions {0,1,5}.
func NewEvaluator2D(C utils.Matrix) (ev *Evaluator2D, err error) {
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
	S, err := C.Inverse()
	if err != nil {
		return
	}
	ev = &Evaluator2D{S: S}
	return
}

// planeProducts is the 2D analogue of the Voigt strain-direction
// products, over the (11, 22, 66) component order.
func planeProducts(x, y float64) [3]float64 {
	return [3]float64{x * x, y * y, x * y}
}

// Young evaluates E(phi) = 1 / (S_ij a_i a_j) for the in-plane
// direction (cos phi, sin phi).
func (ev *Evaluator2D) Young(phi float64) float64 {
	a := planeProducts(math.Cos(phi), math.Sin(phi))
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += ev.S.At(i, j) * a[i] * a[j]
		}
	}
	return 1 / sum
}

// Shear evaluates 1/G = 4 S_ijkl n_i m_j n_k m_l with m the in-plane
// normal of n, written out over the Voigt components with the
// engineering-strain factors applied inline.
func (ev *Evaluator2D) Shear(phi float64) float64 {
	var (
		c, s  = math.Cos(phi), math.Sin(phi)
		nm1   = -c * s // n1*m1
		nm2   = c * s  // n2*m2
		cross = c*c - s*s
		s11   = ev.S.At(0, 0)
		s22   = ev.S.At(1, 1)
		s12   = ev.S.At(0, 1)
		s16   = ev.S.At(0, 2)
		s26   = ev.S.At(1, 2)
		s66   = ev.S.At(2, 2)
	)
	invG := 4 * (s11*nm1*nm1 + s22*nm2*nm2 + 2*s12*nm1*nm2 +
		s66/4*cross*cross + s16*nm1*cross + s26*nm2*cross)
	return 1 / invG
}

// Poisson evaluates the in-plane ratio with the same diagonal-only
// denominator convention as the 3D evaluator.
func (ev *Evaluator2D) Poisson(phi float64) float64 {
	a1 := planeProducts(math.Cos(phi), math.Sin(phi))
	a2 := planeProducts(-math.Sin(phi), math.Cos(phi))
	var num, den float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			num += ev.S.At(i, j) * a1[i] * a2[j]
		}
		den += ev.S.At(i, i) * a1[i] * a1[i]
	}
	return -num / den
}

// Evaluate dispatches the in-plane properties. Bulk modulus and
// hardness have no 2D directional definition and are rejected.
func (ev *Evaluator2D) Evaluate(p Property, phi float64) (float64, error) {
	switch p {
	case YoungsModulus:
		return ev.Young(phi), nil
	case ShearModulus:
		return ev.Shear(phi), nil
	case PoissonRatio:
		return ev.Poisson(phi), nil
	}
	return 0, fmt.Errorf("property %s is not defined for 2D materials", p.Code())
}

// Sweep evaluates a property at n uniformly spaced in-plane angles
// over [0, 2*pi].
func (ev *Evaluator2D) Sweep(p Property, n int) (phis, vals []float64, err error) {
	grid := utils.Linspace(0, 2*math.Pi, n)
	phis = grid.RawVector()
	vals = make([]float64, n)
	for i := range vals {
		if vals[i], err = ev.Evaluate(p, phis[i]); err != nil {
			return nil, nil, err
		}
	}
	return
}
