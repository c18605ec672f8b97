package elastic

import (
	"fmt"
	"math"

	"github.com/matmodlab/goelastic/tensor"
	"github.com/matmodlab/goelastic/utils"
)

// DefaultChiSamples is the sampling resolution of the free in-plane
// rotation used to aggregate shear and Poisson values. 100 is the
// established fidelity/performance tradeoff.
const DefaultChiSamples = 100

// hardnessFloor keeps the fractional-power argument of the Chen-Niu
// model positive.
const hardnessFloor = 1e-10

// Evaluator computes directional properties from a single stiffness
// matrix. It is a pure value: safe for concurrent use once built.
type Evaluator struct {
	S    utils.Matrix // compliance, 6x6
	T    tensor.Rank4 // compliance in tensor notation, for shear
	NChi int
}

// NewEvaluator inverts C and caches the tensor form of the compliance.
// Fails on a non-6x6 or singular input.
func NewEvaluator(C utils.Matrix, nChi ...int) (ev *Evaluator, err error) {
	if nr, nc := C.Dims(); nr != 6 || nc != 6 {
		err = fmt.Errorf("stiffness matrix must be 6x6, got %dx%d", nr, nc)
		return
	}
	S, err := C.Inverse()
	if err != nil {
		return
	}
	T, err := tensor.VoigtToTensor(S)
	if err != nil {
		return
	}
	ev = &Evaluator{S: S, T: T, NChi: DefaultChiSamples}
	if len(nChi) != 0 && nChi[0] > 1 {
		ev.NChi = nChi[0]
	}
	return
}

// voigtProducts builds the six strain-direction products
// (l^2, m^2, n^2, mn, ln, lm) from direction cosines.
func voigtProducts(l, m, n float64) [6]float64 {
	return [6]float64{l * l, m * m, n * n, m * n, l * n, l * m}
}

// secondDirection is the unit vector orthogonal to (theta, phi),
// parameterized by the in-plane rotation chi.
func secondDirection(theta, phi, chi float64) (m1, m2, m3 float64) {
	m1 = math.Cos(chi)*math.Cos(theta)*math.Cos(phi) - math.Sin(chi)*math.Sin(phi)
	m2 = math.Cos(chi)*math.Cos(theta)*math.Sin(phi) + math.Sin(chi)*math.Cos(phi)
	m3 = -math.Cos(chi) * math.Sin(theta)
	return
}

// Young evaluates E = 1 / (S_ij a_i a_j) along (theta, phi).
func (ev *Evaluator) Young(theta, phi float64) float64 {
	l := math.Sin(theta) * math.Cos(phi)
	m := math.Sin(theta) * math.Sin(phi)
	n := math.Cos(theta)
	a := voigtProducts(l, m, n)
	var sum float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			sum += ev.S.At(i, j) * a[i] * a[j]
		}
	}
	return 1 / sum
}

// Bulk evaluates the directional bulk modulus from the linear
// compressibility: only the first three compliance columns contribute.
func (ev *Evaluator) Bulk(theta, phi float64) float64 {
	l := math.Sin(theta) * math.Cos(phi)
	m := math.Sin(theta) * math.Sin(phi)
	n := math.Cos(theta)
	a := voigtProducts(l, m, n)
	var sum float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			sum += ev.S.At(i, j) * a[i]
		}
	}
	return 1 / (3 * sum)
}

// ShearChi evaluates 1/G = 4 S_ijkl n_i m_j n_k m_l at a fixed
// in-plane rotation chi of the transverse direction.
func (ev *Evaluator) ShearChi(theta, phi, chi float64) float64 {
	var (
		n [3]float64
		m [3]float64
	)
	n[0] = math.Sin(theta) * math.Cos(phi)
	n[1] = math.Sin(theta) * math.Sin(phi)
	n[2] = math.Cos(theta)
	m[0], m[1], m[2] = secondDirection(theta, phi, chi)
	var invG float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					invG += ev.T[i][j][k][l] * n[i] * m[j] * n[k] * m[l]
				}
			}
		}
	}
	return 1 / (4 * invG)
}

// PoissonChi evaluates nu = -(S_ij a1_i a2_j) / (S_ii a1_i a1_i) at a
// fixed chi. The denominator keeps only the diagonal terms.
func (ev *Evaluator) PoissonChi(theta, phi, chi float64) float64 {
	l1 := math.Sin(theta) * math.Cos(phi)
	m1 := math.Sin(theta) * math.Sin(phi)
	n1 := math.Cos(theta)
	l2, m2, n2 := secondDirection(theta, phi, chi)
	a1 := voigtProducts(l1, m1, n1)
	a2 := voigtProducts(l2, m2, n2)
	var num, den float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			num += ev.S.At(i, j) * a1[i] * a2[j]
		}
		den += ev.S.At(i, i) * a1[i] * a1[i]
	}
	return -num / den
}

// aggregate samples chi uniformly over [-pi, pi] and reduces to
// min/mean/max. Each sample is independent; the reduction happens
// after the fact.
func (ev *Evaluator) aggregate(f func(chi float64) float64) (s Sample) {
	chis := utils.Linspace(-math.Pi, math.Pi, ev.NChi)
	vals := make([]float64, ev.NChi)
	for i := 0; i < ev.NChi; i++ {
		vals[i] = f(chis.AtVec(i))
	}
	v := utils.NewVector(ev.NChi, vals)
	s = Sample{Min: v.Min(), Ave: v.Mean(), Max: v.Max()}
	return
}

// Shear returns the min/mean/max shear modulus over the free in-plane
// rotation.
func (ev *Evaluator) Shear(theta, phi float64) Sample {
	return ev.aggregate(func(chi float64) float64 {
		return ev.ShearChi(theta, phi, chi)
	})
}

// Poisson returns the min/mean/max Poisson ratio over the free
// in-plane rotation.
func (ev *Evaluator) Poisson(theta, phi float64) Sample {
	return ev.aggregate(func(chi float64) float64 {
		return ev.PoissonChi(theta, phi, chi)
	})
}

// Hardness evaluates the Chen-Niu model H = 2 (k^2 G)^0.585 - 3 with
// k = G/E, using the chi-averaged shear modulus. The power argument is
// floored at a small positive value and any non-finite result is
// scrubbed to 0, so sweeps survive isolated degenerate directions.
func (ev *Evaluator) Hardness(theta, phi float64) float64 {
	E := ev.Young(theta, phi)
	G := ev.Shear(theta, phi).Ave
	k := G / E
	k2G := utils.ClampBelow(k*k*G, hardnessFloor)
	return utils.Scrub(2*math.Pow(k2G, 0.585) - 3)
}

// Evaluate dispatches on the property tag. The mapping is total over
// the Property enum.
func (ev *Evaluator) Evaluate(p Property, theta, phi float64) Sample {
	single := func(v float64) Sample { return Sample{v, v, v} }
	switch p {
	case YoungsModulus:
		return single(ev.Young(theta, phi))
	case ShearModulus:
		return ev.Shear(theta, phi)
	case BulkModulus:
		return single(ev.Bulk(theta, phi))
	case PoissonRatio:
		return ev.Poisson(theta, phi)
	case Hardness:
		return single(ev.Hardness(theta, phi))
	}
	panic(fmt.Sprintf("unhandled property %d", p))
}
