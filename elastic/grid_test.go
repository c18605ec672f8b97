package elastic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphereGrid(t *testing.T) {
	Theta, Phi := SphereGrid(5)
	assert.Equal(t, 5, len(Theta))
	assert.Equal(t, 5, len(Phi))
	// theta varies along rows, phi along columns
	assert.InDelta(t, 0., Theta[0][0], 1.e-12)
	assert.InDelta(t, math.Pi, Theta[4][0], 1.e-12)
	assert.InDelta(t, Theta[2][0], Theta[2][4], 1.e-12)
	assert.InDelta(t, 0., Phi[0][0], 1.e-12)
	assert.InDelta(t, 2*math.Pi, Phi[0][4], 1.e-12)
	assert.InDelta(t, Phi[0][2], Phi[4][2], 1.e-12)
}

func TestEvalGrid(t *testing.T) {
	ev, err := NewEvaluator(cubic(230, 135, 117))
	assert.NoError(t, err)
	Theta, Phi := SphereGrid(7)
	f := ev.EvalGrid(YoungsModulus, Theta, Phi)
	assert.Equal(t, 7, len(f.Ave))
	// The fan-out over rows must agree with direct evaluation at every
	// node
	for i := range Theta {
		assert.Equal(t, 7, len(f.Ave[i]))
		for j := range Theta[i] {
			want := ev.Young(Theta[i][j], Phi[i][j])
			assert.InDelta(t, want, f.Ave[i][j], 1.e-12)
			assert.Equal(t, f.Min[i][j], f.Max[i][j])
		}
	}
}

func TestEvalPlane(t *testing.T) {
	ev, err := NewEvaluator(cubic(230, 135, 117))
	assert.NoError(t, err)
	// n+1 samples close the loop: first and last direction coincide
	sw, err := ev.EvalPlane(YoungsModulus, PlaneXY, 36)
	assert.NoError(t, err)
	assert.Equal(t, 37, len(sw.Ave))
	assert.InDelta(t, sw.Ave[0], sw.Ave[36], 1.e-9)
	// The xy sweep stays on the equator
	for _, theta := range sw.Theta {
		assert.InDelta(t, math.Pi/2, theta, 1.e-12)
	}
	// Cubic symmetry: E repeats every 90 degrees in the basal plane
	assert.InDelta(t, sw.Ave[0], sw.Ave[9], 1.e-9)
	assert.InDelta(t, sw.Ave[3], sw.Ave[12], 1.e-9)
}

func TestParsePlane(t *testing.T) {
	for name, want := range map[string]Plane{
		"xy": PlaneXY, "xz": PlaneXZ, "yz": PlaneYZ,
	} {
		pl, err := ParsePlane(name)
		assert.NoError(t, err)
		assert.Equal(t, want, pl)
		assert.Equal(t, name, pl.String())
	}
	_, err := ParsePlane("zz")
	assert.Error(t, err)
}

func TestMillerCircle(t *testing.T) {
	// Every sampled direction is a unit vector orthogonal to the plane
	// normal
	for _, hkl := range [][3]float64{
		{1, 1, 1}, {1, 0, 0}, {0, 0, 1}, {1, -2, 3},
	} {
		h, k, l := hkl[0], hkl[1], hkl[2]
		x, y, z, err := MillerCircle(h, k, l, 24)
		assert.NoError(t, err)
		assert.Equal(t, 25, len(x))
		for i := range x {
			r := math.Sqrt(x[i]*x[i] + y[i]*y[i] + z[i]*z[i])
			assert.InDelta(t, 1., r, 1.e-9)
			dot := h*x[i] + k*y[i] + l*z[i]
			assert.InDelta(t, 0., dot, 1.e-9)
		}
	}
	_, _, _, err := MillerCircle(0, 0, 0, 8)
	assert.Error(t, err)
}

func TestEvalSlice(t *testing.T) {
	ev, err := NewEvaluator(cubic(230, 135, 117))
	assert.NoError(t, err)
	// The (001) Miller slice is the basal plane sweep in disguise
	sw, err := ev.EvalSlice(YoungsModulus, 0, 0, 1, 36)
	assert.NoError(t, err)
	assert.Equal(t, 37, len(sw.Ave))
	pl, err := ev.EvalPlane(YoungsModulus, PlaneXY, 36)
	assert.NoError(t, err)
	assert.InDelta(t, pl.Min[0], sw.Min[0], 1.e-9)
	for i := range sw.Ave {
		assert.InDelta(t, math.Pi/2, sw.Theta[i], 1.e-9)
	}
	// Angle arrays must pair up
	_, err = ev.EvalSweep(YoungsModulus, []float64{0, 1}, []float64{0})
	assert.Error(t, err)
}
