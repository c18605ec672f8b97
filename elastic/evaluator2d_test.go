package elastic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matmodlab/goelastic/tensor"
	"github.com/matmodlab/goelastic/utils"
)

func plane2D(c11, c12, c66 float64) utils.Matrix {
	return utils.NewMatrix(3, 3, []float64{
		c11, c12, 0,
		c12, c11, 0,
		0, 0, c66,
	})
}

func TestEvaluator2DIsotropic(t *testing.T) {
	// C66 = (C11-C12)/2: in-plane isotropy. E = (C11^2-C12^2)/C11,
	// G = C66, nu = C12/C11 in every direction.
	ev, err := NewEvaluator2D(plane2D(350, 60, 145))
	assert.NoError(t, err)
	var (
		wantE  = (350.*350. - 60.*60.) / 350.
		wantNu = 60. / 350.
	)
	for _, phi := range []float64{0, 0.3, math.Pi / 4, 2.0, 5.5} {
		assert.InDelta(t, wantE, ev.Young(phi), 1.e-9)
		assert.InDelta(t, 145., ev.Shear(phi), 1.e-9)
		assert.InDelta(t, wantNu, ev.Poisson(phi), 1.e-9)
	}
}

func TestEvaluator2DAnisotropic(t *testing.T) {
	// A rectangular material: E along x and y comes straight from the
	// compliance diagonal
	C := utils.NewMatrix(3, 3, []float64{
		180, 40, 0,
		40, 90, 0,
		0, 0, 35,
	})
	ev, err := NewEvaluator2D(C)
	assert.NoError(t, err)
	S, err := C.Inverse()
	assert.NoError(t, err)
	assert.InDelta(t, 1/S.At(0, 0), ev.Young(0), 1.e-9)
	assert.InDelta(t, 1/S.At(1, 1), ev.Young(math.Pi/2), 1.e-9)
	// Axis shear is 1/s66
	assert.InDelta(t, 35., ev.Shear(0), 1.e-9)
	// Poisson on the axes is the textbook ratio
	assert.InDelta(t, -S.At(0, 1)/S.At(0, 0), ev.Poisson(0), 1.e-9)
	// Pi periodicity
	assert.InDelta(t, ev.Young(0.7), ev.Young(0.7+math.Pi), 1.e-9)
	assert.InDelta(t, ev.Shear(0.7), ev.Shear(0.7+math.Pi), 1.e-9)
}

func TestEvaluator2DInputShapes(t *testing.T) {
	// A 6x6 with the in-plane block at {0,1,5} is accepted
	C3 := plane2D(350, 60, 145)
	C6, err := tensor.Embed2D(C3)
	assert.NoError(t, err)
	ev3, err := NewEvaluator2D(C3)
	assert.NoError(t, err)
	ev6, err := NewEvaluator2D(C6)
	assert.NoError(t, err)
	assert.InDelta(t, ev3.Young(1.2), ev6.Young(1.2), 1.e-12)

	_, err = NewEvaluator2D(utils.NewMatrix(4, 4))
	assert.Error(t, err)
	_, err = NewEvaluator2D(utils.NewMatrix(3, 3))
	assert.Error(t, err) // singular
}

func TestEvaluator2DDispatch(t *testing.T) {
	ev, err := NewEvaluator2D(plane2D(350, 60, 145))
	assert.NoError(t, err)
	for _, p := range []Property{YoungsModulus, ShearModulus, PoissonRatio} {
		_, err = ev.Evaluate(p, 0.4)
		assert.NoError(t, err)
	}
	for _, p := range []Property{BulkModulus, Hardness} {
		_, err = ev.Evaluate(p, 0.4)
		assert.Error(t, err)
	}
	phis, vals, err := ev.Sweep(YoungsModulus, 19)
	assert.NoError(t, err)
	assert.Equal(t, 19, len(phis))
	assert.Equal(t, 19, len(vals))
	assert.InDelta(t, vals[0], vals[18], 1.e-9)
}
