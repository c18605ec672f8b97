package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, 3, aNr)
		assert.Equal(t, 2, aNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.RawMatrix().Data)
	}
	// Subset
	{
		M := NewMatrix(3, 3, []float64{
			1, 2, 3,
			4, 5, 6,
			7, 8, 9,
		})
		A := M.Subset(Index{0, 2})
		assert.Equal(t, NewMatrix(2, 2, []float64{
			1, 3,
			7, 9,
		}), A)
	}
	// Symmetrize reconciles one-sided input
	{
		M := NewMatrix(3, 3, []float64{
			1, 2, 0,
			0, 5, 0,
			4, 0, 9,
		})
		A := M.Symmetrize()
		assert.Equal(t, NewMatrix(3, 3, []float64{
			1, 2, 4,
			2, 5, 0,
			4, 0, 9,
		}), A)
		// receiver untouched
		assert.Equal(t, 0., M.At(1, 0))
	}
	// Inverse
	{
		M := NewMatrix(2, 2, []float64{
			4, 0,
			0, 2,
		})
		A, err := M.Inverse()
		assert.NoError(t, err)
		assert.InDelta(t, 0.25, A.At(0, 0), 1.e-12)
		assert.InDelta(t, 0.5, A.At(1, 1), 1.e-12)
		_, err = NewMatrix(2, 2, []float64{1, 1, 1, 1}).Inverse()
		assert.Error(t, err)
	}
	// Eigenvalues of a symmetric matrix, sorted ascending
	{
		M := NewMatrix(2, 2, []float64{
			2, 1,
			1, 2,
		})
		ev := M.Eigenvalues()
		assert.Equal(t, 2, len(ev))
		assert.InDelta(t, 1., ev[0], 1.e-12)
		assert.InDelta(t, 3., ev[1], 1.e-12)
	}
	// InDelta follows the allclose convention
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4 + 1.e-9})
		assert.True(t, M.InDelta(A, 1.e-6, 1.e-6))
		B := NewMatrix(2, 2, []float64{1, 2, 3, 4.1})
		assert.False(t, M.InDelta(B, 1.e-6, 1.e-6))
	}
	// IsZero
	{
		assert.True(t, NewMatrix(2, 2).IsZero(1.e-12))
		assert.False(t, NewMatrix(2, 2, []float64{0, 0, 1.e-6, 0}).IsZero(1.e-12))
	}
}

func TestVector(t *testing.T) {
	// Linspace endpoints and spacing
	{
		V := Linspace(-math.Pi, math.Pi, 100)
		assert.Equal(t, 100, V.Len())
		assert.InDelta(t, -math.Pi, V.AtVec(0), 1.e-12)
		assert.InDelta(t, math.Pi, V.AtVec(99), 1.e-12)
	}
	// Min / Max / Mean
	{
		V := NewVector(4, []float64{3, -1, 2, 0})
		assert.Equal(t, -1., V.Min())
		assert.Equal(t, 3., V.Max())
		assert.Equal(t, 1., V.Mean())
	}
}

func TestScrub(t *testing.T) {
	assert.Equal(t, 0., Scrub(math.NaN()))
	assert.Equal(t, 0., Scrub(math.Inf(1)))
	assert.Equal(t, 0., Scrub(math.Inf(-1)))
	assert.Equal(t, 1.5, Scrub(1.5))
	assert.Equal(t, 1.e-10, ClampBelow(-3, 1.e-10))
	assert.Equal(t, 2., ClampBelow(2, 1.e-10))
	assert.Equal(t, 1., Clamp(3, -1, 1))
	assert.Equal(t, -1., Clamp(-3, -1, 1))
}
