package utils

import (
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	if len(dataO) != 0 {
		R = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		R = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

func (v Vector) Len() int            { return v.V.Len() }
func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }
func (v Vector) RawVector() []float64 {
	return v.V.RawVector().Data
}

// Linspace returns N evenly spaced samples over [min, max], endpoints
// included.
func Linspace(min, max float64, N int) (V Vector) {
	var (
		x = make([]float64, N)
	)
	if N == 1 {
		x[0] = min
		return NewVector(N, x)
	}
	h := (max - min) / float64(N-1)
	for i := 0; i < N; i++ {
		x[i] = min + float64(i)*h
	}
	V = NewVector(N, x)
	return
}

func (v Vector) Min() (min float64) {
	data := v.V.RawVector().Data
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	data := v.V.RawVector().Data
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Mean() (mean float64) {
	data := v.V.RawVector().Data
	for _, val := range data {
		mean += val
	}
	mean /= float64(len(data))
	return
}
