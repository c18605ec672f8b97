package utils

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

type Index []int

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) IsSquare() bool {
	nr, nc := m.Dims()
	return nr == nc
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		data   = m.M.RawMatrix().Data
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			R.M.Set(j, i, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) Scale(a float64) (R Matrix) { // Does not change receiver
	R = m.Copy()
	R.M.Scale(a, R.M)
	return
}

// Subset extracts the square submatrix at the crossing of rows and
// columns listed in I, e.g. I = {0,1,5} for the in-plane block of a
// 6x6 stiffness matrix.
func (m Matrix) Subset(I Index) (R Matrix) { // Does not change receiver
	R = NewMatrix(len(I), len(I))
	for i, iO := range I {
		for j, jO := range I {
			R.M.Set(i, j, m.M.At(iO, jO))
		}
	}
	return
}

// Symmetrize reconciles the two triangles of a square matrix: when one
// of C[i,j], C[j,i] is zero and the other is not, the nonzero value
// wins. Models one-sided user input of symmetric constants.
func (m Matrix) Symmetrize() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = m.Copy()
	for i := 0; i < nr; i++ {
		for j := i + 1; j < nc; j++ {
			if R.M.At(i, j) != 0 {
				R.M.Set(j, i, R.M.At(i, j))
			} else if R.M.At(j, i) != 0 {
				R.M.Set(i, j, R.M.At(j, i))
			}
		}
	}
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

// Eigenvalues returns the real parts of the eigenvalues, sorted
// ascending.
func (m Matrix) Eigenvalues() []float64 {
	if !m.IsSquare() {
		panic("Eigenvalues only defined for square matrices")
	}
	var eigen mat.Eigen
	if !eigen.Factorize(m.M, mat.EigenNone) {
		return nil
	}
	values := eigen.Values(nil)
	realValues := make([]float64, len(values))
	for i, val := range values {
		realValues[i] = real(val)
	}
	sort.Float64s(realValues)
	return realValues
}

// InDelta compares elementwise with |a-b| <= atol + rtol*|b|, the
// numpy allclose convention.
func (m Matrix) InDelta(A Matrix, atol, rtol float64) bool {
	var (
		nr, nc   = m.Dims()
		nrA, ncA = A.Dims()
	)
	if nr != nrA || nc != ncA {
		return false
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			a, b := m.M.At(i, j), A.M.At(i, j)
			diff := a - b
			if diff < 0 {
				diff = -diff
			}
			bAbs := b
			if bAbs < 0 {
				bAbs = -bAbs
			}
			if diff > atol+rtol*bAbs {
				return false
			}
		}
	}
	return true
}

func (m Matrix) IsZero(tol float64) bool {
	for _, val := range m.M.RawMatrix().Data {
		if val > tol || val < -tol {
			return false
		}
	}
	return true
}

func (m Matrix) Min() (min float64) {
	data := m.M.RawMatrix().Data
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	data := m.M.RawMatrix().Data
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.M, mat.Squeeze()))
}
