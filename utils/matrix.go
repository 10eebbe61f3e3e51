package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a row-major gonum Dense. The influence matrix is assembled
// into one of these and then handed, read-only, to the external linear
// solver.
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			panic(fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0])))
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

// DataP exposes the backing row-major slice for assembly loops.
func (m Matrix) DataP() []float64 { return m.M.RawMatrix().Data }

// Row exposes row i of the backing store without copying.
func (m Matrix) Row(i int) []float64 { return m.M.RawRowView(i) }

func (m Matrix) Set(i, j int, val float64) Matrix {
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

// SetReadOnly freezes the matrix after assembly. Writes after this point
// are a caller bug and panic with the matrix name.
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) IsReadOnly() bool { return m.readOnly }

func (m Matrix) checkWritable() {
	if m.readOnly {
		panic(fmt.Errorf("attempt to write to a read only matrix named %q", m.name))
	}
}

func (m Matrix) Copy() (R Matrix) {
	nr, nc := m.Dims()
	R = NewMatrix(nr, nc)
	copy(R.DataP(), m.DataP())
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) {
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

// MulVec applies the matrix to a charge vector, used by tests to recover
// boundary potentials from a solved charge distribution.
func (m Matrix) MulVec(v Vector) (r Vector) {
	nr, _ := m.Dims()
	r = NewVector(nr)
	r.V.MulVec(m.M, v.V)
	return
}

// SumRows returns the vector of row sums.
func (m Matrix) SumRows() (r Vector) {
	nr, _ := m.Dims()
	r = NewVector(nr)
	data := r.DataP()
	for i := 0; i < nr; i++ {
		for _, val := range m.Row(i) {
			data[i] += val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	data := m.DataP()
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
