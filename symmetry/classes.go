// Package symmetry implements the crystal symmetry engine: the
// registry of the 10 three-dimensional and 4 two-dimensional symmetry
// classes, their independent elastic constants, and the completion
// rules that derive every dependent matrix entry from them.
package symmetry

import (
	"fmt"

	"github.com/matmodlab/goelastic/utils"
)

type Class int

const (
	Cubic Class = iota
	Tetragonal1
	Tetragonal2
	Orthorhombic
	Hexagonal
	Trigonal1
	Trigonal2
	Monoclinic1
	Monoclinic2
	Triclinic
	Hexagonal2D
	Square2D
	Rectangular2D
	Oblique2D
)

// Pos is a 0-indexed matrix position. 2D classes index into the 3x3
// in-plane matrix with rows/columns (11, 22, 66).
type Pos struct {
	I, J int
}

type term struct {
	pos  Pos
	coef float64
}

// A rule assigns target = sum(coef * C[pos]) over its terms. Complete
// mirrors the target across the diagonal afterwards.
type rule struct {
	target Pos
	terms  []term
}

type classSpec struct {
	name        string
	dim         int
	independent []Pos
	rules       []rule
}

func p(i, j int) Pos { return Pos{i, j} }

func one(target, source Pos) rule {
	return rule{target, []term{{source, 1}}}
}

func neg(target, source Pos) rule {
	return rule{target, []term{{source, -1}}}
}

// C66 = (C11 - C12) / 2 for the hexagonal family (and its 2D analogue).
func halfDiff(target, a, b Pos) rule {
	return rule{target, []term{{a, 0.5}, {b, -0.5}}}
}

var classes = map[Class]classSpec{
	Cubic: {
		name:        "Cubic",
		dim:         6,
		independent: []Pos{p(0, 0), p(0, 1), p(3, 3)},
		rules: []rule{
			one(p(1, 1), p(0, 0)), one(p(2, 2), p(0, 0)),
			one(p(0, 2), p(0, 1)), one(p(1, 2), p(0, 1)),
			one(p(4, 4), p(3, 3)), one(p(5, 5), p(3, 3)),
		},
	},
	Tetragonal1: {
		name:        "Tetragonal_1",
		dim:         6,
		independent: []Pos{p(0, 0), p(0, 1), p(0, 2), p(2, 2), p(3, 3), p(5, 5)},
		rules: []rule{
			one(p(1, 1), p(0, 0)), one(p(1, 2), p(0, 2)), one(p(4, 4), p(3, 3)),
		},
	},
	Tetragonal2: {
		name:        "Tetragonal_2",
		dim:         6,
		independent: []Pos{p(0, 0), p(0, 1), p(0, 2), p(0, 5), p(2, 2), p(3, 3), p(5, 5)},
		rules: []rule{
			one(p(1, 1), p(0, 0)), one(p(1, 2), p(0, 2)), one(p(4, 4), p(3, 3)),
			neg(p(1, 5), p(0, 5)),
		},
	},
	Orthorhombic: {
		name: "Orthorhombic",
		dim:  6,
		independent: []Pos{
			p(0, 0), p(0, 1), p(0, 2), p(1, 1), p(1, 2), p(2, 2),
			p(3, 3), p(4, 4), p(5, 5),
		},
	},
	Hexagonal: {
		name:        "Hexagonal",
		dim:         6,
		independent: []Pos{p(0, 0), p(0, 1), p(0, 2), p(2, 2), p(3, 3)},
		rules: []rule{
			one(p(1, 1), p(0, 0)), one(p(1, 2), p(0, 2)), one(p(4, 4), p(3, 3)),
			halfDiff(p(5, 5), p(0, 0), p(0, 1)),
		},
	},
	Trigonal1: {
		name:        "Trigonal_1",
		dim:         6,
		independent: []Pos{p(0, 0), p(0, 1), p(0, 2), p(0, 3), p(2, 2), p(3, 3)},
		rules: []rule{
			one(p(1, 1), p(0, 0)), one(p(1, 2), p(0, 2)), one(p(4, 4), p(3, 3)),
			neg(p(1, 3), p(0, 3)), one(p(4, 5), p(0, 3)),
			halfDiff(p(5, 5), p(0, 0), p(0, 1)),
		},
	},
	Trigonal2: {
		name:        "Trigonal_2",
		dim:         6,
		independent: []Pos{p(0, 0), p(0, 1), p(0, 2), p(0, 3), p(0, 4), p(2, 2), p(3, 3)},
		rules: []rule{
			one(p(1, 1), p(0, 0)), one(p(1, 2), p(0, 2)), one(p(4, 4), p(3, 3)),
			neg(p(1, 3), p(0, 3)), one(p(4, 5), p(0, 3)),
			neg(p(1, 4), p(0, 4)), neg(p(3, 5), p(0, 4)),
			halfDiff(p(5, 5), p(0, 0), p(0, 1)),
		},
	},
	Monoclinic1: {
		// Z-axis unique setting: C16, C26, C36, C45 survive.
		name: "Monoclinic_1",
		dim:  6,
		independent: []Pos{
			p(0, 0), p(0, 1), p(0, 2), p(0, 5), p(1, 1), p(1, 2), p(1, 5),
			p(2, 2), p(2, 5), p(3, 3), p(3, 4), p(4, 4), p(5, 5),
		},
	},
	Monoclinic2: {
		// X-axis unique setting: C14, C24, C34, C56 survive.
		name: "Monoclinic_2",
		dim:  6,
		independent: []Pos{
			p(0, 0), p(0, 1), p(0, 2), p(0, 3), p(1, 1), p(1, 2), p(1, 3),
			p(2, 2), p(2, 3), p(3, 3), p(4, 4), p(4, 5), p(5, 5),
		},
	},
	Triclinic: {
		name: "Triclinic",
		dim:  6,
		independent: []Pos{
			p(0, 0), p(0, 1), p(0, 2), p(0, 3), p(0, 4), p(0, 5),
			p(1, 1), p(1, 2), p(1, 3), p(1, 4), p(1, 5),
			p(2, 2), p(2, 3), p(2, 4), p(2, 5),
			p(3, 3), p(3, 4), p(3, 5),
			p(4, 4), p(4, 5),
			p(5, 5),
		},
	},
	Hexagonal2D: {
		name:        "Hexagonal",
		dim:         3,
		independent: []Pos{p(0, 0), p(0, 1)},
		rules: []rule{
			one(p(1, 1), p(0, 0)),
			halfDiff(p(2, 2), p(0, 0), p(0, 1)),
		},
	},
	Square2D: {
		name:        "Square",
		dim:         3,
		independent: []Pos{p(0, 0), p(0, 1), p(2, 2)},
		rules: []rule{
			one(p(1, 1), p(0, 0)),
		},
	},
	Rectangular2D: {
		name:        "Rectangular",
		dim:         3,
		independent: []Pos{p(0, 0), p(0, 1), p(1, 1), p(2, 2)},
	},
	Oblique2D: {
		name:        "Oblique",
		dim:         3,
		independent: []Pos{p(0, 0), p(0, 1), p(0, 2), p(1, 1), p(1, 2), p(2, 2)},
	},
}

// Order3D lists the 3D classes in classification priority: ascending
// independent-constant count, tetragonal before trigonal on ties.
// Triclinic matches anything, so classification over this order is
// total.
func Order3D() []Class {
	return []Class{
		Cubic, Hexagonal, Tetragonal1, Trigonal1, Tetragonal2, Trigonal2,
		Orthorhombic, Monoclinic1, Monoclinic2, Triclinic,
	}
}

// Order2D is the 2D analogue; Oblique is the total fallback.
func Order2D() []Class {
	return []Class{Hexagonal2D, Square2D, Rectangular2D, Oblique2D}
}

func (c Class) String() string {
	if s, ok := classes[c]; ok {
		return s.name
	}
	return "Unknown"
}

// Dim is the matrix size the class operates on: 6 for 3D, 3 for 2D.
func (c Class) Dim() int { return classes[c].dim }

// Independent returns the ordered independent-constant positions
// (upper triangle, 0-indexed).
func (c Class) Independent() []Pos {
	src := classes[c].independent
	out := make([]Pos, len(src))
	copy(out, src)
	return out
}

// NumIndependent reports the independent-constant count that totally
// orders the classes for classification.
func (c Class) NumIndependent() int { return len(classes[c].independent) }

// Complete fills a partially specified stiffness matrix according to
// the class rules: reconcile the two triangles first, then apply each
// dependent-value formula and mirror it. Classes without extra
// constraints (orthorhombic and below, rectangular/oblique in 2D)
// reduce to plain symmetrization.
func (c Class) Complete(C utils.Matrix) (R utils.Matrix, err error) {
	s := classes[c]
	if nr, nc := C.Dims(); nr != s.dim || nc != s.dim {
		err = fmt.Errorf("class %s requires a %dx%d matrix, got %dx%d",
			s.name, s.dim, s.dim, nr, nc)
		return
	}
	R = C.Symmetrize()
	for _, rl := range s.rules {
		var val float64
		for _, t := range rl.terms {
			val += t.coef * R.At(t.pos.I, t.pos.J)
		}
		R.Set(rl.target.I, rl.target.J, val)
		R.Set(rl.target.J, rl.target.I, val)
	}
	return
}
